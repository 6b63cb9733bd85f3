package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cozmiclearning/cozmic/ent"
	"github.com/cozmiclearning/cozmic/ent/assessmentresult"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Record(ctx context.Context, studentID string, scorePercent float64, at time.Time) error {
	_, err := r.client.AssessmentResult.Create().
		SetStudentID(studentID).
		SetScorePercent(scorePercent).
		SetRecordedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) RecentScores(ctx context.Context, studentID string, limit int) ([]float64, error) {
	rows, err := r.client.AssessmentResult.Query().
		Where(assessmentresult.StudentID(studentID)).
		Order(ent.Desc(assessmentresult.FieldRecordedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	scores := make([]float64, len(rows))
	for i, row := range rows {
		// Optional column; an unset score reads back as the zero value.
		scores[i] = row.ScorePercent
	}
	return scores, nil
}
