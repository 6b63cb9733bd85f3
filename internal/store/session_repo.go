package store

import (
	"context"
	"fmt"

	"github.com/cozmiclearning/cozmic/ent"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/schema"
	"github.com/cozmiclearning/cozmic/internal/adaptive"
)

// sessionRepo implements SessionRepo using the ent client. Save is a
// conditional update on the version column: the WHERE clause carries
// the version the caller read, so two writers racing from the same
// snapshot produce exactly one winner.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, studentID, assignmentID string) (*adaptive.State, error) {
	row, err := r.client.AdaptiveSession.Query().
		Where(
			adaptivesession.StudentID(studentID),
			adaptivesession.AssignmentID(assignmentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return rowToState(row), nil
}

func (r *sessionRepo) Create(ctx context.Context, st *adaptive.State) error {
	_, err := r.client.AdaptiveSession.Create().
		SetStudentID(st.StudentID).
		SetAssignmentID(st.AssignmentID).
		SetPhase(string(st.Phase)).
		SetCurrentQuestionIndex(st.CurrentIndex).
		SetMcPhaseComplete(st.MCPhaseComplete).
		SetTrack(string(st.Track)).
		SetAnswerLog(logToData(st.AnswerLog)).
		SetVersion(st.Version).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Save(ctx context.Context, st *adaptive.State) error {
	n, err := r.client.AdaptiveSession.Update().
		Where(
			adaptivesession.StudentID(st.StudentID),
			adaptivesession.AssignmentID(st.AssignmentID),
			adaptivesession.Version(st.Version),
		).
		SetPhase(string(st.Phase)).
		SetCurrentQuestionIndex(st.CurrentIndex).
		SetMcPhaseComplete(st.MCPhaseComplete).
		SetTrack(string(st.Track)).
		SetAnswerLog(logToData(st.AnswerLog)).
		SetVersion(st.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if n == 0 {
		return adaptive.ErrVersionConflict
	}
	return nil
}

func rowToState(row *ent.AdaptiveSession) *adaptive.State {
	log := make([]adaptive.AnswerRecord, len(row.AnswerLog))
	for i, e := range row.AnswerLog {
		log[i] = adaptive.AnswerRecord{
			Phase:         adaptive.Phase(e.Phase),
			QuestionIndex: e.QuestionIndex,
			Submitted:     e.Submitted,
			Correct:       e.Correct,
			SubmittedAt:   e.SubmittedAt,
		}
	}
	return &adaptive.State{
		StudentID:       row.StudentID,
		AssignmentID:    row.AssignmentID,
		Phase:           adaptive.Phase(row.Phase),
		CurrentIndex:    row.CurrentQuestionIndex,
		MCPhaseComplete: row.McPhaseComplete,
		Track:           adaptive.Track(row.Track),
		AnswerLog:       log,
		Version:         row.Version,
	}
}

func logToData(log []adaptive.AnswerRecord) []schema.AnswerLogEntry {
	out := make([]schema.AnswerLogEntry, len(log))
	for i, rec := range log {
		out[i] = schema.AnswerLogEntry{
			Phase:         string(rec.Phase),
			QuestionIndex: rec.QuestionIndex,
			Submitted:     rec.Submitted,
			Correct:       rec.Correct,
			SubmittedAt:   rec.SubmittedAt,
		}
	}
	return out
}
