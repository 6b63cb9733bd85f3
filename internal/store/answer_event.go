package store

import (
	"context"
	"fmt"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetAssignmentID(data.AssignmentID).
		SetPhase(data.Phase).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionPrompt(data.QuestionPrompt).
		SetSubmittedAnswer(data.SubmittedAnswer).
		SetCorrect(data.Correct).
		SetKind(data.Kind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}

	return nil
}

// answerSink adapts the event repo to the session service's sink
// interface.
type answerSink struct {
	events EventRepo
}

// AnswerSink returns an adaptive.EventSink that appends accepted
// submissions to the event log.
func (s *Store) AnswerSink() (adaptive.EventSink, error) {
	events, err := s.EventRepo()
	if err != nil {
		return nil, err
	}
	return &answerSink{events: events}, nil
}

func (s *answerSink) RecordAnswer(ctx context.Context, ev adaptive.AnswerEvent) error {
	return s.events.AppendAnswer(ctx, AnswerEventData{
		StudentID:       ev.StudentID,
		AssignmentID:    ev.AssignmentID,
		Phase:           string(ev.Phase),
		QuestionIndex:   ev.QuestionIndex,
		QuestionPrompt:  ev.Prompt,
		SubmittedAnswer: ev.Submitted,
		Correct:         ev.Correct,
		Kind:            string(ev.Kind),
	})
}
