package store

import (
	"context"
	"fmt"

	"github.com/cozmiclearning/cozmic/ent"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
	"github.com/cozmiclearning/cozmic/ent/schema"
	"github.com/cozmiclearning/cozmic/internal/question"
)

type poolRepo struct {
	client *ent.Client
}

func (r *poolRepo) Save(ctx context.Context, pool *question.Pool) error {
	_, err := r.client.QuestionPool.Create().
		SetPoolID(pool.ID).
		SetTopic(pool.Topic).
		SetSubject(pool.Subject).
		SetGrade(pool.Grade).
		SetMode(string(pool.Mode)).
		SetTargetAbility(string(pool.TargetAbility)).
		SetQuestions(questionsToData(pool.Questions)).
		SetFinalMessage(pool.FinalMessage).
		SetSynthetic(pool.Synthetic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pool: %w", err)
	}
	return nil
}

func (r *poolRepo) Get(ctx context.Context, poolID string) (*question.Pool, error) {
	row, err := r.client.QuestionPool.Query().
		Where(questionpool.PoolID(poolID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("pool %s not found", poolID)
		}
		return nil, fmt.Errorf("query pool: %w", err)
	}

	return &question.Pool{
		ID:            row.PoolID,
		Topic:         row.Topic,
		Subject:       row.Subject,
		Grade:         row.Grade,
		Mode:          question.Mode(row.Mode),
		TargetAbility: question.Tier(row.TargetAbility),
		Questions:     dataToQuestions(row.Questions),
		FinalMessage:  row.FinalMessage,
		Synthetic:     row.Synthetic,
	}, nil
}

func questionsToData(qs []question.Question) []schema.QuestionData {
	out := make([]schema.QuestionData, len(qs))
	for i, q := range qs {
		out[i] = schema.QuestionData{
			Prompt:      q.Prompt,
			Kind:        string(q.Kind),
			Choices:     q.Choices,
			Expected:    q.Expected,
			Hint:        q.Hint,
			Explanation: q.Explanation,
			Difficulty:  string(q.Difficulty),
			Synthetic:   q.Synthetic,
		}
	}
	return out
}

func dataToQuestions(data []schema.QuestionData) []question.Question {
	out := make([]question.Question, len(data))
	for i, d := range data {
		out[i] = question.Question{
			Prompt:      d.Prompt,
			Kind:        question.Kind(d.Kind),
			Choices:     d.Choices,
			Expected:    d.Expected,
			Hint:        d.Hint,
			Explanation: d.Explanation,
			Difficulty:  question.Difficulty(d.Difficulty),
			Synthetic:   d.Synthetic,
		}
	}
	return out
}
