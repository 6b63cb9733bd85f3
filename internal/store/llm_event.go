package store

import (
	"context"
	"fmt"

	"github.com/cozmiclearning/cozmic/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) (*LLMUsageSummary, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	summary := &LLMUsageSummary{ByModel: make(map[string]TokenCount)}
	for _, row := range rows {
		summary.Requests++
		if !row.Success {
			summary.Failures++
		}
		summary.InputTokens += row.InputTokens
		summary.OutputTokens += row.OutputTokens

		tc := summary.ByModel[row.Model]
		tc.Requests++
		tc.InputTokens += row.InputTokens
		tc.OutputTokens += row.OutputTokens
		summary.ByModel[row.Model] = tc
	}
	return summary, nil
}
