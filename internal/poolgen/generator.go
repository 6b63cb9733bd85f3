package poolgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cozmiclearning/cozmic/internal/differentiation"
	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/question"
)

// BuildInput describes the pool to generate.
type BuildInput struct {
	Topic   string
	Subject string
	Grade   string

	Mode          question.Mode
	TargetAbility question.Tier

	// Count is the requested question count; zero uses the config
	// default.
	Count int
}

// Service builds validated question pools from generator output.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates a pool generation service. The provider should be
// configured with at most one transport retry; malformed content is
// never retried, it falls through to synthetic fallback instead.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// BuildPool generates, parses, and validates one question pool. A
// transport failure (after the provider's retry) is fatal for the
// request; unusable content is not, it yields a synthetic pool. The
// report is advisory: an invalid pool is still returned for the caller
// to publish or regenerate.
func (s *Service) BuildPool(ctx context.Context, in BuildInput) (*question.Pool, *differentiation.Report, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposePoolGen)

	count := in.Count
	if count < 1 {
		count = s.cfg.DefaultCount
	}

	req := llm.Request{
		System: buildSystemPrompt(in, count),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("pool generation failed: %w", err)
	}

	parsed := Parse(rawText(resp.Content), count, in.Topic)

	pool := &question.Pool{
		ID:            uuid.NewString(),
		Topic:         in.Topic,
		Subject:       in.Subject,
		Grade:         in.Grade,
		Mode:          in.Mode,
		TargetAbility: in.TargetAbility,
		Questions:     parsed.Questions,
		FinalMessage:  parsed.FinalMessage,
		Synthetic:     parsed.Fallback,
	}

	report := differentiation.Validate(pool)
	return pool, report, nil
}

// rawText unwraps provider content. Schemaless responses arrive as a
// JSON-encoded string; anything else is used verbatim.
func rawText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}
