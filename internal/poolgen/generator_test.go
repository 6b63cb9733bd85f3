package poolgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/question"
)

// asContent wraps raw generator text the way schemaless providers
// return it: as a JSON-encoded string.
func asContent(t *testing.T, text string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(text)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBuildPool_WellFormedResponse(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: asContent(t, wellFormedPayload(3)),
	})
	svc := New(provider, DefaultConfig())

	pool, report, err := svc.BuildPool(context.Background(), BuildInput{
		Topic:         "addition",
		Subject:       "num_forge",
		Grade:         "4",
		Mode:          question.ModeScaffold,
		TargetAbility: question.TierOnLevel,
		Count:         3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if pool.ID == "" {
		t.Error("pool must get an ID")
	}
	if pool.Synthetic {
		t.Error("parsed pool wrongly marked synthetic")
	}
	if pool.Len() != 3 {
		t.Errorf("expected 3 questions, got %d", pool.Len())
	}
	if report == nil {
		t.Fatal("expected a differentiation report")
	}
	if report.Metrics.Total != 3 {
		t.Errorf("report computed over wrong pool: %+v", report.Metrics)
	}
}

func TestBuildPool_MalformedContentFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: asContent(t, "Sorry, I can't produce JSON today."),
	})
	svc := New(provider, DefaultConfig())

	pool, _, err := svc.BuildPool(context.Background(), BuildInput{
		Topic: "fractions",
		Count: 4,
	})
	if err != nil {
		t.Fatalf("malformed content must not be an error: %v", err)
	}
	if !pool.Synthetic {
		t.Error("fallback pool must be marked synthetic")
	}
	if pool.Len() != 4 {
		t.Errorf("expected exactly 4 synthetic questions, got %d", pool.Len())
	}
	// Malformed content is a parse failure, not a transport failure;
	// no second generation call is made.
	if provider.CallCount() != 1 {
		t.Errorf("expected a single generation call, got %d", provider.CallCount())
	}
}

func TestBuildPool_TransportFailureIsFatal(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue yields ErrProviderUnavailable
	svc := New(provider, DefaultConfig())

	_, _, err := svc.BuildPool(context.Background(), BuildInput{Topic: "fractions", Count: 2})
	if err == nil {
		t.Fatal("transport failure must propagate")
	}
}

func TestBuildPool_DefaultCount(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: asContent(t, "garbage"),
	})
	svc := New(provider, DefaultConfig())

	pool, _, err := svc.BuildPool(context.Background(), BuildInput{Topic: "fractions"})
	if err != nil {
		t.Fatal(err)
	}
	if pool.Len() != DefaultConfig().DefaultCount {
		t.Errorf("expected default count %d, got %d", DefaultConfig().DefaultCount, pool.Len())
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("expected one call, got %d", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema != nil {
		t.Error("pool generation must request raw text, not schema-validated output")
	}
	if !strings.Contains(req.System, "10-question") {
		t.Errorf("system prompt missing count: %q", req.System)
	}
}
