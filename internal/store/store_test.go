package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Missing session reads as nil.
	st, err := repo.Get(ctx, "s1", "a1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if st != nil {
		t.Fatal("expected nil session before create")
	}

	fresh := adaptive.NewState("s1", "a1")
	if err := repo.Create(ctx, fresh); err != nil {
		t.Fatalf("create: %v", err)
	}

	begun := fresh.Begin()
	begun.AnswerLog = []adaptive.AnswerRecord{{
		Phase:         adaptive.PhaseMC,
		QuestionIndex: 0,
		Submitted:     "a",
		Correct:       true,
		SubmittedAt:   time.Now().UTC().Truncate(time.Second),
	}}
	begun.CurrentIndex = 1
	if err := repo.Save(ctx, &begun); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "s1", "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phase != adaptive.PhaseMC || got.CurrentIndex != 1 {
		t.Errorf("unexpected session %+v", got)
	}
	if len(got.AnswerLog) != 1 || !got.AnswerLog[0].Correct {
		t.Errorf("answer log not persisted: %+v", got.AnswerLog)
	}
	if got.Version != begun.Version+1 {
		t.Errorf("version not bumped: got %d, want %d", got.Version, begun.Version+1)
	}
}

func TestSessionRepo_VersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, adaptive.NewState("s1", "a1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two readers load the same version.
	first, _ := repo.Get(ctx, "s1", "a1")
	second, _ := repo.Get(ctx, "s1", "a1")

	begunFirst := first.Begin()
	if err := repo.Save(ctx, &begunFirst); err != nil {
		t.Fatalf("first save: %v", err)
	}

	begunSecond := second.Begin()
	err := repo.Save(ctx, &begunSecond)
	if !errors.Is(err, adaptive.ErrVersionConflict) {
		t.Errorf("expected version conflict, got %v", err)
	}
}

func TestPoolRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PoolRepo()
	ctx := context.Background()

	pool := &question.Pool{
		ID:            "p1",
		Topic:         "fractions",
		Subject:       "math",
		Grade:         "5",
		Mode:          question.ModeScaffold,
		TargetAbility: question.TierStruggling,
		Questions: []question.Question{{
			Prompt:      "What is 1/2 + 1/4?",
			Kind:        question.KindMultipleChoice,
			Choices:     []string{"A. 3/4", "B. 2/6"},
			Expected:    []string{"a"},
			Hint:        "Find a common denominator first.",
			Explanation: "Convert 1/2 to 2/4, then add.",
			Difficulty:  question.DifficultyEasy,
		}},
		FinalMessage: "Great work!",
	}
	if err := repo.Save(ctx, pool); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Topic != "fractions" || got.Mode != question.ModeScaffold {
		t.Errorf("unexpected pool %+v", got)
	}
	if got.Len() != 1 || got.At(0).Difficulty != question.DifficultyEasy {
		t.Errorf("questions not persisted: %+v", got.Questions)
	}
}

func TestAssessmentRepo_RecentScoresMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []float64{70, 80, 90} {
		if err := repo.Record(ctx, "s1", score, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	scores, err := repo.RecentScores(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("recent scores: %v", err)
	}
	if len(scores) != 2 || scores[0] != 90 || scores[1] != 80 {
		t.Errorf("expected [90 80], got %v", scores)
	}
}

func TestEventRepo_AppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4.1-mini",
		Purpose:      "pool-gen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    1500,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}
	err = events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4.1-mini",
		Purpose:      "pool-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	usage, err := events.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.Requests != 2 || usage.Failures != 1 {
		t.Errorf("unexpected summary %+v", usage)
	}
	if usage.ByModel["gpt-4.1-mini"].OutputTokens != 800 {
		t.Errorf("unexpected per-model usage %+v", usage.ByModel)
	}
}

func TestAnswerSink_RecordsSubmission(t *testing.T) {
	s := openTestStore(t)
	sink, err := s.AnswerSink()
	if err != nil {
		t.Fatalf("answer sink: %v", err)
	}
	ctx := context.Background()

	err = sink.RecordAnswer(ctx, adaptive.AnswerEvent{
		StudentID:     "s1",
		AssignmentID:  "a1",
		Phase:         adaptive.PhaseMC,
		QuestionIndex: 0,
		Prompt:        "Which option is correct?",
		Submitted:     "a",
		Correct:       true,
		Kind:          question.KindMultipleChoice,
	})
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}

	n, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected one answer event, got %d", n)
	}
}
