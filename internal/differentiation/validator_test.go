package differentiation

import (
	"strings"
	"testing"

	"github.com/cozmiclearning/cozmic/internal/question"
)

func buildPool(mode question.Mode, qs []question.Question) *question.Pool {
	return &question.Pool{
		ID:        "test-pool",
		Topic:     "fractions",
		Mode:      mode,
		Questions: qs,
	}
}

func mcQuestion(difficulty question.Difficulty, hint, explanation string) question.Question {
	return question.Question{
		Prompt:      "Which fraction is larger?",
		Kind:        question.KindMultipleChoice,
		Choices:     []string{"A. 3/4", "B. 2/3"},
		Expected:    []string{"a"},
		Hint:        hint,
		Explanation: explanation,
		Difficulty:  difficulty,
	}
}

func freeQuestion(difficulty question.Difficulty, hint, explanation string) question.Question {
	return question.Question{
		Prompt:      "Explain your reasoning.",
		Kind:        question.KindFree,
		Expected:    []string{question.ExpectedAny},
		Hint:        hint,
		Explanation: explanation,
		Difficulty:  difficulty,
	}
}

const (
	realHint = "Compare the denominators before the numerators."
	realExpl = "Convert both fractions to twelfths and compare."
)

func TestValidate_Metrics(t *testing.T) {
	pool := buildPool(question.ModeNone, []question.Question{
		mcQuestion(question.DifficultyEasy, realHint, realExpl),
		mcQuestion(question.DifficultyMedium, "", realExpl),
		freeQuestion(question.DifficultyHard, realHint, ""),
	})

	r := Validate(pool)
	if !r.Valid {
		t.Error("mode none has no invalidating rules")
	}
	m := r.Metrics
	if m.Total != 3 || m.WithHints != 2 || m.WithExplanations != 2 {
		t.Errorf("unexpected metrics: %+v", m)
	}
	if m.MultipleChoice != 2 || m.FreeResponse != 1 {
		t.Errorf("unexpected kind split: %+v", m)
	}
	if m.DifficultyHistogram[question.DifficultyHard] != 1 {
		t.Errorf("unexpected histogram: %+v", m.DifficultyHistogram)
	}
	if m.Trend != question.TrendProgressive {
		t.Errorf("expected progressive trend, got %s", m.Trend)
	}
}

func TestValidate_ScaffoldMissingHintsIsInvalid(t *testing.T) {
	qs := make([]question.Question, 10)
	for i := range qs {
		hint := ""
		if i < 7 { // 70%, below the 80% contract
			hint = realHint
		}
		qs[i] = mcQuestion(question.DifficultyEasy, hint, realExpl)
	}
	r := Validate(buildPool(question.ModeScaffold, qs))

	if r.Valid {
		t.Error("expected invalid report")
	}
	if len(r.Warnings) == 0 || !strings.Contains(r.Warnings[0], "hints") {
		t.Errorf("expected a hint warning, got %v", r.Warnings)
	}
}

func TestValidate_ScaffoldWithFullSupportIsValid(t *testing.T) {
	qs := make([]question.Question, 5)
	for i := range qs {
		qs[i] = mcQuestion(question.DifficultyEasy, realHint, realExpl)
	}
	qs[4] = freeQuestion(question.DifficultyEasy, realHint, realExpl)

	r := Validate(buildPool(question.ModeScaffold, qs))
	if !r.Valid {
		t.Errorf("expected valid report, warnings: %v", r.Warnings)
	}
}

func TestValidate_MasteryThirtyPercentHard(t *testing.T) {
	qs := make([]question.Question, 10)
	for i := range qs {
		d := question.DifficultyMedium
		if i < 3 {
			d = question.DifficultyHard
		}
		qs[i] = freeQuestion(d, realHint, realExpl)
	}
	r := Validate(buildPool(question.ModeMastery, qs))

	if r.Valid {
		t.Error("expected invalid report for 30% hard")
	}
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "only 30% are challenging") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning citing 30%%, got %v", r.Warnings)
	}
}

func TestValidate_MasteryFreeShareWarnsOnly(t *testing.T) {
	qs := make([]question.Question, 10)
	for i := range qs {
		// All hard so the invalidating rule passes, but all MC.
		qs[i] = mcQuestion(question.DifficultyHard, realHint, realExpl)
	}
	r := Validate(buildPool(question.ModeMastery, qs))

	if !r.Valid {
		t.Errorf("free-response share must not invalidate, warnings: %v", r.Warnings)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a free-response warning")
	}
}

func TestValidate_AdaptiveNeedsSpread(t *testing.T) {
	qs := []question.Question{
		mcQuestion(question.DifficultyMedium, realHint, realExpl),
		freeQuestion(question.DifficultyMedium, realHint, realExpl),
		mcQuestion(question.DifficultyMedium, realHint, realExpl),
	}
	r := Validate(buildPool(question.ModeAdaptive, qs))
	if r.Valid {
		t.Error("adaptive pool without easy and hard items must be invalid")
	}

	qs[0].Difficulty = question.DifficultyEasy
	qs[2].Difficulty = question.DifficultyHard
	r = Validate(buildPool(question.ModeAdaptive, qs))
	if !r.Valid {
		t.Errorf("expected valid adaptive pool, warnings: %v", r.Warnings)
	}
}

func TestValidate_KindMixWarnsNeverInvalidates(t *testing.T) {
	qs := []question.Question{
		mcQuestion(question.DifficultyEasy, realHint, realExpl),
		mcQuestion(question.DifficultyEasy, realHint, realExpl),
	}
	r := Validate(buildPool(question.ModeNone, qs))
	if !r.Valid {
		t.Error("kind-mix check must never invalidate")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected exactly the kind-mix warning, got %v", r.Warnings)
	}
}

func TestValidate_ChecksRecorded(t *testing.T) {
	qs := []question.Question{freeQuestion(question.DifficultyHard, realHint, realExpl)}
	r := Validate(buildPool(question.ModeMastery, qs))

	labels := make(map[string]bool)
	for _, c := range r.Checks {
		labels[c.Label] = true
	}
	for _, want := range []string{"mastery-hard", "mastery-free", "kind-mix"} {
		if !labels[want] {
			t.Errorf("missing check %q in %v", want, r.Checks)
		}
	}
}
