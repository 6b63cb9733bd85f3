package question

import (
	"strings"
	"testing"
)

func TestEstimate_ShortMCIsEasy(t *testing.T) {
	q := &Question{
		Prompt:  "What is 7 x 8?",
		Kind:    KindMultipleChoice,
		Choices: []string{"A. 54", "B. 56", "C. 58", "D. 64"},
	}
	if got := Estimate(q); got != DifficultyEasy {
		t.Errorf("expected easy, got %s", got)
	}
}

func TestEstimate_LongFreeWithKeywordIsHard(t *testing.T) {
	q := &Question{
		Prompt: strings.Repeat("A train leaves the station traveling west. ", 5) +
			"Calculate the total distance, then compare it with the return trip.",
		Kind: KindFree,
	}
	// >200 chars (2) + free (1) + multi-step keyword (2) = 5.
	if got := Estimate(q); got != DifficultyHard {
		t.Errorf("expected hard, got %s", got)
	}
}

func TestEstimate_MediumBand(t *testing.T) {
	q := &Question{
		Prompt: "Explain why the seasons change as the Earth orbits the Sun each year, in your own words.",
		Kind:   KindFree,
	}
	// free (1) + "explain why" (2) = 3.
	if got := Estimate(q); got != DifficultyMedium {
		t.Errorf("expected medium, got %s", got)
	}
}

func TestEstimate_AdvancedVocabulary(t *testing.T) {
	q := &Question{
		Prompt: "Evaluate the author's argument.",
		Kind:   KindFree,
	}
	// free (1) + advanced vocab (2) = 3.
	if got := Estimate(q); got != DifficultyMedium {
		t.Errorf("expected medium, got %s", got)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	q := &Question{
		Prompt: "Synthesize the two passages, then critique the weaker one.",
		Kind:   KindFree,
		Hint:   strings.Repeat("think about the thesis statements carefully ", 2),
	}
	first := Estimate(q)
	for i := 0; i < 10; i++ {
		if got := Estimate(q); got != first {
			t.Fatalf("call %d: got %s, want %s", i, got, first)
		}
	}
}

func TestTrend_InsufficientData(t *testing.T) {
	if got := Trend([]Difficulty{DifficultyEasy, DifficultyHard}); got != TrendInsufficientData {
		t.Errorf("expected insufficient_data, got %s", got)
	}
}

func TestTrend_Progressive(t *testing.T) {
	ds := []Difficulty{DifficultyEasy, DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHard}
	if got := Trend(ds); got != TrendProgressive {
		t.Errorf("expected progressive, got %s", got)
	}
}

func TestTrend_Balanced(t *testing.T) {
	ds := []Difficulty{DifficultyMedium, DifficultyMedium, DifficultyMedium, DifficultyMedium}
	if got := Trend(ds); got != TrendBalanced {
		t.Errorf("expected balanced, got %s", got)
	}
}

func TestTrend_Mixed(t *testing.T) {
	// Second half easier than the first by more than the threshold.
	ds := []Difficulty{DifficultyHard, DifficultyHard, DifficultyEasy, DifficultyEasy}
	if got := Trend(ds); got != TrendMixed {
		t.Errorf("expected mixed, got %s", got)
	}
}

func TestCheckAnswer(t *testing.T) {
	q := &Question{
		Prompt:   "Which fraction is larger?",
		Kind:     KindMultipleChoice,
		Choices:  []string{"A. 3/4", "B. 2/3"},
		Expected: []string{"a"},
	}
	if !CheckAnswer("  A ", q) {
		t.Error("expected trimmed, case-insensitive match to pass")
	}
	if CheckAnswer("b", q) {
		t.Error("expected wrong choice to fail")
	}
	if CheckAnswer("", q) {
		t.Error("expected empty answer to fail")
	}
}

func TestCheckAnswer_AnySentinel(t *testing.T) {
	q := &Question{Prompt: "Share one fact.", Kind: KindFree, Expected: []string{ExpectedAny}}
	if !CheckAnswer("photosynthesis needs light", q) {
		t.Error("expected any non-empty answer to pass")
	}
	if CheckAnswer("   ", q) {
		t.Error("expected blank answer to fail even with the any sentinel")
	}
}

func TestChoiceLabel(t *testing.T) {
	cases := map[string]string{
		"A. 3/4":     "a",
		"b) seven":   "b",
		"C.":         "c",
		"no label":   "",
		"42. answer": "",
	}
	for in, want := range cases {
		if got := ChoiceLabel(in); got != want {
			t.Errorf("ChoiceLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
