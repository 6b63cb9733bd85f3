package ability

import (
	"testing"

	"github.com/cozmiclearning/cozmic/internal/question"
)

func TestClassify_EmptyHistoryDefaultsOnLevel(t *testing.T) {
	if got := Classify(nil); got != question.TierOnLevel {
		t.Errorf("expected on_level, got %s", got)
	}
}

func TestClassify_AdvancedStudent(t *testing.T) {
	scores := []float64{92, 88, 95, 90, 85, 91, 89, 93, 87, 90} // mean 90
	if got := Classify(scores); got != question.TierAdvanced {
		t.Errorf("expected advanced, got %s", got)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   question.Tier
	}{
		{"exactly 85 is advanced", []float64{85}, question.TierAdvanced},
		{"just below 60 is struggling", []float64{59.999}, question.TierStruggling},
		{"exactly 60 is on_level", []float64{60}, question.TierOnLevel},
		{"84.9 is on_level", []float64{84.9}, question.TierOnLevel},
	}
	for _, tc := range cases {
		if got := Classify(tc.scores); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassify_WindowCapsAtTen(t *testing.T) {
	// Ten perfect scores followed by older zeros; only the window counts.
	scores := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 0, 0, 0}
	if got := Classify(scores); got != question.TierAdvanced {
		t.Errorf("expected advanced from the 10 most recent, got %s", got)
	}
}

func TestClassify_MissingScoresCountAsZero(t *testing.T) {
	// Repos map null score rows to 0 before classification.
	scores := []float64{80, 0, 80, 0} // mean 40
	if got := Classify(scores); got != question.TierStruggling {
		t.Errorf("expected struggling, got %s", got)
	}
}
