// Package ability converts a student's recent assessment history into a
// three-tier ability label used to parameterize pool generation.
package ability

import "github.com/cozmiclearning/cozmic/internal/question"

// MaxRecentScores is the size of the rolling assessment window.
const MaxRecentScores = 10

// Thresholds are the tier boundaries applied to the window mean.
// Policy constants; adjust here rather than inline.
type Thresholds struct {
	// Advanced is the inclusive lower bound for the advanced tier.
	Advanced float64

	// Struggling is the exclusive upper bound for the struggling tier.
	Struggling float64
}

// DefaultThresholds returns the platform defaults: 85+ advanced,
// below 60 struggling.
func DefaultThresholds() Thresholds {
	return Thresholds{Advanced: 85, Struggling: 60}
}

// Classify maps a window of recent assessment scores (most recent
// first, at most MaxRecentScores) to an ability tier. An empty history
// defaults to on_level so students without records are not penalized.
func Classify(recentScores []float64) question.Tier {
	return ClassifyWith(recentScores, DefaultThresholds())
}

// ClassifyWith is Classify with explicit tier boundaries.
func ClassifyWith(recentScores []float64, th Thresholds) question.Tier {
	if len(recentScores) == 0 {
		return question.TierOnLevel
	}

	scores := recentScores
	if len(scores) > MaxRecentScores {
		scores = scores[:MaxRecentScores]
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	switch {
	case mean >= th.Advanced:
		return question.TierAdvanced
	case mean < th.Struggling:
		return question.TierStruggling
	default:
		return question.TierOnLevel
	}
}
