package question

import "strings"

// Difficulty is a structural difficulty band for a single question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyScore maps a difficulty band to its numeric weight for
// trend arithmetic.
func DifficultyScore(d Difficulty) float64 {
	switch d {
	case DifficultyHard:
		return 3
	case DifficultyMedium:
		return 2
	default:
		return 1
	}
}

// multiStepKeywords signal questions that require chained reasoning.
var multiStepKeywords = []string{
	"calculate",
	"then",
	"compare",
	"explain why",
	"show your work",
	"solve for",
}

// advancedVocabulary signals higher-order thinking prompts.
var advancedVocabulary = []string{
	"synthesize",
	"evaluate",
	"critique",
	"analyze",
	"justify",
	"hypothesize",
}

// Estimate scores a question's difficulty from structural features
// only. It is a pure function: the same question always yields the
// same band.
func Estimate(q *Question) Difficulty {
	score := 0

	switch {
	case len(q.Prompt) > 200:
		score += 2
	case len(q.Prompt) > 100:
		score++
	}

	if q.Kind == KindFree {
		score++
	}

	prompt := strings.ToLower(q.Prompt)
	if containsAny(prompt, multiStepKeywords) {
		score += 2
	}

	if len(q.Hint) > 50 {
		score++
	}

	if containsAny(prompt, advancedVocabulary) {
		score += 2
	}

	switch {
	case score >= 5:
		return DifficultyHard
	case score >= 3:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// TrendLabel classifies how difficulty develops across a pool.
type TrendLabel string

const (
	TrendProgressive      TrendLabel = "progressive"
	TrendBalanced         TrendLabel = "balanced"
	TrendMixed            TrendLabel = "mixed"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// trendThreshold is the average-difficulty delta separating a
// progressive ramp from a balanced pool.
const trendThreshold = 0.3

// Trend compares average difficulty between the two halves of a
// sequence. Fewer than 3 items cannot establish a trend.
func Trend(difficulties []Difficulty) TrendLabel {
	if len(difficulties) < 3 {
		return TrendInsufficientData
	}

	mid := len(difficulties) / 2
	first := averageScore(difficulties[:mid])
	second := averageScore(difficulties[mid:])

	delta := second - first
	switch {
	case delta > trendThreshold:
		return TrendProgressive
	case delta > -trendThreshold && delta < trendThreshold:
		return TrendBalanced
	default:
		return TrendMixed
	}
}

func averageScore(ds []Difficulty) float64 {
	if len(ds) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range ds {
		sum += DifficultyScore(d)
	}
	return sum / float64(len(ds))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
