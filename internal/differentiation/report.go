// Package differentiation scores a question pool against the contract
// of its declared pedagogical mode. The validator is advisory: an
// invalid pool can still be published, but its warnings must reach the
// assignment author.
package differentiation

import "github.com/cozmiclearning/cozmic/internal/question"

// Check records a single rule evaluation for the report.
type Check struct {
	// Label is a short identifier, e.g. "scaffold-hints".
	Label string

	// Value is the measured quantity the rule compared against its
	// threshold (a fraction or count, depending on the rule).
	Value float64

	// Passed is false when the rule's failing condition triggered.
	Passed bool
}

// Metrics are the aggregate measurements always computed for a pool,
// regardless of mode.
type Metrics struct {
	Total int

	// Non-trivial hints and explanations: length greater than 10.
	WithHints           int
	HintFraction        float64
	WithExplanations    int
	ExplanationFraction float64

	MultipleChoice int
	FreeResponse   int

	DifficultyHistogram map[question.Difficulty]int

	Trend question.TrendLabel
}

// Report is the outcome of validating one pool. Derived purely from
// the pool; recomputed on demand, never persisted as authoritative.
type Report struct {
	Valid    bool
	Metrics  Metrics
	Warnings []string
	Checks   []Check
}

// Map flattens the metrics for serialization and display.
func (m Metrics) Map() map[string]any {
	return map[string]any{
		"total":                m.Total,
		"with_hints":           m.WithHints,
		"hint_fraction":        m.HintFraction,
		"with_explanations":    m.WithExplanations,
		"explanation_fraction": m.ExplanationFraction,
		"multiple_choice":      m.MultipleChoice,
		"free_response":        m.FreeResponse,
		"easy":                 m.DifficultyHistogram[question.DifficultyEasy],
		"medium":               m.DifficultyHistogram[question.DifficultyMedium],
		"hard":                 m.DifficultyHistogram[question.DifficultyHard],
		"trend":                string(m.Trend),
	}
}
