package differentiation

import (
	"fmt"

	"github.com/cozmiclearning/cozmic/internal/question"
)

// nonTrivialLen is the minimum length for a hint or explanation to
// count as real content rather than a stub default.
const nonTrivialLen = 10

// Config holds the mode rule thresholds. These are pedagogy policy
// constants with no derivation from first principles; product owns the
// values, code only applies them.
type Config struct {
	// ScaffoldHintFraction of questions must carry a hint (invalid below).
	ScaffoldHintFraction float64

	// ScaffoldExplanationFraction of questions should carry an
	// explanation (warning only).
	ScaffoldExplanationFraction float64

	// MasteryHardFraction of questions must be hard (invalid below).
	MasteryHardFraction float64

	// MasteryFreeFraction of questions should be free-response
	// (warning only).
	MasteryFreeFraction float64

	// GapFillFraction applies to both hints and explanations in
	// gap_fill mode (warning only).
	GapFillFraction float64
}

// DefaultConfig returns the platform defaults.
func DefaultConfig() Config {
	return Config{
		ScaffoldHintFraction:        0.80,
		ScaffoldExplanationFraction: 0.80,
		MasteryHardFraction:         0.40,
		MasteryFreeFraction:         0.50,
		GapFillFraction:             0.60,
	}
}

// Validate computes the full report for a pool using default thresholds.
func Validate(pool *question.Pool) *Report {
	return ValidateWith(pool, DefaultConfig())
}

// ValidateWith computes metrics for the pool and evaluates the rule
// table for its declared mode. Rules for other modes are not consulted.
func ValidateWith(pool *question.Pool, cfg Config) *Report {
	report := &Report{
		Valid:   true,
		Metrics: computeMetrics(pool),
	}

	switch pool.Mode {
	case question.ModeScaffold:
		checkScaffold(report, cfg)
	case question.ModeMastery:
		checkMastery(report, cfg)
	case question.ModeAdaptive:
		checkAdaptive(report)
	case question.ModeGapFill:
		checkGapFill(report, cfg)
	}

	checkKindMix(report)

	return report
}

func computeMetrics(pool *question.Pool) Metrics {
	m := Metrics{
		Total:               pool.Len(),
		DifficultyHistogram: make(map[question.Difficulty]int),
		Trend:               question.Trend(pool.Difficulties()),
	}

	for _, q := range pool.Questions {
		if len(q.Hint) > nonTrivialLen {
			m.WithHints++
		}
		if len(q.Explanation) > nonTrivialLen {
			m.WithExplanations++
		}
		if q.Kind == question.KindMultipleChoice {
			m.MultipleChoice++
		} else {
			m.FreeResponse++
		}
		m.DifficultyHistogram[q.Difficulty]++
	}

	if m.Total > 0 {
		m.HintFraction = float64(m.WithHints) / float64(m.Total)
		m.ExplanationFraction = float64(m.WithExplanations) / float64(m.Total)
	}

	return m
}

func checkScaffold(r *Report, cfg Config) {
	hintsOK := r.Metrics.HintFraction >= cfg.ScaffoldHintFraction
	r.Checks = append(r.Checks, Check{Label: "scaffold-hints", Value: r.Metrics.HintFraction, Passed: hintsOK})
	if !hintsOK {
		r.Valid = false
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"only %.0f%% of questions have hints; scaffold mode expects at least %.0f%%",
			r.Metrics.HintFraction*100, cfg.ScaffoldHintFraction*100))
	}

	explOK := r.Metrics.ExplanationFraction >= cfg.ScaffoldExplanationFraction
	r.Checks = append(r.Checks, Check{Label: "scaffold-explanations", Value: r.Metrics.ExplanationFraction, Passed: explOK})
	if !explOK {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"only %.0f%% of questions have explanations; scaffold mode works best with %.0f%%+",
			r.Metrics.ExplanationFraction*100, cfg.ScaffoldExplanationFraction*100))
	}
}

func checkMastery(r *Report, cfg Config) {
	hardFrac := 0.0
	freeFrac := 0.0
	if r.Metrics.Total > 0 {
		hardFrac = float64(r.Metrics.DifficultyHistogram[question.DifficultyHard]) / float64(r.Metrics.Total)
		freeFrac = float64(r.Metrics.FreeResponse) / float64(r.Metrics.Total)
	}

	hardOK := hardFrac >= cfg.MasteryHardFraction
	r.Checks = append(r.Checks, Check{Label: "mastery-hard", Value: hardFrac, Passed: hardOK})
	if !hardOK {
		r.Valid = false
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"only %.0f%% are challenging; mastery mode expects at least %.0f%% hard questions",
			hardFrac*100, cfg.MasteryHardFraction*100))
	}

	freeOK := freeFrac >= cfg.MasteryFreeFraction
	r.Checks = append(r.Checks, Check{Label: "mastery-free", Value: freeFrac, Passed: freeOK})
	if !freeOK {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"only %.0f%% are free-response; mastery mode works best with %.0f%%+",
			freeFrac*100, cfg.MasteryFreeFraction*100))
	}
}

func checkAdaptive(r *Report) {
	hasEasy := r.Metrics.DifficultyHistogram[question.DifficultyEasy] > 0
	hasHard := r.Metrics.DifficultyHistogram[question.DifficultyHard] > 0
	spreadOK := hasEasy && hasHard

	r.Checks = append(r.Checks, Check{Label: "adaptive-spread", Value: boolValue(spreadOK), Passed: spreadOK})
	if !spreadOK {
		r.Valid = false
		r.Warnings = append(r.Warnings,
			"adaptive mode needs at least one easy and one hard question to branch on")
	}
}

func checkGapFill(r *Report, cfg Config) {
	supportOK := r.Metrics.HintFraction >= cfg.GapFillFraction &&
		r.Metrics.ExplanationFraction >= cfg.GapFillFraction

	r.Checks = append(r.Checks, Check{Label: "gapfill-support", Value: minFloat(r.Metrics.HintFraction, r.Metrics.ExplanationFraction), Passed: supportOK})
	if !supportOK {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"gap_fill mode works best when %.0f%%+ of questions have both hints and explanations",
			cfg.GapFillFraction*100))
	}
}

// checkKindMix applies to every mode: a pool with only one answer kind
// gets a warning but is never invalidated by it.
func checkKindMix(r *Report) {
	mixed := r.Metrics.MultipleChoice > 0 && r.Metrics.FreeResponse > 0
	r.Checks = append(r.Checks, Check{Label: "kind-mix", Value: boolValue(mixed), Passed: mixed})
	if !mixed && r.Metrics.Total > 0 {
		r.Warnings = append(r.Warnings,
			"pool contains only one question kind; a mix of multiple choice and free response covers more skills")
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
