package question

// Mode is a declared pedagogical strategy constraining the composition
// of a question pool.
type Mode string

const (
	ModeNone               Mode = "none"
	ModeAdaptive           Mode = "adaptive"
	ModeGapFill            Mode = "gap_fill"
	ModeMastery            Mode = "mastery"
	ModeScaffold           Mode = "scaffold"
	ModeMultipleChoiceOnly Mode = "multiple_choice_only"
	ModeQuickAssessment    Mode = "quick_assessment"
	ModeDeepConceptual     Mode = "deep_conceptual"
	ModeCrossTopic         Mode = "cross_topic"
)

// Tier is a student ability band derived from recent assessment
// performance.
type Tier string

const (
	TierStruggling Tier = "struggling"
	TierOnLevel    Tier = "on_level"
	TierAdvanced   Tier = "advanced"
)

// Pool is an ordered, immutable set of questions generated for one
// (topic, mode, ability) combination. Regeneration produces a new pool;
// a validated pool is never edited in place.
type Pool struct {
	// ID is a UUID assigned when the pool is built.
	ID string

	Topic   string
	Subject string
	Grade   string

	Mode          Mode
	TargetAbility Tier

	Questions []Question

	// FinalMessage is the generator's closing message, shown when the
	// student finishes the pool.
	FinalMessage string

	// Synthetic is true when every question came from the fallback
	// synthesis path (total generation parse failure).
	Synthetic bool
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int { return len(p.Questions) }

// At returns the question at index i, or nil when i is out of range.
func (p *Pool) At(i int) *Question {
	if p == nil || i < 0 || i >= len(p.Questions) {
		return nil
	}
	return &p.Questions[i]
}

// Difficulties returns the ordered difficulty sequence of the pool,
// as consumed by Trend.
func (p *Pool) Difficulties() []Difficulty {
	out := make([]Difficulty, len(p.Questions))
	for i, q := range p.Questions {
		out[i] = q.Difficulty
	}
	return out
}
