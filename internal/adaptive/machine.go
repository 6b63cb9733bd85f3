package adaptive

import (
	"strings"
	"time"

	"github.com/cozmiclearning/cozmic/internal/question"
)

// Config holds the branching policy for hybrid assignments.
type Config struct {
	// EnrichmentThreshold is the MC-phase accuracy at or above which
	// the session binds the enrichment pool instead of remediation.
	// Policy constant; product owns the value.
	EnrichmentThreshold float64
}

// DefaultConfig returns the platform default: 70% accuracy.
func DefaultConfig() Config {
	return Config{EnrichmentThreshold: 0.70}
}

// Scorer computes MC-phase accuracy from an answer log. Injected into
// AdvancePhase so grading policy stays out of the transition logic.
type Scorer func(log []AnswerRecord) float64

// MCAccuracy is the default Scorer: the fraction of correct answers
// among mc_phase entries. No entries scores 0.
func MCAccuracy(log []AnswerRecord) float64 {
	total, correct := 0, 0
	for _, rec := range log {
		if rec.Phase != PhaseMC {
			continue
		}
		total++
		if rec.Correct {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Result reports the outcome of a SubmitAnswer call.
type Result struct {
	// Accepted is false when the submission was rejected as stale or
	// out of range; the returned state is then the prior state and the
	// caller must treat the answer as already recorded.
	Accepted bool

	// Correct is the grading outcome. Always false on rejection.
	Correct bool
}

// Begin moves a lazily-created session into the diagnostic phase.
// No-op for any other phase (forward-only).
func (s State) Begin() State {
	if s.Phase != PhaseNotStarted {
		return s
	}
	out := s.clone()
	out.Phase = PhaseMC
	out.CurrentIndex = 0
	return out
}

// CurrentQuestion returns the question at CurrentIndex from the pool
// matching the current phase, or nil when the index is past the end of
// that pool (the caller should then advance the phase) or the session
// is not in a serving phase.
func (s State) CurrentQuestion(mcPool, masteryPool *question.Pool) *question.Question {
	switch s.Phase {
	case PhaseMC:
		return mcPool.At(s.CurrentIndex)
	case PhaseMastery:
		return masteryPool.At(s.CurrentIndex)
	default:
		return nil
	}
}

// SubmitAnswer grades the answer for the question at index in the
// current phase's pool. Submissions whose index does not match
// CurrentIndex are rejected unchanged: this is the idempotence guard
// against double-clicks and retried requests. On acceptance the answer
// is logged and CurrentIndex advances by exactly one; the phase never
// changes here.
func (s State) SubmitAnswer(pool *question.Pool, index int, answer string, now time.Time) (State, Result) {
	if s.Phase != PhaseMC && s.Phase != PhaseMastery {
		return s, Result{}
	}
	if index != s.CurrentIndex {
		return s, Result{}
	}

	q := pool.At(index)
	if q == nil {
		return s, Result{}
	}

	correct := question.CheckAnswer(answer, q)

	out := s.clone()
	out.AnswerLog = append(out.AnswerLog, AnswerRecord{
		Phase:         s.Phase,
		QuestionIndex: index,
		Submitted:     strings.TrimSpace(answer),
		Correct:       correct,
		SubmittedAt:   now,
	})
	out.CurrentIndex++

	return out, Result{Accepted: true, Correct: correct}
}

// AdvancePhase ends the diagnostic phase once its pool is exhausted.
// It latches MCPhaseComplete, scores the MC phase, and for hybrid
// assignments binds the mastery track exactly once: accuracy below the
// enrichment threshold binds remediation, otherwise enrichment. Without
// a mastery pool the session completes directly. Calling it in any
// other phase, or before the MC pool is exhausted, is a no-op, so a
// replayed request cannot re-branch an already-advanced session.
func (s State) AdvancePhase(mcPoolLen int, scorer Scorer, hasMastery bool, cfg Config) State {
	if s.Phase != PhaseMC {
		return s
	}
	if s.CurrentIndex < mcPoolLen {
		return s
	}

	out := s.clone()
	out.MCPhaseComplete = true

	if !hasMastery {
		out.Phase = PhaseComplete
		return out
	}

	if out.Track == TrackNone {
		if scorer == nil {
			scorer = MCAccuracy
		}
		if scorer(out.AnswerLog) >= cfg.EnrichmentThreshold {
			out.Track = TrackEnrichment
		} else {
			out.Track = TrackRemediation
		}
	}

	out.Phase = PhaseMastery
	out.CurrentIndex = 0
	return out
}

// CompleteIfDone finishes the mastery phase once its pool is
// exhausted. No-op in any other phase or while questions remain.
func (s State) CompleteIfDone(masteryPoolLen int) State {
	if s.Phase != PhaseMastery {
		return s
	}
	if s.CurrentIndex < masteryPoolLen {
		return s
	}
	out := s.clone()
	out.Phase = PhaseComplete
	return out
}
