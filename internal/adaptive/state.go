// Package adaptive owns per-student progress through adaptive
// assignments: a forward-only phase machine over one question pool, or
// two pools for hybrid assignments (a multiple-choice diagnostic phase
// that branches into a remediation or enrichment mastery pool).
package adaptive

import "time"

// Phase is the session's position in the assignment lifecycle.
// Transitions only ever move rightward:
//
//	not_started -> mc_phase -> mastery_phase -> complete
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseMC         Phase = "mc_phase"
	PhaseMastery    Phase = "mastery_phase"
	PhaseComplete   Phase = "complete"
)

// Track identifies which mastery pool a hybrid session was bound to
// after the diagnostic phase. Empty until branching happens; immutable
// afterwards.
type Track string

const (
	TrackNone        Track = ""
	TrackRemediation Track = "remediation"
	TrackEnrichment  Track = "enrichment"
)

// AnswerRecord is one accepted submission in the session's answer log.
type AnswerRecord struct {
	Phase         Phase
	QuestionIndex int
	Submitted     string
	Correct       bool
	SubmittedAt   time.Time
}

// State is the full session record for one (student, assignment) pair.
// Operations treat State as a value: they return the updated copy and
// never mutate the receiver, so a rejected operation hands back the
// caller's state untouched.
type State struct {
	StudentID    string
	AssignmentID string

	Phase Phase

	// CurrentIndex points at the next unanswered question in the
	// current phase's pool. Monotonically non-decreasing within a
	// phase; reset to 0 when the phase advances.
	CurrentIndex int

	// MCPhaseComplete latches true when the diagnostic phase ends.
	MCPhaseComplete bool

	Track Track

	AnswerLog []AnswerRecord

	// Version is the store's optimistic concurrency token. The machine
	// never touches it.
	Version int64
}

// NewState returns the lazily-created initial session for a pair.
func NewState(studentID, assignmentID string) *State {
	return &State{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Phase:        PhaseNotStarted,
	}
}

// clone returns a deep copy so returned states never alias the
// caller's answer log.
func (s State) clone() State {
	out := s
	out.AnswerLog = make([]AnswerRecord, len(s.AnswerLog))
	copy(out.AnswerLog, s.AnswerLog)
	return out
}
