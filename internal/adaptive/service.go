package adaptive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cozmiclearning/cozmic/internal/question"
)

// ErrVersionConflict is returned by SessionStore.Save when a
// conditional write loses against a concurrent writer. The service
// re-reads and retries; two racing submissions for the same index can
// therefore never both be recorded.
var ErrVersionConflict = errors.New("adaptive: session version conflict")

// saveAttempts bounds the optimistic retry loop. Conflicts are
// double-click scale, not contention scale; three attempts is plenty.
const saveAttempts = 3

// SessionStore is the persistence the service needs. Implemented by
// the store package; Save must be a compare-and-swap on State.Version.
type SessionStore interface {
	Get(ctx context.Context, studentID, assignmentID string) (*State, error)
	Create(ctx context.Context, st *State) error
	Save(ctx context.Context, st *State) error
}

// AnswerEvent is the audit record the service emits for every
// accepted submission.
type AnswerEvent struct {
	StudentID     string
	AssignmentID  string
	Phase         Phase
	QuestionIndex int
	Prompt        string
	Submitted     string
	Correct       bool
	Kind          question.Kind
}

// EventSink receives accepted-answer audit events. Optional; a nil
// sink disables auditing.
type EventSink interface {
	RecordAnswer(ctx context.Context, ev AnswerEvent) error
}

// Assignment describes the pools a session runs against. Hybrid
// assignments carry both mastery pools pre-generated; the session binds
// one of them when the diagnostic phase ends.
type Assignment struct {
	ID     string
	MCPool *question.Pool

	// RemediationPool and EnrichmentPool are nil for non-hybrid
	// assignments.
	RemediationPool *question.Pool
	EnrichmentPool  *question.Pool
}

// Hybrid reports whether the assignment has a mastery phase.
func (a *Assignment) Hybrid() bool {
	return a.RemediationPool != nil || a.EnrichmentPool != nil
}

// masteryPool resolves the bound track to its pool.
func (a *Assignment) masteryPool(track Track) *question.Pool {
	switch track {
	case TrackRemediation:
		return a.RemediationPool
	case TrackEnrichment:
		return a.EnrichmentPool
	default:
		return nil
	}
}

// phasePool returns the pool the state is currently serving from.
func (a *Assignment) phasePool(st *State) *question.Pool {
	switch st.Phase {
	case PhaseMC:
		return a.MCPool
	case PhaseMastery:
		return a.masteryPool(st.Track)
	default:
		return nil
	}
}

// Service exposes the state machine over persisted sessions. Every
// mutation is a read-modify-write cycle committed with an optimistic
// version check, so concurrent calls for the same pair serialize and
// the stale one is rejected or retried.
type Service struct {
	sessions SessionStore
	sink     EventSink
	scorer   Scorer
	cfg      Config
}

// NewService creates a session service. sink may be nil.
func NewService(sessions SessionStore, sink EventSink, cfg Config) *Service {
	return &Service{
		sessions: sessions,
		sink:     sink,
		scorer:   MCAccuracy,
		cfg:      cfg,
	}
}

// GetCurrent returns the question the student should see next, along
// with the session state. A missing session is created lazily and
// moved into the diagnostic phase. A nil question with a non-terminal
// phase means the current pool is exhausted and the caller should
// advance the phase.
func (s *Service) GetCurrent(ctx context.Context, studentID string, asg *Assignment) (*question.Question, *State, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		st, err := s.loadOrCreate(ctx, studentID, asg.ID)
		if err != nil {
			return nil, nil, err
		}

		if st.Phase == PhaseNotStarted {
			begun := st.Begin()
			if err := s.sessions.Save(ctx, &begun); err != nil {
				if errors.Is(err, ErrVersionConflict) {
					// Another request began the session; re-read it.
					continue
				}
				return nil, nil, fmt.Errorf("begin session: %w", err)
			}
			st = &begun
		}

		q := st.CurrentQuestion(asg.MCPool, asg.masteryPool(st.Track))
		return q, st, nil
	}

	return nil, nil, fmt.Errorf("begin session for %s/%s: %w", studentID, asg.ID, ErrVersionConflict)
}

// SubmitAnswer grades and records the answer for the question at
// index. Stale or out-of-range submissions return the unchanged state
// with Result.Accepted false and no error: the caller treats them as
// already recorded.
func (s *Service) SubmitAnswer(ctx context.Context, studentID string, asg *Assignment, index int, answer string) (*State, Result, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		st, err := s.loadOrCreate(ctx, studentID, asg.ID)
		if err != nil {
			return nil, Result{}, err
		}
		if st.Phase == PhaseNotStarted {
			begun := st.Begin()
			st = &begun
		}

		pool := asg.phasePool(st)
		if pool == nil {
			return st, Result{}, nil
		}

		next, res := st.SubmitAnswer(pool, index, answer, time.Now().UTC())
		if !res.Accepted {
			return st, res, nil
		}

		if err := s.sessions.Save(ctx, &next); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				continue
			}
			return nil, Result{}, fmt.Errorf("save session: %w", err)
		}

		s.audit(ctx, &next, pool, index, answer, res)
		return &next, res, nil
	}

	return nil, Result{}, fmt.Errorf("submit answer for %s/%s: %w", studentID, asg.ID, ErrVersionConflict)
}

// AdvancePhase ends the diagnostic phase once its pool is exhausted,
// binding the mastery track for hybrid assignments. Safe to replay.
func (s *Service) AdvancePhase(ctx context.Context, studentID string, asg *Assignment) (*State, error) {
	return s.transition(ctx, studentID, asg.ID, func(st State) State {
		return st.AdvancePhase(asg.MCPool.Len(), s.scorer, asg.Hybrid(), s.cfg)
	})
}

// CompleteIfDone finishes the mastery phase once its pool is
// exhausted. Safe to replay.
func (s *Service) CompleteIfDone(ctx context.Context, studentID string, asg *Assignment) (*State, error) {
	return s.transition(ctx, studentID, asg.ID, func(st State) State {
		pool := asg.masteryPool(st.Track)
		if pool == nil {
			return st
		}
		return st.CompleteIfDone(pool.Len())
	})
}

// transition applies a pure state function under the optimistic write
// loop, skipping the write when the function made no change.
func (s *Service) transition(ctx context.Context, studentID, assignmentID string, fn func(State) State) (*State, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		st, err := s.loadOrCreate(ctx, studentID, assignmentID)
		if err != nil {
			return nil, err
		}

		next := fn(*st)
		if next.Phase == st.Phase && next.CurrentIndex == st.CurrentIndex &&
			next.MCPhaseComplete == st.MCPhaseComplete && next.Track == st.Track {
			return st, nil
		}

		if err := s.sessions.Save(ctx, &next); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				continue
			}
			return nil, fmt.Errorf("save session: %w", err)
		}
		return &next, nil
	}

	return nil, fmt.Errorf("transition for %s/%s: %w", studentID, assignmentID, ErrVersionConflict)
}

func (s *Service) loadOrCreate(ctx context.Context, studentID, assignmentID string) (*State, error) {
	st, err := s.sessions.Get(ctx, studentID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if st != nil {
		return st, nil
	}

	st = NewState(studentID, assignmentID)
	if err := s.sessions.Create(ctx, st); err != nil {
		// Lost a creation race; the row exists now.
		existing, getErr := s.sessions.Get(ctx, studentID, assignmentID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("create session: %w", err)
	}
	return st, nil
}

// audit emits the answer event; failures are swallowed since auditing
// must never break a submission.
func (s *Service) audit(ctx context.Context, st *State, pool *question.Pool, index int, answer string, res Result) {
	if s.sink == nil {
		return
	}
	q := pool.At(index)
	if q == nil {
		return
	}
	phase := PhaseMC
	if len(st.AnswerLog) > 0 {
		phase = st.AnswerLog[len(st.AnswerLog)-1].Phase
	}
	_ = s.sink.RecordAnswer(ctx, AnswerEvent{
		StudentID:     st.StudentID,
		AssignmentID:  st.AssignmentID,
		Phase:         phase,
		QuestionIndex: index,
		Prompt:        q.Prompt,
		Submitted:     answer,
		Correct:       res.Correct,
		Kind:          q.Kind,
	})
}
