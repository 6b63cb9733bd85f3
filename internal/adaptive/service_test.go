package adaptive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// memSessionStore is an in-memory SessionStore with the same versioned
// compare-and-swap semantics as the SQLite-backed repo.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]State
	saves    int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]State)}
}

func key(studentID, assignmentID string) string {
	return studentID + "/" + assignmentID
}

func (m *memSessionStore) Get(_ context.Context, studentID, assignmentID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[key(studentID, assignmentID)]
	if !ok {
		return nil, nil
	}
	cp := st.clone()
	return &cp, nil
}

func (m *memSessionStore) Create(_ context.Context, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(st.StudentID, st.AssignmentID)
	if _, ok := m.sessions[k]; ok {
		return fmt.Errorf("session exists")
	}
	m.sessions[k] = st.clone()
	return nil
}

func (m *memSessionStore) Save(_ context.Context, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(st.StudentID, st.AssignmentID)
	stored, ok := m.sessions[k]
	if !ok || stored.Version != st.Version {
		return ErrVersionConflict
	}
	next := st.clone()
	next.Version++
	m.sessions[k] = next
	m.saves++
	return nil
}

type memSink struct {
	mu     sync.Mutex
	events []AnswerEvent
}

func (s *memSink) RecordAnswer(_ context.Context, ev AnswerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func hybridAssignment(mcLen, masteryLen int) *Assignment {
	return &Assignment{
		ID:              "a1",
		MCPool:          mcPool(mcLen),
		RemediationPool: freePool(masteryLen),
		EnrichmentPool:  freePool(masteryLen),
	}
}

func TestService_GetCurrentCreatesLazily(t *testing.T) {
	store := newMemSessionStore()
	svc := NewService(store, nil, DefaultConfig())
	asg := hybridAssignment(3, 2)

	q, st, err := svc.GetCurrent(context.Background(), "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil {
		t.Fatal("expected the first MC question")
	}
	if st.Phase != PhaseMC {
		t.Errorf("expected mc_phase, got %s", st.Phase)
	}
	if len(store.sessions) != 1 {
		t.Errorf("expected one stored session, got %d", len(store.sessions))
	}
}

func TestService_SubmitAnswerPersists(t *testing.T) {
	store := newMemSessionStore()
	sink := &memSink{}
	svc := NewService(store, sink, DefaultConfig())
	asg := hybridAssignment(2, 1)
	ctx := context.Background()

	if _, _, err := svc.GetCurrent(ctx, "s1", asg); err != nil {
		t.Fatal(err)
	}

	st, res, err := svc.SubmitAnswer(ctx, "s1", asg, 0, "a")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Accepted || !res.Correct {
		t.Fatalf("expected accepted correct, got %+v", res)
	}
	if st.CurrentIndex != 1 {
		t.Errorf("expected index 1, got %d", st.CurrentIndex)
	}

	stored, _ := store.Get(ctx, "s1", "a1")
	if stored.CurrentIndex != 1 || len(stored.AnswerLog) != 1 {
		t.Errorf("submission not persisted: %+v", stored)
	}
	if len(sink.events) != 1 || !sink.events[0].Correct {
		t.Errorf("expected one audit event, got %+v", sink.events)
	}
}

func TestService_StaleSubmissionNotPersistedNorAudited(t *testing.T) {
	store := newMemSessionStore()
	sink := &memSink{}
	svc := NewService(store, sink, DefaultConfig())
	asg := hybridAssignment(2, 1)
	ctx := context.Background()

	if _, _, err := svc.SubmitAnswer(ctx, "s1", asg, 0, "a"); err != nil {
		t.Fatal(err)
	}
	saves := store.saves

	st, res, err := svc.SubmitAnswer(ctx, "s1", asg, 0, "a")
	if err != nil {
		t.Fatal(err)
	}
	if res.Accepted {
		t.Error("duplicate submission must be rejected")
	}
	if st.CurrentIndex != 1 {
		t.Errorf("state must be unchanged, got index %d", st.CurrentIndex)
	}
	if store.saves != saves {
		t.Error("rejected submission must not write")
	}
	if len(sink.events) != 1 {
		t.Errorf("rejected submission must not be audited, got %d events", len(sink.events))
	}
}

func TestService_FullHybridFlow(t *testing.T) {
	store := newMemSessionStore()
	svc := NewService(store, nil, DefaultConfig())
	asg := hybridAssignment(5, 2)
	ctx := context.Background()

	// Answer 4 of 5 MC questions correctly (80%).
	for i := 0; i < 5; i++ {
		ans := "b"
		if i < 4 {
			ans = "a"
		}
		if _, _, err := svc.SubmitAnswer(ctx, "s1", asg, i, ans); err != nil {
			t.Fatal(err)
		}
	}

	q, _, err := svc.GetCurrent(ctx, "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Fatal("MC pool exhausted; expected nil question")
	}

	st, err := svc.AdvancePhase(ctx, "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if st.Track != TrackEnrichment {
		t.Errorf("80%% accuracy must bind enrichment, got %s", st.Track)
	}

	for i := 0; i < 2; i++ {
		if _, _, err := svc.SubmitAnswer(ctx, "s1", asg, i, "an answer"); err != nil {
			t.Fatal(err)
		}
	}

	st, err = svc.CompleteIfDone(ctx, "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if st.Phase != PhaseComplete {
		t.Errorf("expected complete, got %s", st.Phase)
	}
}

// conflictStore fails every Save with ErrVersionConflict while the
// underlying row stays not_started, so the begin write can never win.
type conflictStore struct {
	*memSessionStore
	saveCalls int
}

func (s *conflictStore) Save(context.Context, *State) error {
	s.saveCalls++
	return ErrVersionConflict
}

func TestService_GetCurrentBeginConflictIsBounded(t *testing.T) {
	store := &conflictStore{memSessionStore: newMemSessionStore()}
	svc := NewService(store, nil, DefaultConfig())
	asg := hybridAssignment(3, 2)

	_, _, err := svc.GetCurrent(context.Background(), "s1", asg)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict once every begin write loses, got %v", err)
	}
	if store.saveCalls != saveAttempts {
		t.Errorf("expected %d save attempts, got %d", saveAttempts, store.saveCalls)
	}
}

// beginRaceStore loses the first begin write but lets a concurrent
// request win it, so the retry reads an already begun session.
type beginRaceStore struct {
	*memSessionStore
	raced bool
}

func (s *beginRaceStore) Save(ctx context.Context, st *State) error {
	if !s.raced {
		s.raced = true
		winner := st.clone()
		if err := s.memSessionStore.Save(ctx, &winner); err != nil {
			return err
		}
		return ErrVersionConflict
	}
	return s.memSessionStore.Save(ctx, st)
}

func TestService_GetCurrentRecoversFromLostBeginRace(t *testing.T) {
	store := &beginRaceStore{memSessionStore: newMemSessionStore()}
	svc := NewService(store, nil, DefaultConfig())
	asg := hybridAssignment(3, 2)

	q, st, err := svc.GetCurrent(context.Background(), "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil {
		t.Fatal("expected the first MC question after re-reading")
	}
	if st.Phase != PhaseMC {
		t.Errorf("expected mc_phase, got %s", st.Phase)
	}
}

func TestService_TransitionReplayIsStable(t *testing.T) {
	store := newMemSessionStore()
	svc := NewService(store, nil, DefaultConfig())
	asg := hybridAssignment(1, 1)
	ctx := context.Background()

	if _, _, err := svc.SubmitAnswer(ctx, "s1", asg, 0, "a"); err != nil {
		t.Fatal(err)
	}
	first, err := svc.AdvancePhase(ctx, "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	saves := store.saves

	second, err := svc.AdvancePhase(ctx, "s1", asg)
	if err != nil {
		t.Fatal(err)
	}
	if second.Phase != first.Phase || second.Track != first.Track {
		t.Errorf("replayed advance changed state: %+v", second)
	}
	if store.saves != saves {
		t.Error("no-op transition must not write")
	}
}
