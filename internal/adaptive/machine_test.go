package adaptive

import (
	"testing"
	"time"

	"github.com/cozmiclearning/cozmic/internal/question"
)

func mcPool(n int) *question.Pool {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			Prompt:   "Which option is correct?",
			Kind:     question.KindMultipleChoice,
			Choices:  []string{"A. yes", "B. no"},
			Expected: []string{"a"},
		}
	}
	return &question.Pool{ID: "mc", Mode: question.ModeQuickAssessment, Questions: qs}
}

func freePool(n int) *question.Pool {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			Prompt:   "Explain your reasoning.",
			Kind:     question.KindFree,
			Expected: []string{question.ExpectedAny},
		}
	}
	return &question.Pool{ID: "mastery", Mode: question.ModeMastery, Questions: qs}
}

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// answerThrough submits answers for the whole MC pool, answering
// correctly for the first `correct` questions.
func answerThrough(t *testing.T, st State, pool *question.Pool, correct int) State {
	t.Helper()
	for i := 0; i < pool.Len(); i++ {
		ans := "b"
		if i < correct {
			ans = "a"
		}
		var res Result
		st, res = st.SubmitAnswer(pool, i, ans, now)
		if !res.Accepted {
			t.Fatalf("submission %d rejected", i)
		}
	}
	return st
}

func TestBegin(t *testing.T) {
	st := NewState("s1", "a1")
	begun := st.Begin()
	if begun.Phase != PhaseMC || begun.CurrentIndex != 0 {
		t.Errorf("unexpected state after Begin: %+v", begun)
	}
	// Begin is forward-only; replay changes nothing.
	again := begun.Begin()
	if again.Phase != PhaseMC {
		t.Errorf("replayed Begin moved phase to %s", again.Phase)
	}
}

func TestSubmitAnswer_GradesAndAdvancesIndex(t *testing.T) {
	pool := mcPool(3)
	st := NewState("s1", "a1").Begin()

	st, res := st.SubmitAnswer(pool, 0, "A", now)
	if !res.Accepted || !res.Correct {
		t.Fatalf("expected accepted correct, got %+v", res)
	}
	if st.CurrentIndex != 1 {
		t.Errorf("expected index 1, got %d", st.CurrentIndex)
	}
	if len(st.AnswerLog) != 1 || st.AnswerLog[0].Phase != PhaseMC {
		t.Errorf("unexpected answer log %+v", st.AnswerLog)
	}

	st, res = st.SubmitAnswer(pool, 1, "b", now)
	if !res.Accepted || res.Correct {
		t.Fatalf("expected accepted incorrect, got %+v", res)
	}
}

func TestSubmitAnswer_StaleIndexIsRejectedNoOp(t *testing.T) {
	pool := mcPool(5)
	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, mcPool(3), 3) // index now 3

	prior := st
	next, res := st.SubmitAnswer(pool, 2, "a", now)
	if res.Accepted || res.Correct {
		t.Errorf("stale submission must be rejected, got %+v", res)
	}
	if next.CurrentIndex != prior.CurrentIndex || len(next.AnswerLog) != len(prior.AnswerLog) {
		t.Errorf("rejected submission changed state: %+v", next)
	}
}

func TestSubmitAnswer_Idempotent(t *testing.T) {
	pool := mcPool(2)
	st := NewState("s1", "a1").Begin()

	first, res := st.SubmitAnswer(pool, 0, "a", now)
	if !res.Accepted {
		t.Fatal("first submission rejected")
	}
	// Duplicate of the same index against the updated state is a no-op.
	second, res := first.SubmitAnswer(pool, 0, "a", now)
	if res.Accepted {
		t.Error("duplicate submission must be rejected")
	}
	if second.CurrentIndex != first.CurrentIndex || len(second.AnswerLog) != len(first.AnswerLog) {
		t.Errorf("duplicate submission changed state: %+v vs %+v", second, first)
	}
}

func TestAdvancePhase_BindsEnrichmentAtThreshold(t *testing.T) {
	pool := mcPool(5)
	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, pool, 4) // 80%

	st = st.AdvancePhase(pool.Len(), MCAccuracy, true, DefaultConfig())
	if st.Phase != PhaseMastery {
		t.Fatalf("expected mastery_phase, got %s", st.Phase)
	}
	if !st.MCPhaseComplete {
		t.Error("mc_phase_complete must latch")
	}
	if st.Track != TrackEnrichment {
		t.Errorf("80%% accuracy must bind enrichment, got %s", st.Track)
	}
	if st.CurrentIndex != 0 {
		t.Errorf("index must reset for the new phase, got %d", st.CurrentIndex)
	}
}

func TestAdvancePhase_BindsRemediationBelowThreshold(t *testing.T) {
	pool := mcPool(5)
	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, pool, 3) // 60%

	st = st.AdvancePhase(pool.Len(), MCAccuracy, true, DefaultConfig())
	if st.Track != TrackRemediation {
		t.Errorf("60%% accuracy must bind remediation, got %s", st.Track)
	}
}

func TestAdvancePhase_RequiresExhaustedPool(t *testing.T) {
	pool := mcPool(5)
	st := NewState("s1", "a1").Begin()
	st, _ = st.SubmitAnswer(pool, 0, "a", now)

	next := st.AdvancePhase(pool.Len(), MCAccuracy, true, DefaultConfig())
	if next.Phase != PhaseMC || next.MCPhaseComplete {
		t.Errorf("advance before pool end must be a no-op, got %+v", next)
	}
}

func TestAdvancePhase_ReplayCannotRebind(t *testing.T) {
	pool := mcPool(2)
	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, pool, 2)
	st = st.AdvancePhase(pool.Len(), MCAccuracy, true, DefaultConfig())

	bound := st.Track
	replayed := st.AdvancePhase(pool.Len(), MCAccuracy, true, DefaultConfig())
	if replayed.Phase != st.Phase || replayed.Track != bound || replayed.CurrentIndex != st.CurrentIndex {
		t.Errorf("replayed advance mutated state: %+v", replayed)
	}
}

func TestAdvancePhase_NonHybridCompletesDirectly(t *testing.T) {
	pool := mcPool(2)
	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, pool, 1)

	st = st.AdvancePhase(pool.Len(), MCAccuracy, false, DefaultConfig())
	if st.Phase != PhaseComplete {
		t.Errorf("non-hybrid must complete directly, got %s", st.Phase)
	}
	if st.Track != TrackNone {
		t.Errorf("non-hybrid must not bind a track, got %s", st.Track)
	}
}

func TestCompleteIfDone(t *testing.T) {
	mc := mcPool(1)
	mastery := freePool(2)

	st := NewState("s1", "a1").Begin()
	st = answerThrough(t, st, mc, 1)
	st = st.AdvancePhase(mc.Len(), MCAccuracy, true, DefaultConfig())

	// Not done yet.
	if next := st.CompleteIfDone(mastery.Len()); next.Phase != PhaseMastery {
		t.Errorf("premature completion: %s", next.Phase)
	}

	st, _ = st.SubmitAnswer(mastery, 0, "anything", now)
	st, _ = st.SubmitAnswer(mastery, 1, "anything", now)
	st = st.CompleteIfDone(mastery.Len())
	if st.Phase != PhaseComplete {
		t.Errorf("expected complete, got %s", st.Phase)
	}
}

func TestMonotonicity(t *testing.T) {
	mc := mcPool(3)
	mastery := freePool(2)
	st := NewState("s1", "a1").Begin()

	phaseOrder := map[Phase]int{PhaseNotStarted: 0, PhaseMC: 1, PhaseMastery: 2, PhaseComplete: 3}
	lastPhase := st.Phase
	lastIndex := st.CurrentIndex

	check := func(s State) {
		t.Helper()
		if phaseOrder[s.Phase] < phaseOrder[lastPhase] {
			t.Fatalf("phase regressed from %s to %s", lastPhase, s.Phase)
		}
		if s.Phase == lastPhase && s.CurrentIndex < lastIndex {
			t.Fatalf("index regressed from %d to %d in %s", lastIndex, s.CurrentIndex, s.Phase)
		}
		lastPhase, lastIndex = s.Phase, s.CurrentIndex
	}

	for i := 0; i < 3; i++ {
		st, _ = st.SubmitAnswer(mc, i, "a", now)
		check(st)
	}
	st = st.AdvancePhase(mc.Len(), MCAccuracy, true, DefaultConfig())
	check(st)
	for i := 0; i < 2; i++ {
		st, _ = st.SubmitAnswer(mastery, i, "ok", now)
		check(st)
	}
	st = st.CompleteIfDone(mastery.Len())
	check(st)
}

func TestMCAccuracy_OnlyCountsMCPhase(t *testing.T) {
	log := []AnswerRecord{
		{Phase: PhaseMC, Correct: true},
		{Phase: PhaseMC, Correct: false},
		{Phase: PhaseMastery, Correct: false},
		{Phase: PhaseMastery, Correct: false},
	}
	if got := MCAccuracy(log); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
	if got := MCAccuracy(nil); got != 0 {
		t.Errorf("expected 0 for empty log, got %f", got)
	}
}

func TestCurrentQuestion_PhaseSelectsPool(t *testing.T) {
	mc := mcPool(1)
	mastery := freePool(1)

	st := NewState("s1", "a1").Begin()
	if q := st.CurrentQuestion(mc, mastery); q == nil || q.Kind != question.KindMultipleChoice {
		t.Error("mc_phase must serve from the MC pool")
	}

	st = answerThrough(t, st, mc, 1)
	if q := st.CurrentQuestion(mc, mastery); q != nil {
		t.Error("exhausted pool must yield nil")
	}

	st = st.AdvancePhase(mc.Len(), MCAccuracy, true, DefaultConfig())
	if q := st.CurrentQuestion(mc, mastery); q == nil || q.Kind != question.KindFree {
		t.Error("mastery_phase must serve from the mastery pool")
	}
}
