package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/poolgen"
	"github.com/cozmiclearning/cozmic/internal/question"
)

// memSessions is an in-memory adaptive.SessionStore with the same
// compare-and-swap contract as the real repository.
type memSessions struct {
	rows map[string]*adaptive.State
}

func newMemSessions() *memSessions {
	return &memSessions{rows: make(map[string]*adaptive.State)}
}

func sessionKey(studentID, assignmentID string) string {
	return studentID + "/" + assignmentID
}

func (m *memSessions) Get(_ context.Context, studentID, assignmentID string) (*adaptive.State, error) {
	st, ok := m.rows[sessionKey(studentID, assignmentID)]
	if !ok {
		return nil, nil
	}
	cp := *st
	cp.AnswerLog = append([]adaptive.AnswerRecord(nil), st.AnswerLog...)
	return &cp, nil
}

func (m *memSessions) Create(_ context.Context, st *adaptive.State) error {
	k := sessionKey(st.StudentID, st.AssignmentID)
	if _, ok := m.rows[k]; ok {
		return fmt.Errorf("session exists")
	}
	cp := *st
	m.rows[k] = &cp
	return nil
}

func (m *memSessions) Save(_ context.Context, st *adaptive.State) error {
	k := sessionKey(st.StudentID, st.AssignmentID)
	cur, ok := m.rows[k]
	if !ok || cur.Version != st.Version {
		return adaptive.ErrVersionConflict
	}
	cp := *st
	cp.AnswerLog = append([]adaptive.AnswerRecord(nil), st.AnswerLog...)
	cp.Version = st.Version + 1
	m.rows[k] = &cp
	return nil
}

type memPools struct {
	saved []*question.Pool
}

func (m *memPools) Save(_ context.Context, pool *question.Pool) error {
	m.saved = append(m.saved, pool)
	return nil
}

func (m *memPools) Get(_ context.Context, poolID string) (*question.Pool, error) {
	for _, p := range m.saved {
		if p.ID == poolID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pool %s not found", poolID)
}

type memAssessments struct {
	scores []float64
}

func (m *memAssessments) Record(_ context.Context, _ string, scorePercent float64, _ time.Time) error {
	m.scores = append(m.scores, scorePercent)
	return nil
}

func (m *memAssessments) RecentScores(_ context.Context, _ string, limit int) ([]float64, error) {
	out := append([]float64(nil), m.scores...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// newTestDeps queues three unusable generator responses, so every pool
// is a synthetic fallback of the requested size.
func newTestDeps() (Deps, *memPools, *memAssessments) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"not json"`)},
		llm.MockResponse{Content: json.RawMessage(`"not json"`)},
		llm.MockResponse{Content: json.RawMessage(`"not json"`)},
	)
	pools := &memPools{}
	assessments := &memAssessments{}

	deps := Deps{
		Sessions:    adaptive.NewService(newMemSessions(), nil, adaptive.DefaultConfig()),
		Pools:       pools,
		Assessments: assessments,
		Generator:   poolgen.New(provider, poolgen.DefaultConfig()),
		StudentID:   "cadet-1",
	}
	return deps, pools, assessments
}

func TestBuildAssignmentGeneratesAndSavesThreePools(t *testing.T) {
	deps, pools, _ := newTestDeps()
	scr := New(deps, Mission{Topic: "fractions", Subject: "num_forge", Grade: "4"})

	msg := scr.Init()()
	ready, ok := msg.(assignmentReadyMsg)
	if !ok {
		t.Fatalf("expected assignmentReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatal(ready.Err)
	}

	asg := ready.Asg
	if asg.MCPool.Len() != diagnosticCount {
		t.Errorf("diagnostic pool: expected %d questions, got %d", diagnosticCount, asg.MCPool.Len())
	}
	if asg.RemediationPool.Len() != masteryCount || asg.EnrichmentPool.Len() != masteryCount {
		t.Error("mastery pools have wrong sizes")
	}
	if !asg.Hybrid() {
		t.Error("assignment with mastery pools must be hybrid")
	}
	if ready.Tier != question.TierOnLevel {
		t.Errorf("no history must classify on_level, got %s", ready.Tier)
	}
	if len(pools.saved) != 3 {
		t.Errorf("expected 3 saved pools, got %d", len(pools.saved))
	}
}

func TestMissionRunsToCompletion(t *testing.T) {
	deps, _, assessments := newTestDeps()
	scr := New(deps, Mission{Topic: "fractions", Subject: "num_forge", Grade: "4"})

	ready := scr.Init()().(assignmentReadyMsg)
	if ready.Err != nil {
		t.Fatal(ready.Err)
	}
	_, cmd := scr.Update(ready)

	var summary *missionSummary
	for i := 0; i < 30; i++ {
		msg := cmd()

		if done, ok := msg.(missionCompleteMsg); ok {
			if done.Err != nil {
				t.Fatal(done.Err)
			}
			summary = &done.Summary
			break
		}

		qmsg, ok := msg.(questionReadyMsg)
		if !ok {
			t.Fatalf("unexpected msg %T", msg)
		}
		if qmsg.Err != nil {
			t.Fatal(qmsg.Err)
		}
		scr.Update(qmsg)

		graded := scr.submit("an honest attempt")().(answerGradedMsg)
		if graded.Err != nil {
			t.Fatal(graded.Err)
		}
		if !graded.Result.Accepted {
			t.Fatal("in-order submission must be accepted")
		}
		scr.Update(graded)

		cmd = scr.loadQuestion()
	}

	if summary == nil {
		t.Fatal("mission never completed")
	}
	if summary.Total != diagnosticCount+masteryCount {
		t.Errorf("expected %d answers, got %d", diagnosticCount+masteryCount, summary.Total)
	}

	// Synthetic fallback questions accept any non-empty answer, so the
	// diagnostic scores 100% and the session binds enrichment.
	if summary.Track != adaptive.TrackEnrichment {
		t.Errorf("expected enrichment track, got %q", summary.Track)
	}
	if summary.Percent != 100 {
		t.Errorf("expected 100%%, got %.0f", summary.Percent)
	}

	if len(assessments.scores) != 1 || assessments.scores[0] != 100 {
		t.Errorf("completion must record the score once, got %v", assessments.scores)
	}
}

func TestExpectedDisplayShowsChoiceText(t *testing.T) {
	q := &question.Question{
		Kind:     question.KindMultipleChoice,
		Choices:  []string{"A. London", "B. Paris"},
		Expected: []string{"b"},
	}
	if got := expectedDisplay(q); got != "B. Paris" {
		t.Errorf("expected full choice text, got %q", got)
	}

	free := &question.Question{Kind: question.KindFree, Expected: []string{question.ExpectedAny}}
	if got := expectedDisplay(free); got != "" {
		t.Errorf("accept-anything questions show no expected answer, got %q", got)
	}
}
