// Package practice runs one adaptive mission end to end: it builds the
// assignment pools for the student's current ability tier, serves
// questions through the session service, and records the assessment
// score on completion.
package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/cozmiclearning/cozmic/internal/ability"
	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/poolgen"
	"github.com/cozmiclearning/cozmic/internal/question"
	"github.com/cozmiclearning/cozmic/internal/router"
	"github.com/cozmiclearning/cozmic/internal/screen"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/cozmiclearning/cozmic/internal/ui/components"
	"github.com/cozmiclearning/cozmic/internal/ui/layout"
)

const (
	diagnosticCount = 5
	masteryCount    = 6
)

// Mission identifies what the student is practicing.
type Mission struct {
	Topic   string
	Subject string
	Grade   string
}

// Deps are the services the screen needs.
type Deps struct {
	Sessions    *adaptive.Service
	Pools       store.PoolRepo
	Assessments store.AssessmentRepo
	Generator   *poolgen.Service
	StudentID   string
}

type feedbackInfo struct {
	Correct     bool
	Expected    string
	Explanation string
}

// PracticeScreen implements screen.Screen for an active mission.
type PracticeScreen struct {
	deps    Deps
	mission Mission

	asg  *adaptive.Assignment
	tier question.Tier

	current *question.Question
	index   int
	phase   adaptive.Phase
	poolLen int
	total   int
	correct int

	mc       components.MultiChoice
	mcActive bool
	input    components.TextInput
	showHint bool

	feedback        *feedbackInfo
	showQuitConfirm bool
	done            *missionSummary
	errMsg          string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for one mission.
func New(deps Deps, mission Mission) *PracticeScreen {
	return &PracticeScreen{
		deps:    deps,
		mission: mission,
		input:   components.NewTextInput("Type your answer...", 60),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.buildAssignment()
}

func (p *PracticeScreen) Title() string {
	return "Mission: " + p.mission.Topic
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.done != nil, p.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case p.showQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon mission"},
			{Key: "N", Description: "Keep going"},
		}
	case p.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case p.current != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return nil
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assignmentReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.asg = msg.Asg
		p.tier = msg.Tier
		return p, p.loadQuestion()

	case questionReadyMsg:
		return p.handleQuestionReady(msg)

	case answerGradedMsg:
		return p.handleAnswerGraded(msg)

	case missionCompleteMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		summary := msg.Summary
		p.done = &summary
		p.current = nil
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Forward everything else to the free-response input.
	if p.current != nil && !p.mcActive && p.feedback == nil && !p.showQuitConfirm {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}

	p.current = msg.Question
	p.index = msg.State.CurrentIndex
	p.phase = msg.State.Phase
	p.poolLen = p.phasePoolLen(msg.State)
	p.total = len(msg.State.AnswerLog)
	p.correct = countCorrect(msg.State.AnswerLog)
	p.feedback = nil
	p.showHint = false

	if msg.Question.Kind == question.KindMultipleChoice {
		p.mcActive = true
		p.mc = components.NewMultiChoice(msg.Question)
		return p, nil
	}

	p.mcActive = false
	p.input = components.NewTextInput("Type your answer...", 60)
	return p, p.input.Init()
}

func (p *PracticeScreen) handleAnswerGraded(msg answerGradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}

	// A rejected submission was already recorded by an earlier request;
	// just move on to whatever the session says is current.
	if !msg.Result.Accepted {
		return p, p.loadQuestion()
	}

	p.total = len(msg.State.AnswerLog)
	p.correct = countCorrect(msg.State.AnswerLog)

	fb := &feedbackInfo{Correct: msg.Result.Correct}
	if p.current != nil {
		fb.Explanation = p.current.Explanation
		if !msg.Result.Correct {
			fb.Expected = expectedDisplay(p.current)
		}
	}
	p.feedback = fb
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" || p.done != nil {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.showQuitConfirm {
		switch key {
		case "y", "Y":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.showQuitConfirm = false
		}
		return p, nil
	}

	if p.feedback != nil {
		return p, p.loadQuestion()
	}

	if p.current == nil {
		// Still building the assignment; only esc is meaningful.
		if key == "esc" {
			p.showQuitConfirm = true
		}
		return p, nil
	}

	switch key {
	case "esc":
		p.showQuitConfirm = true
		return p, nil
	case "tab":
		p.showHint = !p.showHint
		return p, nil
	}

	if p.mcActive {
		var cmd tea.Cmd
		p.mc, cmd = p.mc.Update(msg)
		if p.mc.Submitted {
			return p, p.submit(p.mc.ChosenLabel())
		}
		return p, cmd
	}

	if key == "enter" {
		answer := p.input.Value()
		if answer == "" {
			return p, nil
		}
		return p, p.submit(answer)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// buildAssignment classifies the student, generates the diagnostic and
// both mastery pools, and persists them.
func (p *PracticeScreen) buildAssignment() tea.Cmd {
	deps, mission := p.deps, p.mission
	return func() tea.Msg {
		ctx := context.Background()

		scores, err := deps.Assessments.RecentScores(ctx, deps.StudentID, ability.MaxRecentScores)
		if err != nil {
			return assignmentReadyMsg{Err: err}
		}
		tier := ability.Classify(scores)

		build := func(mode question.Mode, target question.Tier, count int) (*question.Pool, error) {
			pool, _, err := deps.Generator.BuildPool(ctx, poolgen.BuildInput{
				Topic:         mission.Topic,
				Subject:       mission.Subject,
				Grade:         mission.Grade,
				Mode:          mode,
				TargetAbility: target,
				Count:         count,
			})
			if err != nil {
				return nil, err
			}
			if err := deps.Pools.Save(ctx, pool); err != nil {
				return nil, err
			}
			return pool, nil
		}

		mcPool, err := build(question.ModeQuickAssessment, tier, diagnosticCount)
		if err != nil {
			return assignmentReadyMsg{Err: err}
		}
		remPool, err := build(question.ModeScaffold, question.TierStruggling, masteryCount)
		if err != nil {
			return assignmentReadyMsg{Err: err}
		}
		enrPool, err := build(question.ModeMastery, question.TierAdvanced, masteryCount)
		if err != nil {
			return assignmentReadyMsg{Err: err}
		}

		return assignmentReadyMsg{
			Asg: &adaptive.Assignment{
				ID:              uuid.NewString(),
				MCPool:          mcPool,
				RemediationPool: remPool,
				EnrichmentPool:  enrPool,
			},
			Tier: tier,
		}
	}
}

// loadQuestion asks the session for its current question, advancing
// exhausted phases until a question appears or the mission completes.
func (p *PracticeScreen) loadQuestion() tea.Cmd {
	deps, asg := p.deps, p.asg
	return func() tea.Msg {
		ctx := context.Background()

		// At most mc -> mastery -> complete, so three reads suffice.
		for attempt := 0; attempt < 3; attempt++ {
			q, st, err := deps.Sessions.GetCurrent(ctx, deps.StudentID, asg)
			if err != nil {
				return questionReadyMsg{Err: err}
			}
			if q != nil {
				return questionReadyMsg{Question: q, State: st}
			}

			switch st.Phase {
			case adaptive.PhaseMC:
				if _, err := deps.Sessions.AdvancePhase(ctx, deps.StudentID, asg); err != nil {
					return questionReadyMsg{Err: err}
				}
			case adaptive.PhaseMastery:
				if _, err := deps.Sessions.CompleteIfDone(ctx, deps.StudentID, asg); err != nil {
					return questionReadyMsg{Err: err}
				}
			case adaptive.PhaseComplete:
				return p.finishMission(ctx, st)
			default:
				return questionReadyMsg{Err: fmt.Errorf("session stuck in phase %s", st.Phase)}
			}
		}

		return questionReadyMsg{Err: errors.New("session did not advance")}
	}
}

// finishMission records the assessment score and builds the summary.
func (p *PracticeScreen) finishMission(ctx context.Context, st *adaptive.State) tea.Msg {
	total := len(st.AnswerLog)
	correct := countCorrect(st.AnswerLog)

	percent := 0.0
	if total > 0 {
		percent = float64(correct) / float64(total) * 100
	}

	if err := p.deps.Assessments.Record(ctx, p.deps.StudentID, percent, time.Now().UTC()); err != nil {
		return missionCompleteMsg{Err: err}
	}

	final := p.asg.MCPool.FinalMessage
	switch st.Track {
	case adaptive.TrackRemediation:
		final = p.asg.RemediationPool.FinalMessage
	case adaptive.TrackEnrichment:
		final = p.asg.EnrichmentPool.FinalMessage
	}

	return missionCompleteMsg{Summary: missionSummary{
		Total:        total,
		Correct:      correct,
		Percent:      percent,
		Track:        st.Track,
		FinalMessage: final,
	}}
}

func (p *PracticeScreen) submit(answer string) tea.Cmd {
	deps, asg, index := p.deps, p.asg, p.index
	return func() tea.Msg {
		st, res, err := deps.Sessions.SubmitAnswer(context.Background(), deps.StudentID, asg, index, answer)
		return answerGradedMsg{State: st, Result: res, Answer: answer, Err: err}
	}
}

// phasePoolLen sizes the pool the session is currently serving from.
func (p *PracticeScreen) phasePoolLen(st *adaptive.State) int {
	if st.Phase == adaptive.PhaseMastery {
		if st.Track == adaptive.TrackRemediation {
			return p.asg.RemediationPool.Len()
		}
		return p.asg.EnrichmentPool.Len()
	}
	return p.asg.MCPool.Len()
}

func countCorrect(log []adaptive.AnswerRecord) int {
	n := 0
	for _, rec := range log {
		if rec.Correct {
			n++
		}
	}
	return n
}

// expectedDisplay renders the expected answer for feedback. Multiple
// choice answers show the full choice text, not just the label.
func expectedDisplay(q *question.Question) string {
	if len(q.Expected) == 0 || q.Expected[0] == question.ExpectedAny {
		return ""
	}
	if q.Kind == question.KindMultipleChoice {
		for _, ch := range q.Choices {
			if question.ChoiceLabel(ch) == q.Expected[0] {
				return ch
			}
		}
	}
	return q.Expected[0]
}
