// Package report shows the student's progress: ability tier, recent
// assessment scores, and generator usage totals.
package report

import (
	"context"
	"fmt"
	"image/color"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/ability"
	"github.com/cozmiclearning/cozmic/internal/question"
	"github.com/cozmiclearning/cozmic/internal/router"
	"github.com/cozmiclearning/cozmic/internal/screen"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/cozmiclearning/cozmic/internal/ui/layout"
	"github.com/cozmiclearning/cozmic/internal/ui/theme"
)

// Deps are the repositories the screen reads from.
type Deps struct {
	Assessments store.AssessmentRepo
	Events      store.EventRepo
	StudentID   string
}

type reportLoadedMsg struct {
	Scores []float64
	Tier   question.Tier
	Usage  *store.LLMUsageSummary
	Err    error
}

// ReportScreen implements screen.Screen for the progress report.
type ReportScreen struct {
	deps   Deps
	loaded *reportLoadedMsg
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen.
func New(deps Deps) *ReportScreen {
	return &ReportScreen{deps: deps}
}

func (r *ReportScreen) Init() tea.Cmd {
	deps := r.deps
	return func() tea.Msg {
		ctx := context.Background()

		scores, err := deps.Assessments.RecentScores(ctx, deps.StudentID, ability.MaxRecentScores)
		if err != nil {
			return reportLoadedMsg{Err: err}
		}

		var usage *store.LLMUsageSummary
		if deps.Events != nil {
			usage, err = deps.Events.LLMUsage(ctx)
			if err != nil {
				return reportLoadedMsg{Err: err}
			}
		}

		return reportLoadedMsg{
			Scores: scores,
			Tier:   ability.Classify(scores),
			Usage:  usage,
		}
	}
}

func (r *ReportScreen) Title() string {
	return "Progress Report"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		r.loaded = &msg
		return r, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || (r.loaded != nil && r.loaded.Err != nil) {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	if r.loaded == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading your report...")
	}
	if r.loaded.Err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", r.loaded.Err))
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("PROGRESS REPORT"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Ability tier: %s", tierLabel(r.loaded.Tier))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Recent missions"))
	b.WriteString("\n")

	if len(r.loaded.Scores) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No missions flown yet. Launch one from the home base!"))
		b.WriteString("\n")
	} else {
		for i, score := range r.loaded.Scores {
			line := fmt.Sprintf("%2d.  %s %.0f%%", i+1, scoreBar(score), score)
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(scoreColor(score)).
				Render(line))
			b.WriteString("\n")
		}
	}

	if u := r.loaded.Usage; u != nil && u.Requests > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Mission control (generator usage)"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d requests, %d failed, %d in / %d out tokens",
				u.Requests, u.Failures, u.InputTokens, u.OutputTokens)))
		b.WriteString("\n")

		models := make([]string, 0, len(u.ByModel))
		for m := range u.ByModel {
			models = append(models, m)
		}
		sort.Strings(models)
		for _, m := range models {
			tc := u.ByModel[m]
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%s: %d requests", m, tc.Requests)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func tierLabel(t question.Tier) string {
	switch t {
	case question.TierAdvanced:
		return "Advanced (ready for enrichment)"
	case question.TierStruggling:
		return "Building up (extra scaffolding enabled)"
	default:
		return "On level"
	}
}

// scoreBar renders a ten-slot bar for a 0-100 score.
func scoreBar(score float64) string {
	filled := int(score / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func scoreColor(score float64) color.Color {
	switch {
	case score >= 85:
		return theme.Success
	case score < 60:
		return theme.Error
	default:
		return theme.Text
	}
}
