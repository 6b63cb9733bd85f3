package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/ui/components"
	"github.com/cozmiclearning/cozmic/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return renderError(width, p.errMsg)
	case p.done != nil:
		return p.renderComplete(width)
	case p.showQuitConfirm:
		return renderQuitConfirm(width)
	case p.feedback != nil:
		return p.renderFeedback(width)
	case p.current != nil:
		return p.renderQuestion(width)
	default:
		return renderLoading(width, p.mission.Topic)
	}
}

func (p *PracticeScreen) renderQuestion(width int) string {
	var b strings.Builder

	phaseLabel := "Diagnostic"
	if p.phase == adaptive.PhaseMastery {
		phaseLabel = "Mastery"
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s phase", phaseLabel))

	infoRight := components.NewProgressBar(p.index, p.poolLen, 24).View() +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s %d/%d  tier: %s",
				lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
				p.correct, p.total,
				p.tier,
			))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if p.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.mc.View()))
	} else {
		questionStyle := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true)
		b.WriteString(questionStyle.Render(p.current.Prompt))
		b.WriteString("\n\n")
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + p.input.View())
		b.WriteString(answerLine)
	}

	if p.showHint && p.current.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Italic(true).
			Render("Hint: " + p.current.Hint))
	}

	return b.String()
}

func (p *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if p.feedback.Expected != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Correct answer: " + p.feedback.Expected))
		}
	}

	b.WriteString("\n\n")

	if p.feedback.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(p.feedback.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (p *PracticeScreen) renderComplete(width int) string {
	s := p.done

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Mission complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d correct (%.0f%%)", s.Correct, s.Total, s.Percent)))
	b.WriteString("\n")

	switch s.Track {
	case adaptive.TrackEnrichment:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("You earned the enrichment track this mission."))
		b.WriteString("\n")
	case adaptive.TrackRemediation:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("We spent extra time shoring up the basics."))
		b.WriteString("\n")
	}

	if s.FinalMessage != "" {
		b.WriteString("\n")
		msgStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Primary)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msgStyle.Render(s.FinalMessage)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to return to base..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this mission?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers you already gave are saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, head back"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int, topic string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  Charting your %s mission...", topic))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
