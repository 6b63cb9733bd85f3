package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/ui/theme"
)

// ProgressBar tracks position through a question pool as a glyph rail
// with a done/total counter.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar Width cells wide overall.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// View renders the bar. A zero Total renders an empty rail.
func (p ProgressBar) View() string {
	counter := fmt.Sprintf(" %d/%d", p.Done, p.Total)

	railWidth := p.Width - lipgloss.Width(counter)
	if railWidth < 4 {
		railWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = railWidth * p.Done / p.Total
	}
	if filled > railWidth {
		filled = railWidth
	}
	if filled < 0 {
		filled = 0
	}

	rail := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled))
	rail += lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", railWidth-filled))

	return rail + lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
