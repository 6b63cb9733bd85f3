package home

import (
	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/ui/theme"
)

const banner = `
   ____ ___ _____ __  __ ___ ____
  / ___/ _ \__  /|  \/  |_ _/ ___|
 | |  | | | |/ / | |\/| || | |
 | |__| |_| / /_ | |  | || | |___
  \____\___/____||_|  |_|___\____|
`

// renderTitle renders the galaxy banner and tagline.
func renderTitle(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Choose a mission, cadet. The galaxy is waiting.")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, tagline)
}
