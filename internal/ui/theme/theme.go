package theme

import (
	"charm.land/lipgloss/v2"
)

// Galaxy palette. Deep-space backgrounds with nebula accents; every
// foreground must stay legible on BgDark in a 256-color terminal.
var (
	Primary   = lipgloss.Color("#A78BFA") // nebula violet
	Secondary = lipgloss.Color("#38BDF8") // comet blue
	Accent    = lipgloss.Color("#FACC15") // star yellow
	Success   = lipgloss.Color("#4ADE80") // aurora green
	Error     = lipgloss.Color("#FB7185") // red giant
	Text      = lipgloss.Color("#E2E8F0") // starlight
	TextDim   = lipgloss.Color("#7C8AA5") // cosmic dust
	BgDark    = lipgloss.Color("#0B1026") // the void
	BgCard    = lipgloss.Color("#1A2342") // station panel
	Border    = lipgloss.Color("#3D4B78") // orbit line
)

// Choice states. MC options and graded feedback share these so a
// correct answer looks the same on every screen.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
