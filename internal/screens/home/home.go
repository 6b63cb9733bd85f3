// Package home is the landing screen: pick a mission, open the
// progress report, or exit.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/router"
	"github.com/cozmiclearning/cozmic/internal/screen"
	"github.com/cozmiclearning/cozmic/internal/screens/practice"
	"github.com/cozmiclearning/cozmic/internal/screens/report"
	"github.com/cozmiclearning/cozmic/internal/ui/components"
)

// Missions offered from the home base. Each launches a full adaptive
// assignment for its topic.
var missions = []struct {
	Label   string
	Mission practice.Mission
}{
	{"FRACTIONS (Math, Grade 4)", practice.Mission{Topic: "equivalent fractions", Subject: "num_forge", Grade: "4"}},
	{"WATER CYCLE (Science, Grade 5)", practice.Mission{Topic: "the water cycle", Subject: "atom_sphere", Grade: "5"}},
	{"REVOLUTION (History, Grade 7)", practice.Mission{Topic: "the American Revolution", Subject: "chrono_core", Grade: "7"}},
	{"STORY CRAFT (Writing, Grade 6)", practice.Mission{Topic: "narrative structure", Subject: "story_verse", Grade: "6"}},
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the practice and report deps.
func New(pdeps practice.Deps, rdeps report.Deps) *HomeScreen {
	items := make([]components.MenuItem, 0, len(missions)+2)

	// Without a configured generator there is nothing to launch.
	missionsDisabled := pdeps.Generator == nil

	for _, m := range missions {
		mission := m.Mission
		items = append(items, components.MenuItem{
			Label:    m.Label,
			Disabled: missionsDisabled,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(pdeps, mission)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "PROGRESS REPORT",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: report.New(rdeps)}
				}
			},
		},
		components.MenuItem{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderTitle(width))
	sections = append(sections, h.renderMenu(width))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) renderMenu(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
}

func (h *HomeScreen) Title() string {
	return "Home Base"
}
