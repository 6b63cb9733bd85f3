package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/poolgen"
	"github.com/cozmiclearning/cozmic/internal/router"
	"github.com/cozmiclearning/cozmic/internal/screen"
	"github.com/cozmiclearning/cozmic/internal/screens/home"
	"github.com/cozmiclearning/cozmic/internal/screens/practice"
	"github.com/cozmiclearning/cozmic/internal/screens/report"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/cozmiclearning/cozmic/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Store *store.Store

	// Provider may be nil when no API key is configured; missions are
	// then disabled but the report still works.
	Provider llm.Provider

	StudentID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	studentID string
	width     int
	height    int
}

// newAppModel wires the services and creates the home screen.
func newAppModel(opts Options) (AppModel, error) {
	events, err := opts.Store.EventRepo()
	if err != nil {
		return AppModel{}, fmt.Errorf("event repo: %w", err)
	}
	sink, err := opts.Store.AnswerSink()
	if err != nil {
		return AppModel{}, fmt.Errorf("answer sink: %w", err)
	}

	sessions := adaptive.NewService(opts.Store.SessionRepo(), sink, adaptive.DefaultConfig())

	var generator *poolgen.Service
	if opts.Provider != nil {
		generator = poolgen.New(opts.Provider, poolgen.DefaultConfig())
	}

	pdeps := practice.Deps{
		Sessions:    sessions,
		Pools:       opts.Store.PoolRepo(),
		Assessments: opts.Store.AssessmentRepo(),
		Generator:   generator,
		StudentID:   opts.StudentID,
	}
	rdeps := report.Deps{
		Assessments: opts.Store.AssessmentRepo(),
		Events:      events,
		StudentID:   opts.StudentID,
	}

	return AppModel{
		router:    router.New(home.New(pdeps, rdeps)),
		studentID: opts.StudentID,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "cadet "+m.studentID, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
