package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cozmiclearning/cozmic/internal/question"
	"github.com/cozmiclearning/cozmic/internal/ui/theme"
)

// MultiChoice renders a multiple-choice question. Choices carry their
// own letter labels, e.g. "A. 3/4"; the correct set is derived from the
// question's expected labels and revealed only after submission.
type MultiChoice struct {
	Prompt      string
	Choices     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	correct map[int]bool
}

// NewMultiChoice builds the component from a question.
func NewMultiChoice(q *question.Question) MultiChoice {
	correct := make(map[int]bool, len(q.Choices))
	expected := make(map[string]bool, len(q.Expected))
	for _, e := range q.Expected {
		expected[e] = true
	}
	for i, ch := range q.Choices {
		if label := question.ChoiceLabel(ch); label != "" && expected[label] {
			correct[i] = true
		}
	}

	return MultiChoice{
		Prompt:      q.Prompt,
		Choices:     q.Choices,
		ChosenIndex: -1,
		correct:     correct,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.Choices) {
				m.Selected = idx
				m.Submitted = true
				m.ChosenIndex = idx
			}
		}
	}

	return m, nil
}

// View renders the choice list.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Prompt) + "\n\n"

	for i, choice := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "> "
		}
		line := prefix + choice

		switch {
		case m.Submitted && m.correct[i]:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// ChosenLabel returns the letter label of the submitted choice, or ""
// before submission.
func (m MultiChoice) ChosenLabel() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Choices) {
		return ""
	}
	return question.ChoiceLabel(m.Choices[m.ChosenIndex])
}

// IsCorrect reports whether the submitted choice is in the expected set.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.correct[m.ChosenIndex]
}
