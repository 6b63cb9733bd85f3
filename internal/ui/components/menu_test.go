package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func navMenu(disabled ...int) Menu {
	items := []MenuItem{
		{Label: "FRACTIONS"},
		{Label: "ATOMS"},
		{Label: "EXIT"},
	}
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return NewMenu(items)
}

func TestMenuStartsOnFirstEnabledItem(t *testing.T) {
	m := navMenu(0)
	if m.Selected != 1 {
		t.Errorf("expected cursor on item 1, got %d", m.Selected)
	}
}

func TestMenuCursorSkipsDisabledItems(t *testing.T) {
	m := navMenu(1)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down must skip the disabled item, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("up must skip the disabled item, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "GO", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter must run the selected action")
	}
}

func TestMenuDisabledItemsRenderOffline(t *testing.T) {
	m := navMenu(0)
	view := m.View()
	if !strings.Contains(view, "FRACTIONS  (offline)") {
		t.Errorf("disabled item must render offline marker:\n%s", view)
	}
	if strings.Contains(view, "» FRACTIONS") {
		t.Error("cursor must not sit on a disabled item")
	}
}
