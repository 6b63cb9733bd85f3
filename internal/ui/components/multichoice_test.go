package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cozmiclearning/cozmic/internal/question"
)

func mcQuestion() *question.Question {
	return &question.Question{
		Prompt:   "Capital of France?",
		Kind:     question.KindMultipleChoice,
		Choices:  []string{"A. London", "B. Paris", "C. Berlin"},
		Expected: []string{"b"},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoiceDigitSubmits(t *testing.T) {
	mc := NewMultiChoice(mcQuestion())

	mc, _ = mc.Update(keyPress('2'))

	if !mc.Submitted {
		t.Fatal("digit key must submit")
	}
	if got := mc.ChosenLabel(); got != "b" {
		t.Errorf("expected chosen label b, got %q", got)
	}
	if !mc.IsCorrect() {
		t.Error("choice B is in the expected set")
	}
}

func TestMultiChoiceArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice(mcQuestion())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := mc.ChosenLabel(); got != "c" {
		t.Errorf("expected chosen label c, got %q", got)
	}
	if mc.IsCorrect() {
		t.Error("choice C is not in the expected set")
	}
}

func TestMultiChoiceIgnoresInputAfterSubmit(t *testing.T) {
	mc := NewMultiChoice(mcQuestion())

	mc, _ = mc.Update(keyPress('1'))
	mc, _ = mc.Update(keyPress('3'))

	if got := mc.ChosenLabel(); got != "a" {
		t.Errorf("submission must latch; got %q", got)
	}
}

func TestMultiChoiceOutOfRangeDigit(t *testing.T) {
	mc := NewMultiChoice(mcQuestion())

	mc, _ = mc.Update(keyPress('9'))

	if mc.Submitted {
		t.Error("digit past the choice list must not submit")
	}
}

func TestMultiChoiceNoLabelBeforeSubmit(t *testing.T) {
	mc := NewMultiChoice(mcQuestion())
	if got := mc.ChosenLabel(); got != "" {
		t.Errorf("expected empty label before submit, got %q", got)
	}
}
