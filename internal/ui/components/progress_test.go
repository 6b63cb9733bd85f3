package components

import (
	"strings"
	"testing"
)

func TestProgressBarCounter(t *testing.T) {
	bar := NewProgressBar(3, 5, 20).View()
	if !strings.Contains(bar, "3/5") {
		t.Errorf("expected 3/5 counter in %q", bar)
	}
	if !strings.Contains(bar, "█") || !strings.Contains(bar, "░") {
		t.Errorf("expected a partially filled rail in %q", bar)
	}
}

func TestProgressBarEmptyPool(t *testing.T) {
	bar := NewProgressBar(0, 0, 20).View()
	if strings.Contains(bar, "█") {
		t.Errorf("zero total must render an empty rail, got %q", bar)
	}
}

func TestProgressBarClampsOvershoot(t *testing.T) {
	full := NewProgressBar(7, 5, 20).View()
	if strings.Contains(full, "░") {
		t.Errorf("done past total must render a full rail, got %q", full)
	}
}
