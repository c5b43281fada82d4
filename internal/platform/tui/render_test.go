package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-monsters/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Contacts-3", core.ColorCyan)
	s.SetColored(0, 1, 'M', core.ColorMagenta)
	s.SetColored(1, 1, 'M', core.ColorMagenta)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 12 {
		t.Errorf("line width = %d, expected 12", w)
	}
	if !strings.Contains(out, "Contacts-3") || !strings.Contains(out, "MM") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}
