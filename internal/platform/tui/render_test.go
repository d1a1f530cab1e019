package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
)

func TestScreenRendererPlainOutput(t *testing.T) {
	// A renderer on a non-terminal writer has no color support, so the
	// output must be exactly the screen's text.
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.SetColored(2, 0, '●', core.ColorOrange)
	s.DrawText(0, 1, "x  y")
	s.SetColored(5, 1, '★', core.Color(200)) // unknown color falls back to default

	if got, want := sr.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestScreenRendererStylesEveryColor(t *testing.T) {
	sr := NewScreenRenderer(nil)
	for c := range core.NumColors {
		if c == int(core.ColorDefault) {
			continue
		}
		if ansiColors[c] == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
	if sr.style(core.Color(core.NumColors)).GetForeground() != sr.styles[core.ColorDefault].GetForeground() {
		t.Error("out of range colors should use the default style")
	}
}
