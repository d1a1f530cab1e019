package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
)

// ansiColors maps each core.Color to an ANSI 256-color code.
// ColorDefault keeps the terminal's own foreground.
var ansiColors = [core.NumColors]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenRenderer turns a core.Screen into styled text for one output.
// Local play uses the default renderer; each SSH session gets one bound to
// the client's terminal so colors match what the client supports.
type ScreenRenderer struct {
	styles [core.NumColors]lipgloss.Style
}

// NewScreenRenderer builds the color styles on r. A nil r means the
// process's standard output.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{}
	for c, code := range ansiColors {
		style := r.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		sr.styles[c] = style
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(sr.styles) {
		return sr.styles[core.ColorDefault]
	}
	return sr.styles[c]
}

// Render converts the screen to a string, one styled span per run of
// same-colored cells on a row.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Extra room for escape sequences
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				span.WriteRune(cell.Rune)
			}
			sb.WriteString(sr.style(color).Render(span.String()))
		}
	}
	return sb.String()
}
