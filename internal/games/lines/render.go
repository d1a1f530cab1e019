package lines

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

const (
	cellWidth  = 4 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// Glyphs
const (
	glyphPiece    = '●'
	glyphWildcard = '★'
	glyphTrail    = '·'
	glyphFlash    = '✦'
	glyphTarget   = '◦'
)

// piecePalette assigns a color per piece type. Types past the palette
// are drawn as letters so they stay distinguishable.
var piecePalette = []platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorGreen,
	platformcore.ColorYellow,
	platformcore.ColorBlue,
	platformcore.ColorMagenta,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
	platformcore.ColorBrightGreen,
	platformcore.ColorBrightMagenta,
	platformcore.ColorBrightBlue,
	platformcore.ColorBrightRed,
	platformcore.ColorBrightCyan,
}

// pieceGlyph returns the rune and color used to draw p.
func pieceGlyph(p core.Piece) (rune, platformcore.Color) {
	if p.IsWildcard() {
		return glyphWildcard, platformcore.ColorBrightWhite
	}
	t := p.Type()
	color := piecePalette[t%len(piecePalette)]
	if t < len(piecePalette) {
		return glyphPiece, color
	}
	return rune('A' + t), color
}

// boardSize returns the board's on-screen width and height.
func (g *Game) boardSize() (w, h int) {
	n := g.session.Rules().Size
	return n*cellWidth + 1, n*cellHeight + 1
}

// minSize is the smallest screen that fits HUD, board and status line.
func (g *Game) minSize() (w, h int) {
	boardW, boardH := g.boardSize()
	return boardW + 2, hudHeight + boardH + 1
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (x, y int) {
	boardW, _ := g.boardSize()
	return (g.screenW - boardW) / 2, hudHeight
}

// boardRect returns the screen area of the board frame.
func (g *Game) boardRect() platformcore.Rect {
	ox, oy := g.boardOrigin()
	w, h := g.boardSize()
	return platformcore.NewRect(ox, oy, w, h)
}

// cellAt maps a screen position to a board cell. Frame lines belong to
// the cell below or to the right of them.
func (g *Game) cellAt(x, y int) (core.Cell, bool) {
	if g.tooSmall {
		return core.Cell{}, false
	}
	r := g.boardRect()
	cells := platformcore.NewRect(r.X+1, r.Y+1, r.W-1, r.H-1)
	if !cells.Contains(x, y) {
		return core.Cell{}, false
	}
	return core.At((y-cells.Y)/cellHeight, (x-cells.X)/cellWidth), true
}

// cellOrigin returns the screen position of the first interior column of c.
func (g *Game) cellOrigin(c core.Cell) (x, y int) {
	ox, oy := g.boardOrigin()
	return ox + c.Col*cellWidth + 1, oy + c.Row*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderPieces(dst)
	g.renderMarkers(dst)
	g.renderStatus(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, moves and the upcoming pieces.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	boardX, _ := g.boardOrigin()
	boardW, _ := g.boardSize()

	title := strings.ToUpper(g.Title())
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score()))
	moves := fmt.Sprintf("Moves: %d", g.session.Moves())
	dst.DrawText(boardX+boardW-len(moves), 1, moves)

	label := "Next: "
	dst.DrawText(boardX, 2, label)
	x := boardX + len(label)
	for _, p := range g.session.PeekUpcoming(g.session.Rules().SpawnCount) {
		r, color := pieceGlyph(p)
		dst.SetColored(x, 2, r, color)
		x += 2
	}

	free := fmt.Sprintf("Free: %d", g.session.FreeSlots())
	dst.DrawText(boardX+boardW-len(free), 2, free)
}

// renderGrid draws the cell frame.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	n := g.session.Rules().Size
	ox, oy := g.boardOrigin()
	frame := platformcore.ColorGray

	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := ox + x*cellWidth
			py := oy + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, frame)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', frame)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', frame)
				}
			}
		}
	}
}

// renderPieces draws pieces plus the path trail and clear flashes.
func (g *Game) renderPieces(dst *platformcore.Screen) {
	for _, c := range g.trail {
		if _, ok := g.session.Piece(c); ok {
			continue
		}
		x, y := g.cellOrigin(c)
		dst.SetColored(x+1, y, glyphTrail, platformcore.ColorGray)
	}

	n := g.session.Rules().Size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := core.At(row, col)
			p, ok := g.session.Piece(c)
			if !ok {
				continue
			}
			x, y := g.cellOrigin(c)
			r, color := pieceGlyph(p)
			dst.SetColored(x+1, y, r, color)
		}
	}

	// Cleared cells are empty by now; spawned ones keep their piece.
	for _, c := range g.flash {
		if _, ok := g.session.Piece(c); ok {
			continue
		}
		x, y := g.cellOrigin(c)
		dst.SetColored(x+1, y, glyphFlash, platformcore.ColorBrightYellow)
	}
}

// renderMarkers brackets the cursor, the selection and a pending hint.
func (g *Game) renderMarkers(dst *platformcore.Screen) {
	if g.hint != nil {
		x, y := g.cellOrigin(g.hint.From)
		dst.SetColored(x, y, '{', platformcore.ColorBrightCyan)
		dst.SetColored(x+2, y, '}', platformcore.ColorBrightCyan)
		x, y = g.cellOrigin(g.hint.To)
		dst.SetColored(x+1, y, glyphTarget, platformcore.ColorBrightCyan)
	}

	if sel, ok := g.session.Selection(); ok {
		x, y := g.cellOrigin(sel)
		dst.SetColored(x, y, '(', platformcore.ColorBrightWhite)
		dst.SetColored(x+2, y, ')', platformcore.ColorBrightWhite)
	}

	if g.gameOver {
		return
	}
	x, y := g.cellOrigin(g.cursor)
	if sel, ok := g.session.Selection(); ok && sel == g.cursor {
		return
	}
	dst.SetColored(x, y, '[', platformcore.ColorWhite)
	dst.SetColored(x+2, y, ']', platformcore.ColorWhite)
}

// renderStatus prints the transient message under the board.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	if g.message == "" {
		return
	}
	_, oy := g.boardOrigin()
	_, boardH := g.boardSize()
	dst.DrawTextCentered(oy+boardH, g.message)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX, centerY := g.boardRect().Center()

	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		summary := fmt.Sprintf("Score: %d  Moves: %d", g.session.Score(), g.session.Moves())
		drawOverlay(dst, centerX, centerY, "GAME OVER", summary, "Press R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, len(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() []registry.Control {
	return []registry.Control{
		{Keys: "Mouse click", Action: "Select piece / move to cell"},
		{Keys: "Arrows/WASD/HJKL", Action: "Move cursor"},
		{Keys: "Enter/Space", Action: "Select or move at cursor"},
		{Keys: "X/Backspace", Action: "Drop selection"},
		{Keys: "?", Action: "Hint"},
		{Keys: "P/Esc", Action: "Pause"},
		{Keys: "R", Action: "Restart after game over"},
		{Keys: "Q", Action: "Quit"},
	}
}
