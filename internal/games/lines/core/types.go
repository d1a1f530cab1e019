// Package core provides the board logic for the Lines puzzle game:
// piece generation, route finding, run detection and the
// selection/move/spawn state machine.
// This package is UI-agnostic and deterministic for a given seed.
package core

import "fmt"

// Piece is a game token: either a colored piece of some type or a wildcard.
// Colored types are small non-negative integers; Wildcard is the only
// negative value.
type Piece int

// Wildcard matches every other piece, including another Wildcard.
const Wildcard Piece = -1

// Colored returns the colored piece of the given type.
func Colored(t int) Piece {
	return Piece(t)
}

// IsWildcard reports whether the piece is the wildcard.
func (p Piece) IsWildcard() bool {
	return p == Wildcard
}

// Type returns the color type of the piece, or -1 for the wildcard.
func (p Piece) Type() int {
	return int(p)
}

// Matches is the game's notion of equality.
// A wildcard matches anything; two colored pieces match only if same type.
func (p Piece) Matches(other Piece) bool {
	return p == Wildcard || other == Wildcard || p == other
}

// String returns the single-character token for the piece:
// '*' for the wildcard, 'A'..'Z' for colored types 0..25.
func (p Piece) String() string {
	if p == Wildcard {
		return "*"
	}
	if p >= 0 && p < 26 {
		return string(rune('A' + int(p)))
	}
	return fmt.Sprintf("#%d", int(p))
}

// Cell is a (row, column) position on the board.
// Row increases downward, column increases to the right.
type Cell struct {
	Row int
	Col int
}

// At is a convenience constructor for Cell.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("{%d,%d}", c.Row, c.Col)
}

// Add returns a new Cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the neighbouring Cell in the given direction.
func (c Cell) Step(d Dir) Cell {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// InBounds reports whether the cell lies on a size×size board.
func (c Cell) InBounds(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Dir is one of the four orthogonal directions a piece travels in.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// searchOrder is the fixed neighbour expansion order used by route finding.
var searchOrder = [...]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Axis is a line through a cell along which runs are detected.
type Axis uint8

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisDiagonal     // top-left to bottom-right
	AxisAntiDiagonal // bottom-left to top-right
)

// Axes lists every axis in detection order.
var Axes = [...]Axis{AxisVertical, AxisHorizontal, AxisDiagonal, AxisAntiDiagonal}

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	case AxisDiagonal:
		return "diagonal"
	case AxisAntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}

// Delta returns the forward (dRow, dCol) step along the axis.
// The backward step is the negation.
func (a Axis) Delta() (dr, dc int) {
	switch a {
	case AxisVertical:
		return 1, 0
	case AxisHorizontal:
		return 0, 1
	case AxisDiagonal:
		return 1, 1
	case AxisAntiDiagonal:
		return 1, -1
	default:
		return 0, 0
	}
}
