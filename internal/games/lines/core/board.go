package core

import "fmt"

// slot is the content of one board cell.
type slot struct {
	filled bool
	piece  Piece // valid only when filled is true
}

// Board is a square grid of optional pieces plus a free-slot counter.
// Cells are stored in row-major order: index = row*size + col.
// The free counter always equals the number of empty cells.
type Board struct {
	size  int
	cells []slot
	free  int
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]slot, size*size),
		free:  size * size,
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// index converts a cell to a flat array index.
func (b *Board) index(c Cell) int {
	return c.Row*b.size + c.Col
}

// InBounds reports whether the cell is on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.InBounds(b.size)
}

// Get returns the piece at the cell. ok is false when the cell is empty
// or out of bounds.
func (b *Board) Get(c Cell) (p Piece, ok bool) {
	if !b.InBounds(c) {
		return 0, false
	}
	s := b.cells[b.index(c)]
	return s.piece, s.filled
}

// IsEmpty reports whether the cell is on the board and holds no piece.
func (b *Board) IsEmpty(c Cell) bool {
	return b.InBounds(c) && !b.cells[b.index(c)].filled
}

// Place puts a piece into an empty cell.
func (b *Board) Place(c Cell, p Piece) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	i := b.index(c)
	if b.cells[i].filled {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}
	b.cells[i] = slot{filled: true, piece: p}
	b.free--
	return nil
}

// Clear empties an occupied cell.
func (b *Board) Clear(c Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	i := b.index(c)
	if !b.cells[i].filled {
		return fmt.Errorf("%w: %s", ErrCellEmpty, c)
	}
	b.cells[i] = slot{}
	b.free++
	return nil
}

// Move relocates the piece at from into the empty cell to.
// It does not check that a route exists; see FindRoute.
func (b *Board) Move(from, to Cell) error {
	if !b.InBounds(from) || !b.InBounds(to) {
		return fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, from, to)
	}
	p, ok := b.Get(from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPieceAtStart, from)
	}
	if !b.IsEmpty(to) {
		return fmt.Errorf("%w: %s", ErrCellOccupied, to)
	}
	b.cells[b.index(to)] = slot{filled: true, piece: p}
	b.cells[b.index(from)] = slot{}
	return nil
}

// FreeSlotCount returns the number of empty cells.
func (b *Board) FreeSlotCount() int {
	return b.free
}

// IsFull reports whether no empty cell is left.
func (b *Board) IsFull() bool {
	return b.free == 0
}

// PlaceRandomly places the piece into the ordinal-th empty cell counted in
// row-major order and returns that cell. The ordinal comes from the caller's
// random source and must lie in [0, FreeSlotCount()).
// Returns ErrGameOver when the board has no empty cell.
func (b *Board) PlaceRandomly(p Piece, ordinal int) (Cell, error) {
	if b.free == 0 {
		return Cell{}, ErrGameOver
	}
	if ordinal < 0 || ordinal >= b.free {
		return Cell{}, fmt.Errorf("%w: free slot %d of %d", ErrOutOfBounds, ordinal, b.free)
	}

	count := 0
	for i, s := range b.cells {
		if s.filled {
			continue
		}
		if count == ordinal {
			c := At(i/b.size, i%b.size)
			b.cells[i] = slot{filled: true, piece: p}
			b.free--
			return c, nil
		}
		count++
	}

	// Unreachable while the free counter is consistent.
	return Cell{}, fmt.Errorf("lines: free slot counter out of sync (%d)", b.free)
}

// EmptyCells returns all empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, b.free)
	for i, s := range b.cells {
		if !s.filled {
			cells = append(cells, At(i/b.size, i%b.size))
		}
	}
	return cells
}

// FilledCells returns all occupied cells in row-major order.
func (b *Board) FilledCells() []Cell {
	cells := make([]Cell, 0, len(b.cells)-b.free)
	for i, s := range b.cells {
		if s.filled {
			cells = append(cells, At(i/b.size, i%b.size))
		}
	}
	return cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]slot, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:  b.size,
		cells: cells,
		free:  b.free,
	}
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.free != other.free {
		return false
	}
	for i, s := range b.cells {
		if s != other.cells[i] {
			return false
		}
	}
	return true
}
