package core

import "errors"

// Move errors. All of them are recoverable: the operation that returns one
// has not mutated the board or the selection.
var (
	ErrOutOfBounds    = errors.New("lines: cell out of bounds")
	ErrNoPieceAtStart = errors.New("lines: no piece at start cell")
	ErrCellOccupied   = errors.New("lines: cell occupied")
	ErrCellEmpty      = errors.New("lines: cell empty")
	ErrNoRoute        = errors.New("lines: no route to target")
)

// ErrGameOver is returned when a spawn is attempted on a full board.
// It ends the session; the caller is expected to restart.
var ErrGameOver = errors.New("lines: game over")

// IsMoveError reports whether err is one of the recoverable move errors.
func IsMoveError(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrNoPieceAtStart) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrCellEmpty) ||
		errors.Is(err, ErrNoRoute)
}
