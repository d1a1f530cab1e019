package core

import (
	"fmt"
	"math/rand"
)

// Move is a legal move of one piece to an empty cell.
// Gain is the number of run cells the move would complete, 0 if none.
type Move struct {
	From Cell
	To   Cell
	Gain int
}

// ReachableFrom returns every empty cell the piece at start can travel to,
// in row-major order.
func ReachableFrom(b *Board, start Cell) ([]Cell, error) {
	if !b.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, start)
	}
	if b.IsEmpty(start) {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtStart, start)
	}

	size := b.Size()
	seen := make([]bool, size*size)
	seen[b.index(start)] = true

	queue := []Cell{start}
	for head := 0; head < len(queue); head++ {
		for _, d := range searchOrder {
			next := queue[head].Step(d)
			if !b.IsEmpty(next) || seen[b.index(next)] {
				continue
			}
			seen[b.index(next)] = true
			queue = append(queue, next)
		}
	}

	var out []Cell
	for i, ok := range seen {
		c := At(i/size, i%size)
		if ok && c != start {
			out = append(out, c)
		}
	}
	return out, nil
}

// LegalMoves lists every move on the board, ordered by origin then target
// in row-major order, with the gain of each move filled in.
// The board is restored before returning.
func LegalMoves(b *Board) []Move {
	var moves []Move
	for _, from := range b.FilledCells() {
		targets, err := ReachableFrom(b, from)
		if err != nil {
			continue
		}
		for _, to := range targets {
			moves = append(moves, Move{From: from, To: to, Gain: gain(b, from, to)})
		}
	}
	return moves
}

// gain tries the move in place and reports how many run cells it completes.
func gain(b *Board, from, to Cell) int {
	if err := b.Move(from, to); err != nil {
		return 0
	}
	runs, _ := FindRuns(b, to)
	_ = b.Move(to, from)
	return Match{Runs: runs}.RunCells()
}

// BestMove picks a move with the highest gain. Ties, including the common
// case where nothing scores, are broken with rng; a nil rng takes the first
// candidate. Reports false when no piece can move.
func BestMove(b *Board, rng *rand.Rand) (Move, bool) {
	moves := LegalMoves(b)
	if len(moves) == 0 {
		return Move{}, false
	}

	best := moves[0].Gain
	for _, m := range moves[1:] {
		best = max(best, m.Gain)
	}
	var top []Move
	for _, m := range moves {
		if m.Gain == best {
			top = append(top, m)
		}
	}

	if rng == nil {
		return top[0], true
	}
	return top[rng.Intn(len(top))], true
}
