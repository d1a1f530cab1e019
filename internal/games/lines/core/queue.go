package core

import "math/rand"

// PieceQueue is a seeded stream of upcoming pieces with a lookahead buffer.
// Pieces are drawn lazily: Peek extends the buffer as needed and Consume
// dispenses from its front, so Peek(n) followed by Consume(n) returns the
// same pieces.
type PieceQueue struct {
	rng       *rand.Rand // piece stream
	pos       *rand.Rand // placement ordinals
	numTypes  int
	jokers    bool
	jokerFreq float64
	buf       []Piece
}

// NewPieceQueue creates a queue drawing colored types in [0, numTypes) and,
// when jokers is set, a Wildcard with probability jokerFreq.
func NewPieceQueue(seed int64, numTypes int, jokers bool, jokerFreq float64) *PieceQueue {
	q := &PieceQueue{
		numTypes:  numTypes,
		jokers:    jokers,
		jokerFreq: jokerFreq,
	}
	q.Reset(seed)
	return q
}

// Reset reseeds both random sources and drops any buffered pieces.
func (q *PieceQueue) Reset(seed int64) {
	q.rng = rand.New(rand.NewSource(seed))
	q.pos = rand.New(rand.NewSource(^seed))
	q.buf = q.buf[:0]
}

// draw generates one new piece.
func (q *PieceQueue) draw() Piece {
	if q.jokers && q.rng.Float64() < q.jokerFreq {
		return Wildcard
	}
	return Colored(q.rng.Intn(q.numTypes))
}

// Peek returns the next n pieces without consuming them.
func (q *PieceQueue) Peek(n int) []Piece {
	if n <= 0 {
		return nil
	}
	for len(q.buf) < n {
		q.buf = append(q.buf, q.draw())
	}
	result := make([]Piece, n)
	copy(result, q.buf[:n])
	return result
}

// Consume returns the next n pieces and removes them from the buffer.
func (q *PieceQueue) Consume(n int) []Piece {
	result := q.Peek(n)
	q.buf = append(q.buf[:0], q.buf[len(result):]...)
	return result
}

// Buffered returns the number of pieces drawn but not yet consumed.
func (q *PieceQueue) Buffered() int {
	return len(q.buf)
}

// Intn returns a value in [0, n) for choosing placement slots. It uses a
// second source derived from the same seed, so peeking ahead in the piece
// stream never shifts where pieces land.
// It panics if n <= 0.
func (q *PieceQueue) Intn(n int) int {
	return q.pos.Intn(n)
}
