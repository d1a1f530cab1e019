package core

import "testing"

func TestQueuePeekThenConsume(t *testing.T) {
	q := NewPieceQueue(42, 7, true, 0.2)

	peeked := q.Peek(5)
	if len(peeked) != 5 {
		t.Fatalf("Peek(5) returned %d pieces", len(peeked))
	}
	if again := q.Peek(3); !equalPieces(again, peeked[:3]) {
		t.Errorf("second Peek(3) = %v, want %v", again, peeked[:3])
	}

	consumed := q.Consume(5)
	if !equalPieces(consumed, peeked) {
		t.Errorf("Consume(5) = %v, want peeked %v", consumed, peeked)
	}
	if q.Buffered() != 0 {
		t.Errorf("Buffered() = %d after consuming everything", q.Buffered())
	}
}

func TestQueuePartialConsume(t *testing.T) {
	q := NewPieceQueue(7, 5, false, 0)

	peeked := q.Peek(4)
	first := q.Consume(1)
	if first[0] != peeked[0] {
		t.Errorf("Consume(1) = %v, want %v", first[0], peeked[0])
	}
	if q.Buffered() != 3 {
		t.Errorf("Buffered() = %d, want 3", q.Buffered())
	}
	if rest := q.Peek(3); !equalPieces(rest, peeked[1:]) {
		t.Errorf("Peek(3) = %v, want %v", rest, peeked[1:])
	}
}

func TestQueuePeekReturnsCopy(t *testing.T) {
	q := NewPieceQueue(1, 7, false, 0)
	p := q.Peek(2)
	orig := p[0]
	p[0] = Wildcard

	if got := q.Peek(1)[0]; got != orig {
		t.Errorf("mutating the Peek result changed the queue: %v", got)
	}
	if q.Peek(0) != nil || q.Peek(-1) != nil {
		t.Error("Peek with n <= 0 should return nil")
	}
}

func TestQueueDeterminism(t *testing.T) {
	a := NewPieceQueue(12345, 7, true, 0.1)
	b := NewPieceQueue(12345, 7, true, 0.1)

	// Different peek patterns must not change the stream or the ordinals.
	a.Peek(10)
	for i := 0; i < 50; i++ {
		pa, pb := a.Consume(1)[0], b.Consume(1)[0]
		if pa != pb {
			t.Fatalf("piece %d differs: %v vs %v", i, pa, pb)
		}
		if oa, ob := a.Intn(81), b.Intn(81); oa != ob {
			t.Fatalf("ordinal %d differs: %d vs %d", i, oa, ob)
		}
	}
}

func TestQueueReset(t *testing.T) {
	q := NewPieceQueue(99, 7, true, 0.3)
	first := q.Consume(20)

	q.Peek(3)
	q.Reset(99)
	if q.Buffered() != 0 {
		t.Errorf("Buffered() = %d after Reset", q.Buffered())
	}
	if again := q.Consume(20); !equalPieces(again, first) {
		t.Errorf("Reset with the same seed should replay the stream")
	}
}

func TestQueueRanges(t *testing.T) {
	tests := []struct {
		name      string
		numTypes  int
		jokers    bool
		jokerFreq float64
		wantJoker bool // whether a wildcard may appear at all
	}{
		{"no jokers", 7, false, 1.0, false},
		{"zero frequency", 7, true, 0, false},
		{"always joker", 7, true, 1.0, true},
		{"single type", 1, true, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewPieceQueue(2024, tt.numTypes, tt.jokers, tt.jokerFreq)
			sawJoker := false
			for _, p := range q.Consume(500) {
				if p.IsWildcard() {
					sawJoker = true
					continue
				}
				if p.Type() < 0 || p.Type() >= tt.numTypes {
					t.Fatalf("type %d out of range [0, %d)", p.Type(), tt.numTypes)
				}
			}
			if sawJoker != tt.wantJoker {
				t.Errorf("saw wildcard = %v, want %v", sawJoker, tt.wantJoker)
			}
		})
	}
}

func equalPieces(a, b []Piece) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
