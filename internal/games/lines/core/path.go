package core

import "fmt"

// Route is the result of a breadth-first search from Start towards End.
// Dist holds, per cell, the number of cells on the shortest path from Start
// (Start itself is 1); 0 means unreached, which includes occupied cells.
type Route struct {
	Start Cell
	End   Cell
	Dist  [][]int // indexed [row][col]
}

// Reachable reports whether End was reached.
func (r Route) Reachable() bool {
	return r.Distance(r.End) > 0
}

// Distance returns the distance map value at c, 0 for out-of-bounds cells.
func (r Route) Distance(c Cell) int {
	if !c.InBounds(len(r.Dist)) {
		return 0
	}
	return r.Dist[c.Row][c.Col]
}

// Path reconstructs one shortest path from Start to End, both inclusive,
// by walking the distance map back from End. Ties between equally short
// paths are broken by the fixed search order. Returns nil when End is
// unreachable.
func (r Route) Path() []Cell {
	if !r.Reachable() {
		return nil
	}

	n := r.Distance(r.End)
	path := make([]Cell, n)
	cur := r.End
	path[n-1] = cur
	for i := n - 2; i >= 0; i-- {
		want := r.Distance(cur) - 1
		for _, d := range searchOrder {
			prev := cur.Step(d)
			if r.Distance(prev) == want {
				cur = prev
				break
			}
		}
		path[i] = cur
	}
	return path
}

// FindRoute checks whether the piece at start can travel to the empty cell
// end through orthogonally adjacent empty cells.
//
// Preconditions are checked first, each with its own error: both cells in
// bounds (ErrOutOfBounds), a piece at start (ErrNoPieceAtStart), end empty
// (ErrCellOccupied). If the search cannot reach end the returned Route still
// carries the full distance map together with ErrNoRoute.
// The board is never modified.
func FindRoute(b *Board, start, end Cell) (Route, error) {
	if !b.InBounds(start) || !b.InBounds(end) {
		return Route{}, fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, start, end)
	}
	if _, ok := b.Get(start); !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNoPieceAtStart, start)
	}
	if !b.IsEmpty(end) {
		return Route{}, fmt.Errorf("%w: %s", ErrCellOccupied, end)
	}

	size := b.Size()
	dist := make([][]int, size)
	for i := range dist {
		dist[i] = make([]int, size)
	}
	dist[start.Row][start.Col] = 1

	queue := make([]Cell, 0, size*size)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == end {
			break
		}
		for _, d := range searchOrder {
			next := cur.Step(d)
			if !b.IsEmpty(next) || dist[next.Row][next.Col] != 0 {
				continue
			}
			dist[next.Row][next.Col] = dist[cur.Row][cur.Col] + 1
			queue = append(queue, next)
		}
	}

	route := Route{Start: start, End: end, Dist: dist}
	if !route.Reachable() {
		return route, fmt.Errorf("%w: %s -> %s", ErrNoRoute, start, end)
	}
	return route, nil
}
