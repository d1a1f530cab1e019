package core

import "fmt"

// RunLength is the minimum number of matching cells, not counting the
// reference cell, that make a run (five in a row).
const RunLength = 4

// Run is a line of matching cells along one axis through a reference cell,
// excluding the reference cell itself. Cells are ordered along the axis.
type Run struct {
	Axis   Axis
	Anchor Piece // color that bounds the run; Wildcard if it has none
	Cells  []Cell
}

// Match is the result of resolving runs at a reference cell.
type Match struct {
	Runs    []Run
	Removed []Cell // reference cell first, then run cells; each cell once
}

// Empty reports whether no run qualified.
func (m Match) Empty() bool {
	return len(m.Runs) == 0
}

// RunCells returns the total number of cells over all runs. A cell shared
// by two runs of the same axis is counted once per run.
func (m Match) RunCells() int {
	total := 0
	for _, r := range m.Runs {
		total += len(r.Cells)
	}
	return total
}

// side is the result of scanning outward from the reference cell in one
// direction along an axis.
type side struct {
	prefix    []Cell // leading wildcards, nearest first
	anchored  []Cell // cells from the first colored piece on, nearest first
	anchor    Piece  // first colored piece seen; valid only if hasAnchor
	hasAnchor bool
}

// all returns every collected cell, nearest first.
func (s side) all() []Cell {
	cells := make([]Cell, 0, len(s.prefix)+len(s.anchored))
	cells = append(cells, s.prefix...)
	return append(cells, s.anchored...)
}

// scanSide walks from ref in steps of (dr, dc) collecting cells that match
// ref. For a wildcard reference the first colored piece fixes the color the
// rest of the side must match.
func scanSide(b *Board, ref Cell, refPiece Piece, dr, dc int) side {
	var s side
	want := refPiece
	for c := ref.Add(dr, dc); ; c = c.Add(dr, dc) {
		p, ok := b.Get(c)
		if !ok || !p.Matches(want) {
			return s
		}
		if !s.hasAnchor && p.IsWildcard() {
			s.prefix = append(s.prefix, c)
			continue
		}
		if !s.hasAnchor {
			s.hasAnchor = true
			s.anchor = p
			if refPiece.IsWildcard() {
				want = p
			}
		}
		s.anchored = append(s.anchored, c)
	}
}

// axisRuns returns the candidate runs through ref along one axis,
// qualifying or not. back holds the cells in the negative direction and is
// reversed so the run reads along the axis.
func axisRuns(axis Axis, refPiece Piece, back, fwd side) []Run {
	join := func(backCells, fwdCells []Cell) []Cell {
		cells := make([]Cell, 0, len(backCells)+len(fwdCells))
		for i := len(backCells) - 1; i >= 0; i-- {
			cells = append(cells, backCells[i])
		}
		return append(cells, fwdCells...)
	}

	if !refPiece.IsWildcard() {
		return []Run{{Axis: axis, Anchor: refPiece, Cells: join(back.all(), fwd.all())}}
	}

	switch {
	case back.hasAnchor && fwd.hasAnchor && back.anchor != fwd.anchor:
		// Two colors meet at a wildcard segment: each color gets its own run
		// through the shared wildcards.
		return []Run{
			{Axis: axis, Anchor: back.anchor, Cells: join(back.all(), fwd.prefix)},
			{Axis: axis, Anchor: fwd.anchor, Cells: join(back.prefix, fwd.all())},
		}
	case back.hasAnchor:
		return []Run{{Axis: axis, Anchor: back.anchor, Cells: join(back.all(), fwd.all())}}
	case fwd.hasAnchor:
		return []Run{{Axis: axis, Anchor: fwd.anchor, Cells: join(back.all(), fwd.all())}}
	default:
		return []Run{{Axis: axis, Anchor: Wildcard, Cells: join(back.all(), fwd.all())}}
	}
}

// FindRuns returns every qualifying run through ref without touching the
// board. An empty reference cell has no runs.
func FindRuns(b *Board, ref Cell) ([]Run, error) {
	if !b.InBounds(ref) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, ref)
	}
	refPiece, ok := b.Get(ref)
	if !ok {
		return nil, nil
	}

	var runs []Run
	for _, axis := range Axes {
		dr, dc := axis.Delta()
		back := scanSide(b, ref, refPiece, -dr, -dc)
		fwd := scanSide(b, ref, refPiece, dr, dc)
		for _, r := range axisRuns(axis, refPiece, back, fwd) {
			if len(r.Cells) >= RunLength {
				runs = append(runs, r)
			}
		}
	}
	return runs, nil
}

// ResolveMatches detects runs through ref and removes them.
// If at least one run qualifies, the reference cell and every run cell are
// cleared from the board. Otherwise the board is left unchanged and an
// empty Match is returned. Calling it again on the same cell finds nothing.
func ResolveMatches(b *Board, ref Cell) (Match, error) {
	runs, err := FindRuns(b, ref)
	if err != nil {
		return Match{}, err
	}
	if len(runs) == 0 {
		return Match{}, nil
	}

	removed := []Cell{ref}
	if err := b.Clear(ref); err != nil {
		return Match{}, err
	}
	for _, r := range runs {
		for _, c := range r.Cells {
			if b.IsEmpty(c) {
				// Shared wildcard cell already cleared by a sibling run.
				continue
			}
			if err := b.Clear(c); err != nil {
				return Match{}, err
			}
			removed = append(removed, c)
		}
	}

	return Match{Runs: runs, Removed: removed}, nil
}
