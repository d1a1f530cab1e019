package core

import (
	"fmt"
	"strings"
)

// Board text form: one line per row, one whitespace-separated token per
// cell. '-' (or '.') is empty, '*' is the wildcard, 'A'..'Z' are colored
// types 0..25.

// String renders the board in its text form.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size*2 + 1))

	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p, ok := b.Get(At(row, col))
			if !ok {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}

// ParseBoard parses a board from its text form.
// Blank lines are ignored; the number of rows fixes the board size and every
// row must have exactly that many tokens.
func ParseBoard(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("lines: parse board: no rows")
	}

	size := len(rows)
	b := NewBoard(size)
	for r, fields := range rows {
		if len(fields) != size {
			return nil, fmt.Errorf("lines: parse board: row %d has %d cells, want %d", r, len(fields), size)
		}
		for c, tok := range fields {
			p, filled, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("lines: parse board: row %d col %d: %w", r, c, err)
			}
			if !filled {
				continue
			}
			if err := b.Place(At(r, c), p); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// parseToken decodes a single cell token.
func parseToken(tok string) (p Piece, filled bool, err error) {
	if len(tok) != 1 {
		return 0, false, fmt.Errorf("invalid token %q", tok)
	}
	switch ch := tok[0]; {
	case ch == '-' || ch == '.':
		return 0, false, nil
	case ch == '*':
		return Wildcard, true, nil
	case ch >= 'A' && ch <= 'Z':
		return Colored(int(ch - 'A')), true, nil
	default:
		return 0, false, fmt.Errorf("invalid token %q", tok)
	}
}
