package core

import (
	"errors"
	"fmt"
)

// Rules are the fixed parameters of a session.
type Rules struct {
	Size           int     // Board dimension (size×size)
	NumTypes       int     // Number of colored piece types
	Jokers         bool    // Whether wildcards are dealt
	JokerFrequency float64 // Probability that a dealt piece is a wildcard
	SpawnCount     int     // Pieces spawned after a move that scores nothing
	InitialPieces  int     // Pieces spawned at the start of a game
}

// DefaultRules returns the classic 9×9, seven color rules.
func DefaultRules() Rules {
	return Rules{
		Size:           9,
		NumTypes:       7,
		Jokers:         true,
		JokerFrequency: 0.05,
		SpawnCount:     3,
		InitialPieces:  5,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Size < RunLength+1:
		return fmt.Errorf("lines: board size %d too small for a run of %d", r.Size, RunLength+1)
	case r.NumTypes < 1 || r.NumTypes > 26:
		return fmt.Errorf("lines: piece types %d out of range [1, 26]", r.NumTypes)
	case r.JokerFrequency < 0 || r.JokerFrequency > 1:
		return fmt.Errorf("lines: joker frequency %v out of range [0, 1]", r.JokerFrequency)
	case r.SpawnCount < 1:
		return fmt.Errorf("lines: spawn count %d must be positive", r.SpawnCount)
	case r.InitialPieces < 0 || r.InitialPieces >= r.Size*r.Size:
		return fmt.Errorf("lines: initial pieces %d out of range [0, %d)", r.InitialPieces, r.Size*r.Size)
	}
	return nil
}

// OutcomeKind tells the caller what a click did.
type OutcomeKind int

const (
	OutcomeSelected OutcomeKind = iota
	OutcomeDeselected
	OutcomeSwitchedSelection
	OutcomeMoveResolved
	OutcomeMoveSpawned
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "Selected"
	case OutcomeDeselected:
		return "Deselected"
	case OutcomeSwitchedSelection:
		return "SwitchedSelection"
	case OutcomeMoveResolved:
		return "MoveResolved"
	case OutcomeMoveSpawned:
		return "MoveSpawned"
	default:
		return "Unknown"
	}
}

// Outcome describes the effect of a successful HandleSelect call.
// Fields beyond Kind and Cell are set only where they apply.
type Outcome struct {
	Kind     OutcomeKind
	Cell     Cell // the clicked cell
	Previous Cell // previous selection for SwitchedSelection; move origin for moves

	Path       []Cell // route travelled by a moved piece, origin to target
	Runs       []Run  // runs cleared by MoveResolved
	Removed    []Cell // cells cleared by MoveResolved
	ScoreDelta int    // points gained by MoveResolved
	Added      []Cell // cells filled by MoveSpawned, or by MoveResolved when it emptied the board
}

// Session is one game: a board, a piece queue, a score and a selection.
// A Session is not safe for concurrent use.
type Session struct {
	rules  Rules
	board  *Board
	queue  *PieceQueue
	preset *Board

	score    int
	moves    int
	selected Cell
	hasSel   bool
	over     bool
}

// NewSession starts a game with a random initial fill.
func NewSession(rules Rules, seed int64) (*Session, error) {
	return newSession(rules, seed, nil)
}

// NewSessionFromBoard starts a game from a fixed layout instead of the
// random initial fill. The layout is copied and reused on Restart.
func NewSessionFromBoard(rules Rules, seed int64, layout *Board) (*Session, error) {
	if layout == nil {
		return nil, errors.New("lines: nil layout")
	}
	if layout.Size() != rules.Size {
		return nil, fmt.Errorf("lines: layout size %d does not match board size %d", layout.Size(), rules.Size)
	}
	return newSession(rules, seed, layout.Clone())
}

func newSession(rules Rules, seed int64, preset *Board) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		rules:  rules,
		queue:  NewPieceQueue(seed, rules.NumTypes, rules.Jokers, rules.JokerFrequency),
		preset: preset,
	}
	if err := s.fill(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart resets board, queue, score and selection. The queue is reseeded
// with seed, so Restart with the creation seed replays the same game.
func (s *Session) Restart(seed int64) error {
	s.queue.Reset(seed)
	s.score = 0
	s.moves = 0
	s.hasSel = false
	s.over = false
	return s.fill()
}

// fill lays out a fresh board.
func (s *Session) fill() error {
	if s.preset != nil {
		s.board = s.preset.Clone()
	} else {
		s.board = NewBoard(s.rules.Size)
		if _, err := s.spawn(s.rules.InitialPieces); err != nil {
			return fmt.Errorf("lines: initial fill: %w", err)
		}
	}
	if _, err := s.refill(); err != nil {
		return fmt.Errorf("lines: initial fill: %w", err)
	}
	return nil
}

// refill deals a regular spawn onto an empty board, so there is always a
// piece to move. It returns nil cells when the board is not empty.
func (s *Session) refill() ([]Cell, error) {
	if s.board.FreeSlotCount() < s.rules.Size*s.rules.Size {
		return nil, nil
	}
	return s.spawn(s.rules.SpawnCount)
}

// Rules returns the session's rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Piece returns the piece at c, if any.
func (s *Session) Piece(c Cell) (Piece, bool) {
	return s.board.Get(c)
}

// FreeSlots returns the number of empty cells.
func (s *Session) FreeSlots() int {
	return s.board.FreeSlotCount()
}

// IsFull reports whether the board has no empty cell left.
func (s *Session) IsFull() bool {
	return s.board.IsFull()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of completed moves.
func (s *Session) Moves() int {
	return s.moves
}

// Selection returns the selected cell, if a piece is selected.
func (s *Session) Selection() (Cell, bool) {
	return s.selected, s.hasSel
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.over
}

// PeekUpcoming previews the next n pieces without consuming them.
func (s *Session) PeekUpcoming(n int) []Piece {
	return s.queue.Peek(n)
}

// HandleSelect applies a click at c.
//
// With nothing selected, clicking a piece selects it. With a piece selected,
// clicking it again deselects, clicking another piece switches the
// selection, and clicking an empty cell attempts a move. Move errors leave
// board and selection unchanged. ErrGameOver is returned, together with the
// outcome of the move that caused it, when a spawn finds the board full;
// the session then rejects every click until Restart.
func (s *Session) HandleSelect(c Cell) (Outcome, error) {
	if s.over {
		return Outcome{}, ErrGameOver
	}
	if !s.board.InBounds(c) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}

	_, occupied := s.board.Get(c)
	if !s.hasSel {
		if !occupied {
			return Outcome{}, fmt.Errorf("%w: %s", ErrNoPieceAtStart, c)
		}
		s.selected, s.hasSel = c, true
		return Outcome{Kind: OutcomeSelected, Cell: c}, nil
	}

	if occupied {
		if c == s.selected {
			s.hasSel = false
			return Outcome{Kind: OutcomeDeselected, Cell: c}, nil
		}
		prev := s.selected
		s.selected = c
		return Outcome{Kind: OutcomeSwitchedSelection, Cell: c, Previous: prev}, nil
	}

	return s.move(s.selected, c)
}

// move carries the selected piece to an empty target and settles the turn.
func (s *Session) move(from, to Cell) (Outcome, error) {
	route, err := FindRoute(s.board, from, to)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.board.Move(from, to); err != nil {
		return Outcome{}, err
	}
	s.hasSel = false
	s.moves++

	out := Outcome{Cell: to, Previous: from, Path: route.Path()}

	match, err := ResolveMatches(s.board, to)
	if err != nil {
		return Outcome{}, err
	}
	if !match.Empty() {
		out.Kind = OutcomeMoveResolved
		out.Runs = match.Runs
		out.Removed = match.Removed
		out.ScoreDelta = 2 + 2*match.RunCells()
		s.score += out.ScoreDelta
		out.Added, err = s.refill()
		if err != nil {
			return Outcome{}, err
		}
		return out, nil
	}

	out.Kind = OutcomeMoveSpawned
	out.Added, err = s.spawn(s.rules.SpawnCount)
	if err != nil {
		s.over = true
		return out, err
	}
	return out, nil
}

// spawn deals n pieces onto random empty cells. Spawned pieces are not
// checked for runs. It stops with ErrGameOver as soon as the board is full
// at a spawn attempt, returning the cells filled so far.
func (s *Session) spawn(n int) ([]Cell, error) {
	added := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		if s.board.FreeSlotCount() == 0 {
			return added, ErrGameOver
		}
		p := s.queue.Consume(1)[0]
		c, err := s.board.PlaceRandomly(p, s.queue.Intn(s.board.FreeSlotCount()))
		if err != nil {
			return added, err
		}
		added = append(added, c)
	}
	return added, nil
}
