package core

import (
	"errors"
	"testing"
)

func testRules(size int) Rules {
	r := DefaultRules()
	r.Size = size
	r.Jokers = false
	r.InitialPieces = 0
	return r
}

func presetSession(t *testing.T, rules Rules, layout string) *Session {
	t.Helper()
	s, err := NewSessionFromBoard(rules, 1, mustParse(t, layout))
	if err != nil {
		t.Fatalf("NewSessionFromBoard() failed: %v", err)
	}
	return s
}

func TestNewSessionInitialFill(t *testing.T) {
	rules := DefaultRules()
	s, err := NewSession(rules, 42)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	if got, want := s.FreeSlots(), 81-rules.InitialPieces; got != want {
		t.Errorf("FreeSlots() = %d, want %d", got, want)
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("new session has score %d, moves %d", s.Score(), s.Moves())
	}
	if _, ok := s.Selection(); ok {
		t.Error("new session should have no selection")
	}
	if s.GameOver() {
		t.Error("new session should not be over")
	}
	if len(s.PeekUpcoming(3)) != 3 {
		t.Error("PeekUpcoming(3) should return 3 pieces")
	}
}

func TestSessionDeterminism(t *testing.T) {
	a, err := NewSession(DefaultRules(), 2024)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(DefaultRules(), 2024)
	if err != nil {
		t.Fatal(err)
	}

	// Peeking must not change what gets placed where.
	a.PeekUpcoming(6)

	if !a.Board().Equal(b.Board()) {
		t.Errorf("boards differ for the same seed:\n%s\n\n%s", a.Board(), b.Board())
	}

	if err := b.Restart(2024); err != nil {
		t.Fatal(err)
	}
	if !a.Board().Equal(b.Board()) {
		t.Error("Restart with the creation seed should replay the initial board")
	}
}

func TestSessionSelectionTransitions(t *testing.T) {
	s := presetSession(t, testRules(5), `
		A - - - -
		- - - - -
		- - - - -
		- - - - -
		- - - - B
	`)

	if _, err := s.HandleSelect(At(2, 2)); !errors.Is(err, ErrNoPieceAtStart) {
		t.Errorf("clicking empty with no selection: got %v, want ErrNoPieceAtStart", err)
	}

	steps := []struct {
		click    Cell
		kind     OutcomeKind
		previous Cell
		selected bool
	}{
		{At(0, 0), OutcomeSelected, Cell{}, true},
		{At(0, 0), OutcomeDeselected, Cell{}, false},
		{At(0, 0), OutcomeSelected, Cell{}, true},
		{At(4, 4), OutcomeSwitchedSelection, At(0, 0), true},
	}

	for i, step := range steps {
		out, err := s.HandleSelect(step.click)
		if err != nil {
			t.Fatalf("step %d: HandleSelect(%v) failed: %v", i, step.click, err)
		}
		if out.Kind != step.kind {
			t.Errorf("step %d: kind = %v, want %v", i, out.Kind, step.kind)
		}
		if out.Cell != step.click {
			t.Errorf("step %d: cell = %v, want %v", i, out.Cell, step.click)
		}
		if out.Previous != step.previous {
			t.Errorf("step %d: previous = %v, want %v", i, out.Previous, step.previous)
		}
		sel, ok := s.Selection()
		if ok != step.selected || (ok && sel != step.click) {
			t.Errorf("step %d: selection = %v, %v", i, sel, ok)
		}
	}

	if s.Moves() != 0 || s.FreeSlots() != 23 {
		t.Errorf("selection changed the board: moves %d, free %d", s.Moves(), s.FreeSlots())
	}
}

func TestSessionOutOfBoundsClick(t *testing.T) {
	s := presetSession(t, testRules(5), `
		A - - - -
		- - - - -
		- - - - -
		- - - - -
		- - - - -
	`)
	s.HandleSelect(At(0, 0))

	if _, err := s.HandleSelect(At(5, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
	if sel, ok := s.Selection(); !ok || sel != At(0, 0) {
		t.Error("out of bounds click should keep the selection")
	}
}

func TestSessionBlockedMove(t *testing.T) {
	s := presetSession(t, testRules(5), `
		- - - - -
		- B B B -
		- B A B -
		- B B B -
		- - - - -
	`)
	before := s.Board()

	s.HandleSelect(At(2, 2))
	_, err := s.HandleSelect(At(0, 0))
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("got %v, want ErrNoRoute", err)
	}
	if !IsMoveError(err) {
		t.Error("ErrNoRoute should be a move error")
	}
	if sel, ok := s.Selection(); !ok || sel != At(2, 2) {
		t.Error("failed move should keep the selection")
	}
	if !s.Board().Equal(before) || s.Moves() != 0 || s.GameOver() {
		t.Error("failed move should leave the session unchanged")
	}
}

func TestSessionMoveResolvesRun(t *testing.T) {
	s := presetSession(t, testRules(9), `
		- - - - - - - - A
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		A A A A - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		C - - - - - - - -
	`)

	if _, err := s.HandleSelect(At(0, 8)); err != nil {
		t.Fatal(err)
	}
	out, err := s.HandleSelect(At(4, 4))
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}

	if out.Kind != OutcomeMoveResolved {
		t.Fatalf("kind = %v, want MoveResolved", out.Kind)
	}
	if out.ScoreDelta != 10 || s.Score() != 10 {
		t.Errorf("score delta %d, total %d; want 10", out.ScoreDelta, s.Score())
	}
	if len(out.Removed) != 5 {
		t.Errorf("removed %d cells, want 5", len(out.Removed))
	}
	if len(out.Added) != 0 {
		t.Error("a scoring move must not spawn pieces")
	}
	if s.FreeSlots() != 80 {
		t.Errorf("FreeSlots() = %d, want 80", s.FreeSlots())
	}
	if out.Previous != At(0, 8) || len(out.Path) == 0 ||
		out.Path[0] != At(0, 8) || out.Path[len(out.Path)-1] != At(4, 4) {
		t.Errorf("unexpected path %v from %v", out.Path, out.Previous)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection should be cleared after a move")
	}
}

func TestSessionWildcardDoubleRunScore(t *testing.T) {
	s := presetSession(t, testRules(9), `
		- - - - * - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- A A * - * B B -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		C - - - - - - - -
	`)

	s.HandleSelect(At(0, 4))
	out, err := s.HandleSelect(At(4, 4))
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if out.Kind != OutcomeMoveResolved || len(out.Runs) != 2 {
		t.Fatalf("kind = %v with %d runs, want MoveResolved with 2", out.Kind, len(out.Runs))
	}
	if out.ScoreDelta != 2+2*8 || s.Score() != 18 {
		t.Errorf("score delta %d, total %d; want 18", out.ScoreDelta, s.Score())
	}
	if len(out.Removed) != 7 || s.FreeSlots() != 80 {
		t.Errorf("removed %d, free %d; want 7 and 80", len(out.Removed), s.FreeSlots())
	}
}

func TestSessionClearingBoardRefills(t *testing.T) {
	rules := testRules(9)
	s := presetSession(t, rules, `
		A A A A - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - A
	`)
	upcoming := s.PeekUpcoming(rules.SpawnCount)

	s.HandleSelect(At(8, 8))
	out, err := s.HandleSelect(At(0, 4))
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if out.Kind != OutcomeMoveResolved || out.ScoreDelta != 10 {
		t.Fatalf("got %v with delta %d, want MoveResolved with 10", out.Kind, out.ScoreDelta)
	}
	if len(out.Added) != rules.SpawnCount {
		t.Fatalf("added %d pieces to the cleared board, want %d", len(out.Added), rules.SpawnCount)
	}
	for i, c := range out.Added {
		if p, ok := s.Piece(c); !ok || p != upcoming[i] {
			t.Errorf("spawned %v at %v, want %v", p, c, upcoming[i])
		}
	}
	if s.FreeSlots() != 81-rules.SpawnCount || s.GameOver() {
		t.Errorf("free %d, over %v; want %d and false", s.FreeSlots(), s.GameOver(), 81-rules.SpawnCount)
	}

	// Play goes on from a dealt piece.
	if sel, err := s.HandleSelect(out.Added[0]); err != nil || sel.Kind != OutcomeSelected {
		t.Errorf("selecting a dealt piece: %v, %v", sel.Kind, err)
	}
}

func TestSessionEmptyStartRefills(t *testing.T) {
	rules := testRules(9)

	empty, err := NewSessionFromBoard(rules, 3, NewBoard(9))
	if err != nil {
		t.Fatal(err)
	}
	random, err := NewSession(rules, 3)
	if err != nil {
		t.Fatal(err)
	}

	for name, s := range map[string]*Session{"empty layout": empty, "no initial pieces": random} {
		if s.FreeSlots() != 81-rules.SpawnCount {
			t.Errorf("%s: FreeSlots() = %d, want %d", name, s.FreeSlots(), 81-rules.SpawnCount)
		}
		if err := s.Restart(4); err != nil || s.FreeSlots() != 81-rules.SpawnCount {
			t.Errorf("%s: Restart() left %d free, err %v", name, s.FreeSlots(), err)
		}
	}
}

func TestSessionMoveSpawns(t *testing.T) {
	rules := testRules(9)
	s := presetSession(t, rules, `
		A - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
		- - - - - - - - -
	`)
	upcoming := s.PeekUpcoming(rules.SpawnCount)

	s.HandleSelect(At(0, 0))
	out, err := s.HandleSelect(At(8, 8))
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if out.Kind != OutcomeMoveSpawned {
		t.Fatalf("kind = %v, want MoveSpawned", out.Kind)
	}
	if len(out.Added) != rules.SpawnCount {
		t.Fatalf("added %d pieces, want %d", len(out.Added), rules.SpawnCount)
	}
	for i, c := range out.Added {
		if p, ok := s.Piece(c); !ok || p != upcoming[i] {
			t.Errorf("spawned %v at %v, want %v", p, c, upcoming[i])
		}
	}
	if s.FreeSlots() != 80-rules.SpawnCount {
		t.Errorf("FreeSlots() = %d, want %d", s.FreeSlots(), 80-rules.SpawnCount)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0", s.Score())
	}
}

// Every line on this board holds five different colors, so no move can
// ever complete a run.
const nearlyFull = `
	- C E B D
	B D A C E
	C E B D A
	D A C E B
	E B D A C
`

func TestSessionGameOver(t *testing.T) {
	s := presetSession(t, testRules(5), nearlyFull)

	s.HandleSelect(At(0, 1))
	out, err := s.HandleSelect(At(0, 0))
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
	if IsMoveError(err) {
		t.Error("ErrGameOver is not a move error")
	}
	if out.Kind != OutcomeMoveSpawned {
		t.Errorf("kind = %v, want MoveSpawned", out.Kind)
	}
	if len(out.Added) != 1 || out.Added[0] != At(0, 1) {
		t.Errorf("Added = %v, want [{0,1}]", out.Added)
	}
	if !s.GameOver() || !s.IsFull() {
		t.Error("session should be over with a full board")
	}

	if _, err := s.HandleSelect(At(2, 2)); !errors.Is(err, ErrGameOver) {
		t.Errorf("click after game over: got %v, want ErrGameOver", err)
	}

	if err := s.Restart(1); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if s.GameOver() || s.FreeSlots() != 1 || s.Moves() != 0 {
		t.Error("Restart should restore the preset layout")
	}
}

func TestNewSessionFromBoardErrors(t *testing.T) {
	if _, err := NewSessionFromBoard(testRules(9), 1, nil); err == nil {
		t.Error("nil layout should fail")
	}
	if _, err := NewSessionFromBoard(testRules(9), 1, NewBoard(5)); err == nil {
		t.Error("mismatched layout size should fail")
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Rules)
		wantErr bool
	}{
		{"defaults", func(*Rules) {}, false},
		{"smallest board", func(r *Rules) { r.Size = 5 }, false},
		{"board too small", func(r *Rules) { r.Size = 4 }, true},
		{"no types", func(r *Rules) { r.NumTypes = 0 }, true},
		{"too many types", func(r *Rules) { r.NumTypes = 27 }, true},
		{"negative joker frequency", func(r *Rules) { r.JokerFrequency = -0.1 }, true},
		{"joker frequency above one", func(r *Rules) { r.JokerFrequency = 1.5 }, true},
		{"no spawn", func(r *Rules) { r.SpawnCount = 0 }, true},
		{"board filled at start", func(r *Rules) { r.InitialPieces = 81 }, true},
		{"negative initial pieces", func(r *Rules) { r.InitialPieces = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
