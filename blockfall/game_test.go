package blockfall

import (
	"math"
	"reflect"
	"testing"
)

// fillRow occupies a whole board row except the listed columns.
func fillRow(g *Game, y int, except ...int) {
	for x := 0; x < Width; x++ {
		skip := false
		for _, e := range except {
			if x == e {
				skip = true
			}
		}
		if !skip {
			g.board[y*Width+x] = uint8(J)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := NewSeeded(42)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.Cell(x, y) != 0 {
				t.Errorf("expected empty cell at (%d,%d), got %d", x, y, g.Cell(x, y))
			}
		}
	}
	if g.Score() != 0 || g.Lines() != 0 || g.Level() != 1 {
		t.Errorf("expected zeroed counters and level 1, got score %d lines %d level %d", g.Score(), g.Lines(), g.Level())
	}
	if g.Over() {
		t.Error("expected a fresh game to be playable")
	}
	for _, c := range g.Current().Cells() {
		if c.DX < 0 || c.DX >= Width || c.DY < 0 || c.DY >= Height {
			t.Errorf("expected spawned piece inside the board, got cell (%d,%d)", c.DX, c.DY)
		}
	}
	if k := g.Next(); k < I || k > L {
		t.Errorf("expected a valid lookahead kind, got %d", k)
	}
}

func TestCellOutOfRange(t *testing.T) {
	g := NewTestGame(T)
	fillRow(g, Height-1)
	tests := []struct{ x, y int }{
		{-1, 0}, {Width, 0}, {0, -1}, {0, Height}, {-1, -1}, {Width, Height},
	}
	for _, tt := range tests {
		if v := g.Cell(tt.x, tt.y); v != 0 {
			t.Errorf("expected Cell(%d,%d) to be empty, got %d", tt.x, tt.y, v)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name           string
		deltaX, deltaY int
		block          []int // x, y of an occupied cell
		want           bool
	}{
		{name: "spawn position is valid", want: true},
		{name: "left bound", deltaX: -4, want: false},
		{name: "right bound", deltaX: 7, want: false},
		{name: "bottom bound", deltaY: Height, want: false},
		{name: "occupied cell", block: []int{4, 1}, want: false},
		{name: "above the board is exempt from occupancy", deltaY: -1, want: true},
		{name: "above the board still bound on x", deltaX: -4, deltaY: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTestGame(T)
			if tt.block != nil {
				g.board[tt.block[1]*Width+tt.block[0]] = uint8(J)
			}
			p := g.Current().translated(tt.deltaX, tt.deltaY)
			if got := g.isValid(p); got != tt.want {
				t.Errorf("expected isValid to be %t for delta (%d,%d)", tt.want, tt.deltaX, tt.deltaY)
			}
		})
	}
}

func TestMoves(t *testing.T) {
	// T spawns with its frame at column 3: cells on columns 3-5, rows 0-1.
	tests := []struct {
		name   string
		move   func(g *Game)
		setup  func(g *Game)
		wantX  int
		wantY  int
	}{
		{
			name:  "left unblocked",
			move:  (*Game).MoveLeft,
			wantX: 2,
		},
		{
			name:  "left blocked",
			move:  (*Game).MoveLeft,
			setup: func(g *Game) { g.board[1*Width+2] = uint8(J) },
			wantX: 3,
		},
		{
			name:  "right unblocked",
			move:  (*Game).MoveRight,
			wantX: 4,
		},
		{
			name:  "right blocked",
			move:  (*Game).MoveRight,
			setup: func(g *Game) { g.board[1*Width+6] = uint8(J) },
			wantX: 3,
		},
		{
			name:  "left wall stops movement",
			move:  func(g *Game) { for i := 0; i < 10; i++ { g.MoveLeft() } },
			wantX: 0,
		},
		{
			name:  "no move once over",
			move:  func(g *Game) { g.over = true; g.MoveLeft(); g.MoveRight() },
			wantX: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewTestGame(T)
			if tt.setup != nil {
				tt.setup(g)
			}
			tt.move(g)
			if g.Current().X != tt.wantX {
				t.Errorf("expected X to be %d, got %d", tt.wantX, g.Current().X)
			}
			if g.Current().Y != tt.wantY {
				t.Errorf("expected Y to be %d, got %d", tt.wantY, g.Current().Y)
			}
		})
	}
}

func TestMoveRoundTrip(t *testing.T) {
	g := NewTestGame(S)
	before := g.Current()
	if !g.tryMove(1, 1) {
		t.Fatal("expected the forward move to succeed")
	}
	if !g.tryMove(-1, -1) {
		t.Fatal("expected the reverse move to succeed")
	}
	if g.Current() != before {
		t.Errorf("expected piece back at %+v, got %+v", before, g.Current())
	}
}

func TestRotate(t *testing.T) {
	t.Run("four rotations return the original state", func(t *testing.T) {
		g := NewTestGame(T)
		g.current.Y = 5
		for i := 0; i < 4; i++ {
			g.RotateCW()
		}
		if g.Current().Rot != 0 {
			t.Errorf("expected rotation state 0, got %d", g.Current().Rot)
		}
	})

	t.Run("untranslated rotation is preferred", func(t *testing.T) {
		g := NewTestGame(T)
		g.current.Y = 5
		g.RotateCW()
		if g.Current().X != 3 || g.Current().Rot != 1 {
			t.Errorf("expected rot 1 at X 3, got rot %d at X %d", g.Current().Rot, g.Current().X)
		}
	})

	t.Run("kick off the left wall", func(t *testing.T) {
		// vertical I hugging the left wall: cells on column 2 of the
		// frame, so X is -2. Rotating to horizontal needs a +2 kick.
		g := NewTestGame(I)
		g.current = Piece{Kind: I, Rot: 1, X: -2, Y: 5}
		g.RotateCW()
		if g.Current().Rot != 2 {
			t.Fatalf("expected the rotation to land, got rot %d", g.Current().Rot)
		}
		if g.Current().X != 0 {
			t.Errorf("expected a +2 kick to X 0, got X %d", g.Current().X)
		}
	})

	t.Run("kick left is tried before kick right", func(t *testing.T) {
		// block the untranslated rotation only; -1 must win over +1.
		g := NewTestGame(T)
		g.current.Y = 5
		g.board[5*Width+4] = uint8(J) // frame column 1 row 0 after rotation
		g.RotateCW()
		if g.Current().Rot != 1 {
			t.Fatalf("expected the rotation to land, got rot %d", g.Current().Rot)
		}
		if g.Current().X != 2 {
			t.Errorf("expected a -1 kick to X 2, got X %d", g.Current().X)
		}
	})

	t.Run("abandoned when no kick fits", func(t *testing.T) {
		g := NewTestGame(I)
		// horizontal I resting on the floor: every vertical placement
		// pokes below the board, no kick along x can save it.
		g.current = Piece{Kind: I, Rot: 0, X: 3, Y: Height - 2}
		before := g.Current()
		g.RotateCW()
		if g.Current() != before {
			t.Errorf("expected rotation to be abandoned, got %+v", g.Current())
		}
	})

	t.Run("no rotation once over", func(t *testing.T) {
		g := NewTestGame(T)
		g.over = true
		g.RotateCW()
		if g.Current().Rot != 0 {
			t.Errorf("expected rotation to be ignored, got rot %d", g.Current().Rot)
		}
	})
}

func TestTick(t *testing.T) {
	t.Run("moves the piece down while there is room", func(t *testing.T) {
		g := NewTestGame(T)
		st := g.Tick()
		if st.Locked || st.Over {
			t.Errorf("expected a plain move, got %+v", st)
		}
		if g.Current().Y != 1 {
			t.Errorf("expected Y 1, got %d", g.Current().Y)
		}
	})

	t.Run("locks on the floor and spawns the lookahead", func(t *testing.T) {
		g := NewTestGame(T)
		for !g.Tick().Locked {
		}
		// T rot 0 rests with its bottom row on the floor.
		want := []struct{ x, y int }{{4, Height - 2}, {3, Height - 1}, {4, Height - 1}, {5, Height - 1}}
		for _, c := range want {
			if g.Cell(c.x, c.y) != uint8(T) {
				t.Errorf("expected locked cell at (%d,%d)", c.x, c.y)
			}
		}
		if g.Current().Y != 0 || g.Current().X != spawnX {
			t.Errorf("expected a fresh spawn, got %+v", g.Current())
		}
	})

	t.Run("is idempotent once over", func(t *testing.T) {
		g := NewTestGame(T)
		fillRow(g, 5)
		g.over = true
		board := g.Board()
		st := g.Tick()
		if !st.Over {
			t.Errorf("expected an over step, got %+v", st)
		}
		if !reflect.DeepEqual(g.Board(), board) || g.Score() != 0 || g.Lines() != 0 {
			t.Error("expected tick on an ended game to mutate nothing")
		}
	})
}

func TestHardDrop(t *testing.T) {
	g := NewTestGame(O)
	ghost := g.Ghost()
	st := g.HardDrop()
	if !st.Locked {
		t.Fatalf("expected a lock, got %+v", st)
	}
	for _, c := range ghost.Cells() {
		if g.Cell(c.DX, c.DY) != uint8(O) {
			t.Errorf("expected locked cell at (%d,%d)", c.DX, c.DY)
		}
	}

	g.over = true
	if st := g.HardDrop(); !st.Over {
		t.Errorf("expected an over step, got %+v", st)
	}
}

func TestLockAboveBoard(t *testing.T) {
	g := NewTestGame(O)
	// an O hanging over the top edge with no room below: the cells at
	// y -1 are dropped, the rest lock normally. The blocking row keeps
	// a gap so the lock does not also clear it.
	g.current = Piece{Kind: O, X: 0, Y: -1}
	fillRow(g, 1, 9)
	g.Tick()
	if g.Cell(1, 0) != uint8(O) || g.Cell(2, 0) != uint8(O) {
		t.Error("expected the visible half of the piece on row 0")
	}
	for _, v := range g.Board() {
		if v > uint8(NumKinds) {
			t.Errorf("expected all cells in [0,7], got %d", v)
		}
	}
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	g := NewTestGame(T)
	// occupy the spawn frame so the piece after the next lock cannot enter.
	fillRow(g, 0, 0, 9)
	fillRow(g, 1, 0, 9)
	st := g.HardDrop()
	if !st.Locked || !st.ToppedOut {
		t.Fatalf("expected a topped-out lock, got %+v", st)
	}
	if !g.Over() {
		t.Error("expected the game to be over")
	}
	// the failed spawn stays readable for a terminal render.
	if g.Current().Kind != T || g.Current().Y != 0 {
		t.Errorf("expected the blocked spawn to remain current, got %+v", g.Current())
	}
}

func TestClearLines(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		// a vertical I landing in the last gap of the floor row.
		g := NewTestGame(I)
		g.current = Piece{Kind: I, Rot: 1, X: 7, Y: 0}
		fillRow(g, Height-1, 9)
		st := g.HardDrop()
		if st.Cleared != 1 {
			t.Fatalf("expected 1 cleared row, got %d", st.Cleared)
		}
		if g.Lines() != 1 {
			t.Errorf("expected 1 total line, got %d", g.Lines())
		}
		if g.Score() != 40 {
			t.Errorf("expected score 40, got %d", g.Score())
		}
		// the rest of the I settles above the cleared row.
		for y := Height - 3; y < Height; y++ {
			if g.Cell(9, y) != uint8(I) {
				t.Errorf("expected I remainder at (9,%d)", y)
			}
		}
	})

	t.Run("four rows at once score 1200 at level 1", func(t *testing.T) {
		g := NewTestGame(I)
		g.current = Piece{Kind: I, Rot: 1, X: 7, Y: 0}
		for y := Height - 4; y < Height; y++ {
			fillRow(g, y, 9)
		}
		st := g.HardDrop()
		if st.Cleared != 4 {
			t.Fatalf("expected 4 cleared rows, got %d", st.Cleared)
		}
		if g.Score() != 1200 {
			t.Errorf("expected score 1200, got %d", g.Score())
		}
		for _, v := range g.Board() {
			if v != 0 {
				t.Error("expected an empty board after the clear")
				break
			}
		}
	})

	t.Run("stacked full rows are re-examined after the shift", func(t *testing.T) {
		g := NewTestGame(T)
		fillRow(g, Height-1)
		fillRow(g, Height-2)
		g.board[(Height-3)*Width+0] = uint8(J)
		if got := g.clearLines(); got != 2 {
			t.Fatalf("expected 2 cleared rows, got %d", got)
		}
		if g.Cell(0, Height-1) != uint8(J) {
			t.Error("expected the leftover cell to settle on the floor row")
		}
	})

	t.Run("level multiplier uses the updated line total", func(t *testing.T) {
		g := NewTestGame(I)
		g.lines = 9 // this clear crosses into level 2
		fillRow(g, Height-1, 9)
		g.current = Piece{Kind: I, Rot: 1, X: 7, Y: 0}
		g.HardDrop()
		if g.Level() != 2 {
			t.Fatalf("expected level 2, got %d", g.Level())
		}
		if g.Score() != 80 {
			t.Errorf("expected score 80 (40 x level 2), got %d", g.Score())
		}
	})

	t.Run("score saturates at the ceiling", func(t *testing.T) {
		g := NewTestGame(I)
		g.score = math.MaxUint32 - 10
		fillRow(g, Height-1, 9)
		g.current = Piece{Kind: I, Rot: 1, X: 7, Y: 0}
		g.HardDrop()
		if g.Score() != math.MaxUint32 {
			t.Errorf("expected the score pinned at %d, got %d", uint32(math.MaxUint32), g.Score())
		}
	})
}

func TestGhost(t *testing.T) {
	g := NewTestGame(L)
	fillRow(g, Height-1)
	ghost := g.Ghost()
	if !g.isValid(ghost) {
		t.Error("expected the ghost position to be valid")
	}
	if ghost.Y != Height-3 {
		t.Errorf("expected the ghost resting on the stack at Y %d, got %d", Height-3, ghost.Y)
	}
	if again := g.Ghost(); again != ghost {
		t.Errorf("expected repeated ghost queries to agree, got %+v then %+v", ghost, again)
	}
	if cur := g.Current(); cur.Y != 0 {
		t.Errorf("expected the ghost query to leave the piece at Y 0, got %d", cur.Y)
	}
}

func TestReset(t *testing.T) {
	g := NewSeeded(7)
	g.HardDrop()
	g.HardDrop()
	g.score = 500
	g.lines = 12
	g.over = true
	g.Reset()
	if g.Score() != 0 || g.Lines() != 0 || g.Level() != 1 || g.Over() {
		t.Errorf("expected a clean slate, got score %d lines %d over %t", g.Score(), g.Lines(), g.Over())
	}
	for _, v := range g.Board() {
		if v != 0 {
			t.Error("expected an empty board after reset")
			break
		}
	}
	if !g.isValid(g.Current()) {
		t.Errorf("expected a playable spawn after reset, got %+v", g.Current())
	}
}

func TestCountersNeverDecrease(t *testing.T) {
	g := NewSeeded(3)
	var score, lines uint32
	for i := 0; i < 500 && !g.Over(); i++ {
		switch i % 5 {
		case 0:
			g.MoveLeft()
		case 1:
			g.MoveRight()
		case 2:
			g.RotateCW()
		case 3:
			g.Tick()
		case 4:
			g.HardDrop()
		}
		if g.Score() < score || g.Lines() < lines {
			t.Fatalf("counters went backwards at step %d: score %d->%d lines %d->%d", i, score, g.Score(), lines, g.Lines())
		}
		score, lines = g.Score(), g.Lines()
	}
}
