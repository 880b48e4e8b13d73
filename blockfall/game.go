// Package blockfall contains the rules of the game: the board, the
// falling piece, collision, locking, line clears, scoring and levels.
// Everything else in the repository is a shell around this package.
package blockfall

import (
	"math"
	"math/rand"
	"time"
)

// Board dimensions. Fixed for the life of a Game.
const (
	Width  = 10
	Height = 20
)

// spawnX is the column a fresh piece's 4x4 frame starts at.
const spawnX = 3

// kicks are the horizontal offsets tried, in order, after a rotation
// collides. Untranslated first, then left/right in growing magnitude.
// This is a deliberate simplification of a guideline rotation system:
// it never perturbs along y and ignores the specific transition. Keep
// the order as is, changing it changes observable gameplay.
var kicks = [5]int{0, -1, 1, -2, 2}

// Step is the outcome of a gravity step.
type Step struct {
	// Locked is true when the piece could not move down and was written
	// into the board. Cleared and ToppedOut are only meaningful then.
	Locked bool
	// Cleared is how many rows this lock completed (0-4).
	Cleared int
	// ToppedOut is true when the follow-up spawn had no room.
	ToppedOut bool
	// Over is true when the step did nothing because the game had
	// already ended.
	Over bool
}

// Game is the whole engine state. It is not safe for concurrent use;
// Session serializes access for callers that need a goroutine boundary.
type Game struct {
	board   []uint8
	current Piece
	next    Kind
	rng     *rand.Rand
	score   uint32
	lines   uint32
	over    bool
}

// New returns a ready-to-play game seeded from the clock.
func New() *Game {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a ready-to-play game with a deterministic piece
// sequence, for tests and replays.
func NewSeeded(seed int64) *Game {
	g := &Game{
		board: make([]uint8, Width*Height),
		rng:   rand.New(rand.NewSource(seed)),
	}
	g.next = g.draw()
	g.spawn()
	return g
}

// Reset restarts the session in place: board and counters zeroed, the
// lookahead redrawn. The random source keeps its position, a reset is a
// continuation, not a reseed.
func (g *Game) Reset() {
	clear(g.board)
	g.score = 0
	g.lines = 0
	g.over = false
	g.next = g.draw()
	g.spawn()
}

func (g *Game) draw() Kind {
	return Kind(g.rng.Intn(NumKinds) + 1)
}

// spawn promotes the lookahead to current and draws a fresh lookahead.
// When the spawn position is blocked the game ends; the invalid piece is
// left in place so a shell can still render the final state.
func (g *Game) spawn() {
	g.current = Piece{Kind: g.next, X: spawnX, Y: 0}
	g.next = g.draw()
	if !g.isValid(g.current) {
		g.over = true
	}
}

// isValid reports whether every cell of the piece is inside the side and
// bottom bounds and, for cells on the visible board, unoccupied. Cells
// above the board (y < 0) are allowed so a piece can hang over the top
// edge right after spawning.
func (g *Game) isValid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.DX < 0 || c.DX >= Width || c.DY >= Height {
			return false
		}
		if c.DY >= 0 && g.board[c.DY*Width+c.DX] != 0 {
			return false
		}
	}
	return true
}

// tryMove commits the translated piece when the target is valid. This is
// the single mutation primitive behind every movement entry point.
func (g *Game) tryMove(dx, dy int) bool {
	p := g.current.translated(dx, dy)
	if !g.isValid(p) {
		return false
	}
	g.current = p
	return true
}

// MoveLeft shifts the piece one column left when nothing blocks it.
func (g *Game) MoveLeft() {
	if g.over {
		return
	}
	g.tryMove(-1, 0)
}

// MoveRight shifts the piece one column right when nothing blocks it.
func (g *Game) MoveRight() {
	if g.over {
		return
	}
	g.tryMove(1, 0)
}

// RotateCW advances the rotation state, trying each kick offset until
// one fits. When none fits the rotation is abandoned.
func (g *Game) RotateCW() {
	if g.over {
		return
	}
	p := g.current.rotated()
	for _, dx := range kicks {
		if q := p.translated(dx, 0); g.isValid(q) {
			g.current = q
			return
		}
	}
}

// Tick advances gravity by one row. When the piece cannot move down it
// locks: cells written to the board, full rows cleared, score applied,
// next piece spawned. Once the game has ended Tick is a no-op.
func (g *Game) Tick() Step {
	if g.over {
		return Step{Over: true}
	}
	if g.tryMove(0, 1) {
		return Step{}
	}
	return g.lock()
}

// SoftDrop is a single gravity step requested by the player.
func (g *Game) SoftDrop() Step {
	return g.Tick()
}

// HardDrop sends the piece straight down and locks it immediately.
func (g *Game) HardDrop() Step {
	if g.over {
		return Step{Over: true}
	}
	for g.tryMove(0, 1) {
	}
	return g.lock()
}

func (g *Game) lock() Step {
	for _, c := range g.current.Cells() {
		// cells above the visible board never reach it
		if c.DY < 0 {
			continue
		}
		g.board[c.DY*Width+c.DX] = uint8(g.current.Kind)
	}
	cleared := g.clearLines()
	g.addScore(cleared)
	g.spawn()
	return Step{Locked: true, Cleared: cleared, ToppedOut: g.over}
}

// clearLines removes full rows bottom-up. After shifting rows down the
// same index is examined again: the row that slid into it may itself be
// full when several stacked rows complete at once.
func (g *Game) clearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !g.rowFull(y) {
			y--
			continue
		}
		cleared++
		for yy := y; yy > 0; yy-- {
			copy(g.board[yy*Width:(yy+1)*Width], g.board[(yy-1)*Width:yy*Width])
		}
		clear(g.board[:Width])
	}
	g.lines += uint32(cleared)
	return cleared
}

func (g *Game) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if g.board[y*Width+x] == 0 {
			return false
		}
	}
	return true
}

// scoreBase is the award for clearing n rows in one lock, before the
// level multiplier.
func scoreBase(n int) uint32 {
	switch n {
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	case 4:
		return 1200
	}
	return 0
}

// addScore applies the award for a lock. The level multiplier uses the
// line total including the rows just cleared. The score saturates at
// the uint32 ceiling instead of wrapping.
func (g *Game) addScore(cleared int) {
	inc := scoreBase(cleared) * g.Level()
	if g.score > math.MaxUint32-inc {
		g.score = math.MaxUint32
		return
	}
	g.score += inc
}

// Board returns a copy of the grid, row-major, length Width*Height.
func (g *Game) Board() []uint8 {
	b := make([]uint8, len(g.board))
	copy(b, g.board)
	return b
}

// Cell returns the value at (x, y), or 0 for out-of-range coordinates.
func (g *Game) Cell(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return g.board[y*Width+x]
}

// Current returns the falling piece. After a top-out this is the piece
// that failed to spawn.
func (g *Game) Current() Piece { return g.current }

// Next returns the kind queued to spawn after the current piece locks.
func (g *Game) Next() Kind { return g.next }

// Ghost projects the current piece straight down to its resting place
// without touching game state. Recomputed on every call.
func (g *Game) Ghost() Piece {
	p := g.current
	for {
		q := p.translated(0, 1)
		if !g.isValid(q) {
			return p
		}
		p = q
	}
}

// Score returns the running score. It never decreases.
func (g *Game) Score() uint32 { return g.score }

// Lines returns the total rows cleared this session.
func (g *Game) Lines() uint32 { return g.lines }

// Level is the scoring and speed multiplier: one step up every 10 lines.
func (g *Game) Level() uint32 { return g.lines/10 + 1 }

// Over reports whether the session has ended. Only Reset clears it.
func (g *Game) Over() bool { return g.over }
