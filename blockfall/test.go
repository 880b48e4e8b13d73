package blockfall

import (
	"math/rand"
	"sync"
	"time"
)

// MockTicker is a hand-driven Ticker for tests.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker         { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// NewTestGame returns a game with an empty board and a known piece: the
// given kind both falling and queued. The random source is fixed so a
// test's piece sequence is stable.
func NewTestGame(k Kind) *Game {
	g := &Game{
		board: make([]uint8, Width*Height),
		rng:   rand.New(rand.NewSource(1)),
	}
	g.current = Piece{Kind: k, X: spawnX, Y: 0}
	g.next = k
	return g
}

// NewTestSession wires a session around a specific game with a manual
// ticker, so tests control gravity.
func NewTestSession(g *Game) (*Session, *MockTicker) {
	ticker := NewMockTicker()
	return &Session{
		updateCh: make(chan *Snapshot),
		actionCh: make(chan Action),
		doneCh:   make(chan bool, 1),
		game:     g,
		ticker:   ticker,
	}, ticker
}

// NewTestSnapshot returns the snapshot of a fresh test game, for shells
// that need render fixtures.
func NewTestSnapshot(k Kind) *Snapshot {
	g := NewTestGame(k)
	return &Snapshot{
		Board:   g.Board(),
		Current: g.Current(),
		Ghost:   g.Ghost(),
		Next:    g.Next(),
		Level:   g.Level(),
	}
}
