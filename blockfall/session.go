package blockfall

import (
	"math"
	"sync"
	"time"
)

// Action is a player input forwarded to the engine.
type Action string

const (
	MoveLeftAction  Action = "left"   // one column left
	MoveRightAction Action = "right"  // one column right
	SoftDropAction  Action = "down"   // one gravity step
	HardDropAction  Action = "drop"   // straight down, lock immediately
	RotateAction    Action = "rotate" // clockwise, with kicks
	ResetAction     Action = "reset"  // restart the session in place
)

// Ticker abstracts time.Ticker so tests can drive gravity by hand.
type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Snapshot is an immutable copy of the game state, safe to hand to a
// renderer while the session keeps mutating the engine.
type Snapshot struct {
	Board    []uint8
	Current  Piece
	Ghost    Piece
	Next     Kind
	Score    uint32
	Lines    uint32
	Level    uint32
	GameOver bool
}

// Session owns a Game and serializes all access to it: gravity from the
// ticker, player input from Do, reads through the update channel. The
// engine itself stays single-threaded, the session is the only caller.
type Session struct {
	updateCh chan *Snapshot
	actionCh chan Action
	doneCh   chan bool
	game     *Game
	ticker   Ticker
	mu       sync.Mutex
}

// NewSession returns an idle session around a freshly seeded game.
// The real gravity interval is set on Start.
func NewSession() *Session {
	return NewConfigurableSession(New(), newWrappedTicker(1*time.Hour))
}

// NewConfigurableSession wires a specific game and ticker, used by tests
// and by shells that inject a seed for replays.
func NewConfigurableSession(g *Game, ticker Ticker) *Session {
	return &Session{
		updateCh: make(chan *Snapshot),
		actionCh: make(chan Action),
		doneCh:   make(chan bool, 1),
		game:     g,
		ticker:   ticker,
	}
}

// Updates delivers a snapshot after every state change.
func (s *Session) Updates() <-chan *Snapshot { return s.updateCh }

// Start begins the gravity loop. Callers run it in its own goroutine;
// the session publishes the initial state and then listens.
func (s *Session) Start() {
	s.mu.Lock()
	s.game.Reset()
	s.mu.Unlock()
	// drop a stop signal left over from a run that ended on its own.
	select {
	case <-s.doneCh:
	default:
	}
	go s.listen()
}

// Stop ends the gravity loop. The session can be started again.
func (s *Session) Stop() {
	s.ticker.Stop()
	s.doneCh <- true
}

// Do queues a player action. It blocks until the session picks it up.
func (s *Session) Do(a Action) {
	s.actionCh <- a
}

// Read returns a snapshot of the current state.
func (s *Session) Read() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) listen() {
	s.ticker.Reset(s.gravity())
	s.updateCh <- s.Read()
	for {
		var over bool
		select {
		case <-s.ticker.C():
			s.mu.Lock()
			over = s.step(s.game.Tick())
		case a := <-s.actionCh:
			s.mu.Lock()
			over = s.apply(a)
		case <-s.doneCh:
			return
		}
		snap := s.snapshot()
		s.mu.Unlock()
		s.updateCh <- snap
		if over {
			return
		}
	}
}

func (s *Session) apply(a Action) bool {
	switch a {
	case MoveLeftAction:
		s.game.MoveLeft()
	case MoveRightAction:
		s.game.MoveRight()
	case RotateAction:
		s.game.RotateCW()
	case SoftDropAction:
		return s.step(s.game.SoftDrop())
	case HardDropAction:
		return s.step(s.game.HardDrop())
	case ResetAction:
		s.game.Reset()
		s.ticker.Reset(s.gravity())
	}
	return false
}

// step reacts to a gravity step result: locks re-arm the ticker since a
// clear may have raised the level, a top-out ends the loop.
func (s *Session) step(st Step) bool {
	if st.ToppedOut || st.Over {
		s.ticker.Stop()
		return true
	}
	if st.Locked {
		s.ticker.Reset(s.gravity())
	}
	return false
}

func (s *Session) snapshot() *Snapshot {
	return &Snapshot{
		Board:    s.game.Board(),
		Current:  s.game.Current(),
		Ghost:    s.game.Ghost(),
		Next:     s.game.Next(),
		Score:    s.game.Score(),
		Lines:    s.game.Lines(),
		Level:    s.game.Level(),
		GameOver: s.game.Over(),
	}
}

// gravity is the fall interval for the current level. Based on
// https://tetris.wiki/Marathon
//
//	Time = (0.8-((Level-1)*0.007))^(Level-1)
func (s *Session) gravity() time.Duration {
	l := float64(s.game.Level())
	if l > 20 {
		l = 20
	}
	seconds := math.Pow(0.8-(l-1)*0.007, l-1)
	return time.Duration(seconds * float64(time.Second))
}
