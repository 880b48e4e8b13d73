// Package client is the terminal shell around the rules engine: keyboard
// input, board rendering and the online versus mode against the relay
// server. It owns timing and input decoding; the engine owns the rules.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"blockfall/blockfall"
	"blockfall/proto"

	"github.com/eiannone/keyboard"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type clientState int

const (
	lobby clientState = iota
	waiting
	playing
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type gameSession interface {
	Start()
	Stop()
	Do(blockfall.Action)
	Updates() <-chan *blockfall.Snapshot
}

type renderer interface {
	local(*blockfall.Snapshot)
	remote(*proto.GameMessage)
	reset()
}

type Client struct {
	session gameSession
	render  renderer
	options *Options
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent
	state   *state
}

type Options struct {
	NoGhost bool
	Address string
	Name    string
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	r, err := newRender(l, o.NoGhost, o.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		session: blockfall.NewSession(),
		render:  r,
		options: o,
		logger:  l,
		kbCh:    kb,
		state:   &state{current: lobby},
	}, nil
}

func (c *Client) Start() {
	c.render.local(nil)
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listenKB(&wg)
	wg.Wait()
}

func (c *Client) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	var ctx context.Context
	var cancel context.CancelFunc
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keyboard event error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		switch c.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				go c.listenLocal()
				c.state.set(playing)
			case 'o':
				ctx, cancel = context.WithCancel(context.Background())
				defer cancel()
				go c.listenOnline(ctx)
				c.state.set(waiting)
			case 'q':
				return
			default:
				continue
			}
		case waiting:
			switch event.Rune {
			case 'c':
				cancel()
				c.render.reset()
				c.render.local(nil)
			default:
				continue
			}
		case playing:
			switch {
			case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
				c.session.Do(blockfall.SoftDropAction)
			case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
				c.session.Do(blockfall.MoveLeftAction)
			case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
				c.session.Do(blockfall.MoveRightAction)
			case event.Key == keyboard.KeyArrowUp || event.Rune == 'e':
				c.session.Do(blockfall.RotateAction)
			case event.Key == keyboard.KeySpace:
				c.session.Do(blockfall.HardDropAction)
			case event.Rune == 'r':
				c.session.Do(blockfall.ResetAction)
			}
		}
	}
}

func (c *Client) listenLocal() {
	c.session.Start()
	c.render.reset()
	for u := range c.session.Updates() {
		c.render.local(u)
		if u.GameOver {
			c.state.set(lobby)
			return
		}
	}
}

func (c *Client) listenOnline(ctx context.Context) {
	defer func() {
		c.state.set(lobby)
		c.session.Stop()
	}()

	conn, err := grpc.NewClient(c.options.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		c.logger.Error("unable to create gRPC client", slog.String("error", err.Error()))
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			c.logger.Error("unable to close gRPC client", slog.String("error", err.Error()))
		}
	}()

	params, err := c.matchmake(ctx, proto.NewBlockfallServiceClient(conn))
	if err != nil {
		c.logger.Error("matchmaking failed", slog.String("error", err.Error()))
		return
	}

	stream, err := proto.NewBlockfallServiceClient(conn).GameSession(ctx)
	if err != nil {
		c.logger.Error("unable to open GameSession stream", slog.String("error", err.Error()))
		return
	}
	defer stream.CloseSend() //nolint: errcheck

	// receiver goroutine: opponent snapshots into rcvCh.
	rcvCh := make(chan *proto.GameMessage)
	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		for {
			rcv, err := stream.Recv()
			if err != nil {
				c.logStreamEnd(err)
				return
			}
			select {
			case rcvCh <- rcv:
			case <-ctx.Done():
				return
			}
		}
	}()

	// register with the relay before the first snapshot.
	if err := stream.Send(&proto.GameMessage{
		GameId: params.GetGameId(),
		Player: params.GetPlayer(),
		Name:   c.options.Name,
	}); err != nil {
		c.logger.Error("unable to register with the relay", slog.String("error", err.Error()))
		return
	}

	c.state.set(playing)
	c.render.reset()
	c.session.Start()

	for {
		select {
		case lu, ok := <-c.session.Updates():
			if !ok {
				c.logger.Error("session updates channel closed unexpectedly")
				return
			}
			c.render.local(lu)
			if err := stream.Send(&proto.GameMessage{
				GameId:   params.GetGameId(),
				Player:   params.GetPlayer(),
				Name:     c.options.Name,
				Started:  true,
				GameOver: lu.GameOver,
				Lines:    lu.Lines,
				Score:    lu.Score,
				Level:    lu.Level,
				Board:    stackBytes(lu),
			}); err != nil {
				c.logStreamEnd(err)
				return
			}
			if lu.GameOver {
				return
			}
		case ru, ok := <-rcvCh:
			if !ok {
				return
			}
			c.render.remote(ru)
			if ru.GetGameOver() {
				return
			}
		case <-doneCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// matchmake waits in the NewGame stream until the relay fills the seat.
func (c *Client) matchmake(ctx context.Context, bsc proto.BlockfallServiceClient) (*proto.GameParams, error) {
	stream, err := bsc.NewGame(ctx, &proto.JoinRequest{Name: c.options.Name})
	if err != nil {
		return nil, fmt.Errorf("unable to call NewGame: %w", err)
	}
	var params *proto.GameParams
	for {
		params, err = stream.Recv()
		if err != nil {
			return nil, fmt.Errorf("unable to receive GameParams: %w", err)
		}
		if params.GetStarted() {
			return params, nil
		}
	}
}

func (c *Client) logStreamEnd(err error) {
	if err == io.EOF {
		c.logger.Debug("stream closed with EOF")
		return
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Canceled, codes.DeadlineExceeded:
			c.logger.Debug("stream closed", slog.String("msg", st.Message()))
			return
		}
	}
	c.logger.Error("stream failed", slog.String("error", err.Error()))
}
