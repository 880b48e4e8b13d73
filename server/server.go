// Package server matches two players and relays their board snapshots.
// It never interprets a board; versus logic lives entirely in the clients.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"blockfall/proto"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

const (
	player1 int32 = 1
	player2 int32 = 2
)

// match is one pending or running two-player game. Each player owns an
// inbox the opponent's messages are pushed into.
type match struct {
	p1Inbox, p2Inbox chan *proto.GameMessage
	readyCh          chan struct{} // closed once both seats are taken
}

func newMatch() *match {
	return &match{
		p1Inbox: make(chan *proto.GameMessage, 10),
		p2Inbox: make(chan *proto.GameMessage, 10),
		readyCh: make(chan struct{}),
	}
}

type relayServer struct {
	proto.UnimplementedBlockfallServiceServer
	logger  *slog.Logger
	matches map[string]*match
	waiting string // match id with an open seat
	mu      sync.Mutex
}

func New(l *slog.Logger) proto.BlockfallServiceServer {
	return &relayServer{logger: l, matches: make(map[string]*match)}
}

// NewGame seats the caller in a match: the first caller opens one and
// waits, the second fills it. Both streams finish with started = true.
func (r *relayServer) NewGame(_ *proto.JoinRequest, stream grpc.ServerStreamingServer[proto.GameParams]) error {
	r.mu.Lock()
	var params *proto.GameParams
	var m *match
	switch r.waiting {
	case "":
		id := uuid.New().String()
		m = newMatch()
		r.matches[id] = m
		r.waiting = id
		params = &proto.GameParams{GameId: id, Player: player1}
	default:
		id := r.waiting
		r.waiting = ""
		m = r.matches[id]
		params = &proto.GameParams{GameId: id, Player: player2}
	}
	r.mu.Unlock()

	if err := stream.Send(params); err != nil {
		return fmt.Errorf("failed to send GameParams: %w", err)
	}
	if params.Player == player2 {
		close(m.readyCh)
	}

	select {
	case <-m.readyCh:
	case <-stream.Context().Done():
		// the waiting player gave up, free the seat.
		r.mu.Lock()
		if r.waiting == params.GameId {
			r.waiting = ""
			delete(r.matches, params.GameId)
		}
		r.mu.Unlock()
		return stream.Context().Err()
	}

	params.Started = true
	if err := stream.Send(params); err != nil {
		return fmt.Errorf("failed to send GameParams: %w", err)
	}
	return nil
}

// GameSession relays snapshots between the two players of a match. The
// first received message identifies the caller; everything after is
// forwarded to the opponent verbatim.
func (r *relayServer) GameSession(stream grpc.BidiStreamingServer[proto.GameMessage, proto.GameMessage]) error {
	var opponentInbox chan<- *proto.GameMessage
	registered := false

	for {
		rcv, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to receive GameMessage: %w", err)
		}

		if !registered {
			r.mu.Lock()
			m, ok := r.matches[rcv.GetGameId()]
			r.mu.Unlock()
			if !ok {
				return fmt.Errorf("game %q not found", rcv.GetGameId())
			}
			defer r.retire(rcv.GetGameId())

			var own <-chan *proto.GameMessage
			switch rcv.GetPlayer() {
			case player1:
				own, opponentInbox = m.p1Inbox, m.p2Inbox
			case player2:
				own, opponentInbox = m.p2Inbox, m.p1Inbox
			default:
				return errors.New("invalid player id")
			}

			go r.forward(stream, own)
			registered = true
		}

		select {
		case opponentInbox <- rcv:
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// forward drains the player's inbox into their stream.
func (r *relayServer) forward(stream grpc.BidiStreamingServer[proto.GameMessage, proto.GameMessage], inbox <-chan *proto.GameMessage) {
	for {
		select {
		case msg := <-inbox:
			if err := stream.Send(msg); err != nil {
				r.logger.Error("failed to forward message", slog.String("error", err.Error()))
				return
			}
		case <-stream.Context().Done():
			return
		}
	}
}

// retire drops a finished match. The first session to end wins; the
// second call is a no-op.
func (r *relayServer) retire(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
}
