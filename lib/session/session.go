// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/typetome/teletype/lib/wire"
)

// outboundDepth bounds the UI-to-session queue. The UI enqueues one
// event per keystroke; the queue only fills when the socket stalls,
// in which case further keystrokes are dropped rather than freezing
// the interaction loop.
const outboundDepth = 64

// inboundDepth bounds the session-to-UI queue. The UI drains it on
// every event, so depth only matters for bursts (a snapshot followed
// by replayed keystrokes).
const inboundDepth = 64

// Config holds parameters for dialing a Teletype server.
type Config struct {
	// URL is the websocket endpoint, e.g. "wss://typeto.me/ws".
	URL string

	// RoomID selects the room to join. Empty means create a new room.
	RoomID string

	// ClientID is the socket id offered at handshake. Both server
	// implementations honor a client-supplied id; when empty a random
	// UUID is generated so the id is stable for the session.
	ClientID string

	// Logger is used for structured logging. If nil, slog.Default()
	// is used. It must not write to the terminal the TUI renders on.
	Logger *slog.Logger
}

// Session is a live connection to one Teletype server. Create with
// [Dial], then run [Session.Run] on its own goroutine.
type Session struct {
	conn     *websocket.Conn
	roomID   string
	clientID string
	logger   *slog.Logger

	events   chan wire.Event
	outbound chan wire.Event

	// selfID is the server-confirmed identity from the first
	// snapshot. Written by the read pump, read by the write pump.
	selfID atomic.Value // string

	failOnce  sync.Once
	closeOnce sync.Once
}

// Dial connects to the server. The handshake is not sent until
// [Session.Run] starts.
func Dial(ctx context.Context, config Config) (*Session, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("session: URL is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clientID := config.ClientID
	if clientID == "" {
		clientID = uuid.NewString()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("session: dial %s: %w", config.URL, err)
	}

	return &Session{
		conn:     conn,
		roomID:   config.RoomID,
		clientID: clientID,
		logger:   logger,
		events:   make(chan wire.Event, inboundDepth),
		outbound: make(chan wire.Event, outboundDepth),
	}, nil
}

// Events is the inbound queue: every decoded server frame in arrival
// order, then exactly one error event on transport failure, then the
// channel closes.
func (s *Session) Events() <-chan wire.Event {
	return s.events
}

// Send enqueues an outbound event without blocking. Returns false
// when the queue is full and the event was dropped.
func (s *Session) Send(event wire.Event) bool {
	select {
	case s.outbound <- event:
		return true
	default:
		s.logger.Debug("outbound queue full, dropping event", "type", event.Type, "key", event.Key)
		return false
	}
}

// Close abandons the connection. No close handshake is attempted;
// the server notices the drop and handles departure itself.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}

// Run sends the handshake and pumps frames until the transport fails
// or ctx is cancelled. Blocks; run on a dedicated goroutine.
func (s *Session) Run(ctx context.Context) {
	handshake := wire.NewRoom(s.clientID)
	if s.roomID != "" {
		handshake = wire.FetchRoom(s.roomID, s.clientID)
	}
	if err := s.conn.WriteJSON(handshake); err != nil {
		s.fail(ctx, fmt.Errorf("handshake: %w", err))
		close(s.events)
		return
	}
	s.logger.Info("connected", "handshake", handshake.Type, "room", s.roomID, "client_id", s.clientID)

	go s.writePump(ctx)
	s.readPump(ctx)
	close(s.events)
}

// readPump decodes every inbound frame onto the events channel.
// Runs on the Run goroutine; returning ends the session.
func (s *Session) readPump(ctx context.Context) {
	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			s.fail(ctx, err)
			return
		}

		event, err := wire.Decode(frame)
		if err != nil {
			s.logger.Debug("dropping malformed frame", "error", err, "bytes", len(frame))
			continue
		}

		if event.IsSnapshot() && event.Room.YourID != "" {
			s.selfID.Store(event.Room.YourID)
		}

		select {
		case s.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// writePump drains the outbound queue, stamping each event with the
// confirmed self id (falling back to the handshake client id) before
// writing it.
func (s *Session) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case event := <-s.outbound:
			event.SocketID = s.identity()
			if err := s.conn.WriteJSON(event); err != nil {
				s.fail(ctx, err)
				s.Close()
				return
			}
		}
	}
}

func (s *Session) identity() string {
	if id, ok := s.selfID.Load().(string); ok && id != "" {
		return id
	}
	return s.clientID
}

// fail delivers the single error event for this session. Cancellation
// is not an error: when ctx is already done the event is suppressed
// and the channel simply closes.
func (s *Session) fail(ctx context.Context, err error) {
	s.failOnce.Do(func() {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("transport failed", "error", err)
		select {
		case s.events <- wire.Event{Type: wire.TypeError, Message: err.Error()}:
		case <-ctx.Done():
		}
	})
}
