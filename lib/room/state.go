// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"slices"

	"github.com/typetome/teletype/lib/wire"
)

// State is the local authoritative view of one room: who is in it,
// in what panel order, and every participant's line buffer. It is
// created empty, rebuilt wholesale by each snapshot event, and
// patched incrementally by keystroke and commit events.
type State struct {
	// RoomID is the server-assigned room identifier. It can change
	// across reconnect snapshots.
	RoomID string

	// SelfID is the local participant's identifier, learned from the
	// first snapshot.
	SelfID string

	// Order lists participant ids in panel layout order: self first,
	// then the others in server-supplied order. Duplicate-free.
	Order []string

	// Buffers maps participant id to line buffer. Every id in Order
	// has an entry; ids seen only in stray events may also have one,
	// retained but not rendered until a snapshot lists them.
	Buffers map[string]*Buffer
}

// NewState returns an empty state awaiting its first snapshot.
func NewState() *State {
	return &State{Buffers: make(map[string]*Buffer)}
}

// Ready reports whether a snapshot has been applied yet.
func (s *State) Ready() bool {
	return s.SelfID != ""
}

// Self returns the local participant's buffer, creating it if a
// snapshot somehow omitted it.
func (s *State) Self() *Buffer {
	return s.buffer(s.SelfID)
}

// buffer returns the participant's buffer, creating a fresh one on
// first reference.
func (s *State) buffer(id string) *Buffer {
	if b, ok := s.Buffers[id]; ok {
		return b
	}
	b := NewBuffer()
	s.Buffers[id] = b
	return b
}

// Apply advances the state by one inbound event. Events without a
// defined state effect (errors, room-is-crowded, unknown types) and
// keystroke or commit events missing their source id leave the state
// untouched. Apply never performs I/O and is deterministic.
func (s *State) Apply(event wire.Event) {
	switch {
	case event.IsSnapshot():
		s.applySnapshot(event.Room)

	case event.Type == wire.TypeKeyPress:
		if event.Source == "" {
			return
		}
		buffer := s.buffer(event.Source)
		buffer.SetCurrent(ApplyKey(buffer.Current(), event.Key, event.CursorPos))

	case event.Type == wire.TypeCommitted:
		if event.Source == "" {
			return
		}
		s.buffer(event.Source).Commit(event.Final)
	}
}

// applySnapshot rebuilds the whole state from a server snapshot:
// new room id, new self id, new participant order, and buffers
// initialized from the supplied history. Participants without
// history get a single empty line.
func (s *State) applySnapshot(snapshot *wire.Room) {
	s.RoomID = snapshot.ID
	s.SelfID = snapshot.YourID

	s.Order = s.Order[:0]
	if snapshot.YourID != "" {
		s.Order = append(s.Order, snapshot.YourID)
	}
	for _, id := range snapshot.OtherParticipantIDs {
		if id != snapshot.YourID && !slices.Contains(s.Order, id) {
			s.Order = append(s.Order, id)
		}
	}

	s.Buffers = make(map[string]*Buffer, len(snapshot.Messages))
	for id, history := range snapshot.Messages {
		s.Buffers[id] = bufferFromHistory(history)
	}
	for _, id := range s.Order {
		if _, ok := s.Buffers[id]; !ok {
			s.Buffers[id] = NewBuffer()
		}
	}
}
