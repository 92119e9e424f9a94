// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "encoding/json"

// Event type discriminators. The first three are client-to-server,
// the rest server-to-client. TypeError is also synthesized locally
// by the session layer when the transport fails.
const (
	TypeNewRoom     = "newroom"
	TypeFetchRoom   = "fetchRoom"
	TypeKeyPress    = "keyPress"
	TypeGotRoom     = "gotRoom"
	TypeRoomCreated = "roomCreated"
	TypeCommitted   = "committed"
	TypeError       = "error"
	TypeRoomCrowded = "room-is-crowded"
)

// Event is the single frame envelope for both directions. Fields
// outside the set valid for a given Type are left at their zero
// value and omitted from the encoding.
type Event struct {
	Type string `json:"type"`

	// ID is the room to join (fetchRoom only).
	ID string `json:"id,omitempty"`

	// Key and CursorPos describe a keystroke (keyPress in both
	// directions). CursorPos is the sender's cursor, in runes, at
	// the moment the key was pressed — before the edit it implies.
	Key       Key  `json:"key,omitempty"`
	CursorPos *int `json:"cursorPos,omitempty"`

	// SocketID identifies the sending client on client-to-server
	// frames. Absent until the client learns its id from the first
	// snapshot, unless the client chose its own id at handshake.
	SocketID string `json:"socketId,omitempty"`

	// Source identifies the participant a server-relayed keyPress
	// or committed frame belongs to.
	Source string `json:"source,omitempty"`

	// Final is the authoritative full text of a committed line.
	Final string `json:"final,omitempty"`

	// Message carries human-readable text for error and
	// room-is-crowded frames.
	Message string `json:"message,omitempty"`

	// Room is the full-state snapshot on gotRoom and roomCreated.
	Room *Room `json:"room,omitempty"`
}

// Room is the server's full-state snapshot of one room, sent on join
// and create. Messages maps participant id to that participant's
// line buffer (committed lines plus the in-progress last line).
type Room struct {
	ID                  string              `json:"id"`
	YourID              string              `json:"yourId"`
	TheirID             string              `json:"theirId,omitempty"`
	Participants        int                 `json:"participants,omitempty"`
	OtherParticipantIDs []string            `json:"otherParticipantIds"`
	Messages            map[string][]string `json:"messages"`
}

// IsSnapshot reports whether the event carries a full room snapshot.
// gotRoom and roomCreated differ only in how the room came to exist.
func (e Event) IsSnapshot() bool {
	return (e.Type == TypeGotRoom || e.Type == TypeRoomCreated) && e.Room != nil
}

// NewRoom builds the handshake frame that creates a fresh room.
// socketID may be empty; servers assign one when it is.
func NewRoom(socketID string) Event {
	return Event{Type: TypeNewRoom, SocketID: socketID}
}

// FetchRoom builds the handshake frame that joins (or revives) an
// existing room by id.
func FetchRoom(roomID, socketID string) Event {
	return Event{Type: TypeFetchRoom, ID: roomID, SocketID: socketID}
}

// KeyPress builds an outbound keystroke frame. cursor is the
// pre-mutation rune position of the local cursor.
func KeyPress(key Key, cursor int) Event {
	return Event{Type: TypeKeyPress, Key: key, CursorPos: &cursor}
}

// Encode renders the event as a JSON frame.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses a JSON frame into an Event. Unknown fields are
// ignored so protocol additions don't break older clients.
func Decode(frame []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(frame, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Cursor returns a pointer to position, for building events whose
// CursorPos is set from a literal.
func Cursor(position int) *int {
	return &position
}
