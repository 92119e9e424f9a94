// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the JSON event protocol spoken between a
// Teletype client and server over a websocket.
//
// Every frame in both directions is a single [Event] envelope
// discriminated by its Type field. Clients send a handshake frame
// (newroom or fetchRoom) followed by keyPress frames; servers send
// room snapshots (gotRoom, roomCreated), replayed keyPress frames
// from other participants, committed frames when a participant
// finishes a line, and error frames.
//
// Key names form a closed vocabulary ([Key] constants plus single
// printable characters). Cursor positions travel as optional fields
// — a nil CursorPos means the sender predates cursor tracking, and
// receivers fall back to end-of-line edit semantics. Positions count
// runes, not bytes.
package wire
