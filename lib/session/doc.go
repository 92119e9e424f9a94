// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the websocket connection to a Teletype server.
//
// A [Session] performs the join-or-create handshake and then pumps
// frames in both directions: inbound frames are decoded into
// [wire.Event] values and delivered on the Events channel in arrival
// order, outbound events are drained from a buffered channel, stamped
// with the self id once the first snapshot reveals it, and written to
// the socket. Reading and writing run on separate goroutines so
// neither side can starve the other.
//
// The session shares nothing with the interaction loop except the two
// channels. On any transport failure it delivers exactly one
// synthesized error event, closes the Events channel, and stops; it
// never reconnects. Frames that fail JSON decoding are dropped with a
// debug log entry — a malformed peer must not take the client down.
package session
