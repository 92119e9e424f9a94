// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomui implements the terminal user interface for a
// Teletype room. Built on bubbletea (Elm architecture), it renders
// one panel per participant, each showing the trailing lines of that
// participant's buffer with the in-progress line at the bottom — so
// every keystroke a peer makes is visible the moment it arrives.
//
// The [Model] owns the room state and the local cursor exclusively.
// Inbound events reach it through a channel-blocking tea.Cmd that
// re-arms after each delivery; outbound keystrokes go to a [Sender]
// without blocking. Local echo and remote replay share the transition
// rules in [room], so the buffer shown locally is exactly what peers
// reconstruct.
//
// Fatal events (transport error, room full) switch the model into an
// error view that dwells briefly before quitting. bubbletea restores
// the terminal on every exit path, including interrupts.
package roomui
