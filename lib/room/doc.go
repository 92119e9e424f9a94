// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// Package room holds the client's local view of a Teletype room and
// the keystroke-replay engine that keeps it converged with the server.
//
// [State] maps every participant to a [Buffer]: the participant's
// committed lines plus one mutable in-progress line. Remote keystroke
// events are replayed against the in-progress line by [ApplyKey], the
// same pure transition the UI uses for local echo — the two paths
// applying identical rules is what lets local typing appear instantly
// without drifting from what peers reconstruct. Convergence does not
// depend on replay alone: committed events overwrite the in-progress
// line with the server's authoritative text, and snapshot events
// rebuild the whole State.
//
// Nothing in this package performs I/O or spawns goroutines. State is
// owned by the interaction loop; the network layer only produces the
// events fed to [State.Apply].
package room
