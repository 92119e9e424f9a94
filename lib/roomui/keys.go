// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the TUI interprets itself. Everything
// else is typing and goes to the wire verbatim.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set. Escape and Ctrl+C both
// quit; neither is part of the wire key vocabulary's text-producing
// set, so no content is lost.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "quit"),
	),
}
