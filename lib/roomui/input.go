// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typetome/teletype/lib/wire"
)

// translateKey converts a terminal key event into wire key names.
// Most events map to exactly one key; pasted text arrives as a
// multi-rune event and is split into one keystroke per rune, the
// same way the original web client handled paste. Keys with no wire
// equivalent return nil.
func translateKey(message tea.KeyMsg) []wire.Key {
	switch message.Type {
	case tea.KeyEnter:
		return []wire.Key{wire.KeyEnter}
	case tea.KeyBackspace:
		return []wire.Key{wire.KeyBackspace}
	case tea.KeyDelete:
		return []wire.Key{wire.KeyDelete}
	case tea.KeyCtrlD:
		return []wire.Key{wire.KeyDeleteAt}
	case tea.KeyTab:
		return []wire.Key{wire.KeyTab}
	case tea.KeySpace:
		return []wire.Key{wire.KeySpace}
	case tea.KeyLeft:
		return []wire.Key{wire.KeyArrowLeft}
	case tea.KeyRight:
		return []wire.Key{wire.KeyArrowRight}
	case tea.KeyUp:
		return []wire.Key{wire.KeyArrowUp}
	case tea.KeyDown:
		return []wire.Key{wire.KeyArrowDown}
	case tea.KeyCtrlA, tea.KeyHome:
		return []wire.Key{wire.KeyCtrlA}
	case tea.KeyCtrlE, tea.KeyEnd:
		return []wire.Key{wire.KeyCtrlE}
	case tea.KeyCtrlB:
		return []wire.Key{wire.KeyCtrlB}
	case tea.KeyCtrlF:
		return []wire.Key{wire.KeyCtrlF}
	case tea.KeyCtrlK:
		return []wire.Key{wire.KeyCtrlK}
	case tea.KeyRunes:
		keys := make([]wire.Key, 0, len(message.Runes))
		for _, r := range message.Runes {
			switch {
			case r == ' ':
				keys = append(keys, wire.KeySpace)
			case unicode.IsPrint(r):
				keys = append(keys, wire.Key(string(r)))
			}
		}
		return keys
	}
	return nil
}
