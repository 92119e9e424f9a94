// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"unicode/utf8"

	"github.com/typetome/teletype/lib/wire"
)

// ApplyKey returns the line after one keystroke. cursor is the
// sender's rune position at the moment of the keystroke, or nil when
// the sender does not track cursors; positions out of range are
// clamped. The function is pure and total: every key has a defined
// outcome, and unrecognized keys leave the line unchanged.
//
// Local echo and remote replay both go through here, which is the
// self-consistency law the UI depends on: replaying the event we
// send produces exactly the buffer we showed.
func ApplyKey(line string, key wire.Key, cursor *int) string {
	runes := []rune(line)
	position := -1
	if cursor != nil {
		position = clamp(*cursor, 0, len(runes))
	}

	switch {
	case key == wire.KeyBackspace:
		if cursor == nil {
			// Legacy senders delete at end of line.
			if len(runes) > 0 {
				return string(runes[:len(runes)-1])
			}
			return line
		}
		if position > 0 {
			return string(append(runes[:position-1:position-1], runes[position:]...))
		}
		return line

	case key == wire.KeyDelete || key == wire.KeyDeleteAt:
		if cursor != nil && position < len(runes) {
			return string(append(runes[:position:position], runes[position+1:]...))
		}
		return line

	case key == wire.KeyCtrlK:
		if cursor != nil {
			return string(runes[:position])
		}
		return line

	case key == wire.KeySpace:
		return insertRune(runes, position, ' ')

	default:
		if r, ok := key.Printable(); ok {
			return insertRune(runes, position, r)
		}
		// Arrows, control chords, and anything unrecognized never
		// change content.
		return line
	}
}

// insertRune places r at the given rune position, or appends when
// position is -1 (no cursor supplied).
func insertRune(runes []rune, position int, r rune) string {
	if position < 0 || position >= len(runes) {
		return string(append(runes, r))
	}
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:position]...)
	out = append(out, r)
	out = append(out, runes[position:]...)
	return string(out)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// RuneLen returns the rune count of a line. Cursor arithmetic is in
// runes everywhere; bytes would split multibyte characters.
func RuneLen(line string) int {
	return utf8.RuneCountInString(line)
}
