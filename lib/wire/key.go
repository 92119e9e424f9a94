// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"unicode"
	"unicode/utf8"
)

// Key is a key name on the wire. Named keys use the browser
// KeyboardEvent vocabulary the original web client established
// (Backspace, ArrowLeft, ...) plus control-chord names (CtrlA,
// CtrlK, ...); any other single printable character stands for
// itself.
type Key string

// Named keys. Space is named rather than literal so a keyPress
// frame is never all whitespace.
const (
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
	KeyDeleteAt   Key = "DeleteAt"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyTab        Key = "Tab"
	KeySpace      Key = "Space"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyCtrlA      Key = "CtrlA"
	KeyCtrlB      Key = "CtrlB"
	KeyCtrlE      Key = "CtrlE"
	KeyCtrlF      Key = "CtrlF"
	KeyCtrlK      Key = "CtrlK"
	KeyShift      Key = "Shift"
	KeyMeta       Key = "Meta"
	KeyControl    Key = "Control"
	KeyAlt        Key = "Alt"
)

// nonText is the set of key names that never produce a character.
// Mirrors the nonEvents list shared by the original clients and
// servers; a multi-character key name outside this set is still
// treated as non-text by Printable.
var nonText = map[Key]bool{
	KeyShift:      true,
	KeyMeta:       true,
	KeyControl:    true,
	KeyAlt:        true,
	KeyEnter:      true,
	KeyEscape:     true,
	KeyBackspace:  true,
	KeyArrowLeft:  true,
	KeyArrowRight: true,
	KeyArrowUp:    true,
	KeyArrowDown:  true,
	KeyTab:        true,
	KeyDelete:     true,
	KeyDeleteAt:   true,
	KeyCtrlA:      true,
	KeyCtrlB:      true,
	KeyCtrlE:      true,
	KeyCtrlF:      true,
	KeyCtrlK:      true,
}

// NonText reports whether the key is in the closed set of names
// that never insert a character.
func (k Key) NonText() bool {
	return nonText[k]
}

// Printable returns the rune this key inserts and true when the key
// is a single printable character outside the non-text set. KeySpace
// is not printable by this test; it has its own insert rule.
func (k Key) Printable() (rune, bool) {
	if nonText[k] {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(string(k))
	if size == 0 || size != len(k) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}
