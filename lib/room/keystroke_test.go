// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"testing"

	"github.com/typetome/teletype/lib/wire"
)

func cursor(position int) *int {
	return &position
}

func TestInsertAtCursor(t *testing.T) {
	line := ApplyKey("", wire.Key("h"), cursor(0))
	line = ApplyKey(line, wire.Key("i"), cursor(1))
	if line != "hi" {
		t.Errorf("typing h,i at cursors 0,1 = %q, want %q", line, "hi")
	}
}

func TestInsertMidLine(t *testing.T) {
	if got := ApplyKey("hllo", wire.Key("e"), cursor(1)); got != "hello" {
		t.Errorf("insert 'e' at 1 in %q = %q, want %q", "hllo", got, "hello")
	}
}

func TestInsertWithoutCursorAppends(t *testing.T) {
	if got := ApplyKey("hell", wire.Key("o"), nil); got != "hello" {
		t.Errorf("append 'o' = %q, want %q", got, "hello")
	}
}

func TestSpaceInsertsLiteralSpace(t *testing.T) {
	if got := ApplyKey("ab", wire.KeySpace, cursor(1)); got != "a b" {
		t.Errorf("Space at 1 in %q = %q, want %q", "ab", got, "a b")
	}
	if got := ApplyKey("ab", wire.KeySpace, nil); got != "ab " {
		t.Errorf("Space with no cursor = %q, want %q", got, "ab ")
	}
}

func TestBackspace(t *testing.T) {
	if got := ApplyKey("hi", wire.KeyBackspace, cursor(2)); got != "h" {
		t.Errorf("Backspace at 2 in %q = %q, want %q", "hi", got, "h")
	}
	if got := ApplyKey("abc", wire.KeyBackspace, cursor(1)); got != "bc" {
		t.Errorf("Backspace at 1 in %q = %q, want %q", "abc", got, "bc")
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	if got := ApplyKey("hi", wire.KeyBackspace, cursor(0)); got != "hi" {
		t.Errorf("Backspace at 0 = %q, want line unchanged", got)
	}
}

func TestBackspaceWithoutCursorDeletesLast(t *testing.T) {
	if got := ApplyKey("hi", wire.KeyBackspace, nil); got != "h" {
		t.Errorf("legacy Backspace = %q, want %q", got, "h")
	}
	if got := ApplyKey("", wire.KeyBackspace, nil); got != "" {
		t.Errorf("legacy Backspace on empty line = %q, want empty", got)
	}
}

func TestDeleteAtCursor(t *testing.T) {
	if got := ApplyKey("abc", wire.KeyDelete, cursor(1)); got != "ac" {
		t.Errorf("Delete at 1 in %q = %q, want %q", "abc", got, "ac")
	}
	if got := ApplyKey("abc", wire.KeyDeleteAt, cursor(0)); got != "bc" {
		t.Errorf("DeleteAt at 0 in %q = %q, want %q", "abc", got, "bc")
	}
}

func TestDeleteAtEndIsNoop(t *testing.T) {
	if got := ApplyKey("abc", wire.KeyDelete, cursor(3)); got != "abc" {
		t.Errorf("Delete at line end = %q, want line unchanged", got)
	}
	if got := ApplyKey("abc", wire.KeyDelete, nil); got != "abc" {
		t.Errorf("Delete with no cursor = %q, want line unchanged", got)
	}
}

func TestCtrlKTruncates(t *testing.T) {
	if got := ApplyKey("hello world", wire.KeyCtrlK, cursor(5)); got != "hello" {
		t.Errorf("CtrlK at 5 = %q, want %q", got, "hello")
	}
}

func TestCtrlKWithoutCursorIsNoop(t *testing.T) {
	if got := ApplyKey("hello", wire.KeyCtrlK, nil); got != "hello" {
		t.Errorf("CtrlK with no cursor = %q, want line unchanged", got)
	}
}

func TestArrowsNeverMutate(t *testing.T) {
	arrows := []wire.Key{wire.KeyArrowLeft, wire.KeyArrowRight, wire.KeyArrowUp, wire.KeyArrowDown}
	for _, arrow := range arrows {
		if got := ApplyKey("text", arrow, cursor(2)); got != "text" {
			t.Errorf("%s mutated line to %q", arrow, got)
		}
	}
}

func TestNonTextKeysAreNoops(t *testing.T) {
	keys := []wire.Key{wire.KeyShift, wire.KeyMeta, wire.KeyControl, wire.KeyAlt,
		wire.KeyEscape, wire.KeyTab, wire.KeyEnter, wire.KeyCtrlA, wire.KeyCtrlB,
		wire.KeyCtrlE, wire.KeyCtrlF}
	for _, k := range keys {
		if got := ApplyKey("text", k, cursor(2)); got != "text" {
			t.Errorf("%s mutated line to %q", k, got)
		}
	}
}

func TestUnknownKeyNameIsNoop(t *testing.T) {
	if got := ApplyKey("text", wire.Key("F13"), cursor(2)); got != "text" {
		t.Errorf("unknown key mutated line to %q", got)
	}
}

func TestOutOfRangeCursorsClamp(t *testing.T) {
	if got := ApplyKey("ab", wire.Key("c"), cursor(99)); got != "abc" {
		t.Errorf("insert with cursor 99 = %q, want %q", got, "abc")
	}
	if got := ApplyKey("ab", wire.Key("z"), cursor(-5)); got != "zab" {
		t.Errorf("insert with cursor -5 = %q, want %q", got, "zab")
	}
	if got := ApplyKey("ab", wire.KeyCtrlK, cursor(99)); got != "ab" {
		t.Errorf("CtrlK with cursor 99 = %q, want line unchanged", got)
	}
}

func TestRunePositionsNotBytes(t *testing.T) {
	// "héllo" is 6 bytes but 5 runes; position 2 must address the
	// first l, not the second byte of é.
	if got := ApplyKey("héllo", wire.KeyDelete, cursor(1)); got != "hllo" {
		t.Errorf("Delete at rune 1 of %q = %q, want %q", "héllo", got, "hllo")
	}
	if got := ApplyKey("héllo", wire.Key("x"), cursor(2)); got != "héxllo" {
		t.Errorf("insert at rune 2 of %q = %q, want %q", "héllo", got, "héxllo")
	}
	if got := ApplyKey("日本語", wire.KeyBackspace, cursor(2)); got != "日語" {
		t.Errorf("Backspace at rune 2 of %q = %q, want %q", "日本語", got, "日語")
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	type step struct {
		key    wire.Key
		cursor int
	}
	script := []step{
		{wire.Key("a"), 0}, {wire.Key("b"), 1}, {wire.KeySpace, 2},
		{wire.Key("c"), 3}, {wire.KeyBackspace, 4}, {wire.KeyDelete, 1},
		{wire.KeyCtrlK, 1},
	}

	replay := func() string {
		line := ""
		for _, s := range script {
			line = ApplyKey(line, s.key, cursor(s.cursor))
		}
		return line
	}

	first := replay()
	for i := 0; i < 10; i++ {
		if got := replay(); got != first {
			t.Fatalf("replay %d produced %q, first produced %q", i, got, first)
		}
	}
}

func TestLengthAccounting(t *testing.T) {
	// With in-range cursors, length changes by exactly +1 per insert
	// and -1 per delete.
	line := ""
	inserts, deletes := 0, 0

	apply := func(key wire.Key, at int) {
		line = ApplyKey(line, key, cursor(at))
	}
	apply(wire.Key("x"), 0)
	inserts++
	apply(wire.Key("y"), 1)
	inserts++
	apply(wire.KeySpace, 1)
	inserts++
	apply(wire.KeyBackspace, 2)
	deletes++
	apply(wire.Key("z"), 0)
	inserts++

	if got, want := RuneLen(line), inserts-deletes; got != want {
		t.Errorf("line length %d after %d inserts and %d deletes, want %d",
			got, inserts, deletes, want)
	}
}
