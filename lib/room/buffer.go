// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package room

// MaxHistory caps the number of lines retained per participant,
// matching the server's own cap. Oldest committed lines are dropped
// first; the in-progress line is never dropped.
const MaxHistory = 500

// Buffer is one participant's line history: zero or more committed
// lines followed by exactly one mutable in-progress line. A Buffer
// is never empty.
type Buffer struct {
	lines []string
}

// NewBuffer returns a buffer holding a single empty in-progress line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// bufferFromHistory builds a buffer from snapshot history. Empty or
// nil history becomes a single empty line; otherwise the last history
// element is taken as the in-progress line, as the server renders it.
func bufferFromHistory(history []string) *Buffer {
	if len(history) == 0 {
		return NewBuffer()
	}
	buffer := &Buffer{lines: append([]string(nil), history...)}
	buffer.prune()
	return buffer
}

// Current returns the in-progress line.
func (b *Buffer) Current() string {
	return b.lines[len(b.lines)-1]
}

// SetCurrent replaces the in-progress line.
func (b *Buffer) SetCurrent(line string) {
	b.lines[len(b.lines)-1] = line
}

// Commit finalizes the in-progress line as final and opens a fresh
// empty one.
func (b *Buffer) Commit(final string) {
	b.lines[len(b.lines)-1] = final
	b.lines = append(b.lines, "")
	b.prune()
}

// Len returns the number of lines, including the in-progress one.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of all lines, oldest first. The last element
// is the in-progress line.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Tail returns up to n trailing lines, oldest first. n <= 0 returns
// nil.
func (b *Buffer) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(b.lines) {
		n = len(b.lines)
	}
	return append([]string(nil), b.lines[len(b.lines)-n:]...)
}

func (b *Buffer) prune() {
	if len(b.lines) > MaxHistory {
		b.lines = append([]string(nil), b.lines[len(b.lines)-MaxHistory:]...)
	}
}
