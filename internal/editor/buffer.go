// Package editor provides the in-process host editor the engine listens
// to: a modal line buffer plus a small highlighter standing in for a real
// one. It lives outside the decision core — the engine only sees it
// through the domain.Buffer port.
package editor

import (
	"strings"

	"github.com/aymendh/edvox/internal/domain"
)

// Buffer is an in-memory modal text buffer. Not safe for concurrent use;
// the host event loop owns it.
type Buffer struct {
	lines       []string
	cursor      domain.Cursor
	modalActive bool
	modalState  string
}

// Compile-time interface check.
var _ domain.Buffer = (*Buffer)(nil)

// NewBuffer creates a buffer from initial text. Modal editing starts
// active in command mode, vi-style.
func NewBuffer(text string) *Buffer {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{
		lines:       lines,
		modalActive: true,
		modalState:  "command",
	}
}

// LineText returns the text of a row, or "" when the row doesn't exist.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// TokensForRow runs the highlighter over a row.
func (b *Buffer) TokensForRow(row int) []domain.Token {
	return Tokenize(b.LineText(row))
}

// LineCount returns the number of rows.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Cursor returns the caret position.
func (b *Buffer) Cursor() domain.Cursor { return b.cursor }

// ModalActive reports whether modal editing is on.
func (b *Buffer) ModalActive() bool { return b.modalActive }

// ModalState returns the current modal state string.
func (b *Buffer) ModalState() string { return b.modalState }

// SetModalState switches the modal state.
func (b *Buffer) SetModalState(state string) { b.modalState = state }

// SetModalActive switches modal editing on or off.
func (b *Buffer) SetModalActive(active bool) { b.modalActive = active }

// Lines returns the raw line slice for rendering.
func (b *Buffer) Lines() []string { return b.lines }

// SetCursor moves the caret, clamped to the buffer, and returns the
// position actually landed on.
func (b *Buffer) SetCursor(c domain.Cursor) domain.Cursor {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= len(b.lines) {
		c.Row = len(b.lines) - 1
	}
	if c.Column < 0 {
		c.Column = 0
	}
	if max := len(b.lines[c.Row]); c.Column > max {
		c.Column = max
	}
	b.cursor = c
	return c
}

// InsertText inserts text at the cursor and advances the cursor past it.
// Returns the inserted text.
func (b *Buffer) InsertText(text string) string {
	line := b.lines[b.cursor.Row]
	col := b.cursor.Column
	b.lines[b.cursor.Row] = line[:col] + text + line[col:]
	b.cursor.Column += len(text)
	return text
}

// InsertNewline splits the current line at the cursor and moves the
// cursor to the start of the new line.
func (b *Buffer) InsertNewline() {
	line := b.lines[b.cursor.Row]
	col := b.cursor.Column
	head, tail := line[:col], line[col:]

	b.lines[b.cursor.Row] = head
	rest := append([]string{tail}, b.lines[b.cursor.Row+1:]...)
	b.lines = append(b.lines[:b.cursor.Row+1], rest...)

	b.cursor.Row++
	b.cursor.Column = 0
}

// DeleteBack removes the character before the cursor and returns it.
// At column 0 it joins the line with the previous one and returns "\n".
// Returns "" when there is nothing to delete.
func (b *Buffer) DeleteBack() string {
	if b.cursor.Column > 0 {
		line := b.lines[b.cursor.Row]
		col := b.cursor.Column
		removed := line[col-1 : col]
		b.lines[b.cursor.Row] = line[:col-1] + line[col:]
		b.cursor.Column--
		return removed
	}

	if b.cursor.Row == 0 {
		return ""
	}

	prev := b.lines[b.cursor.Row-1]
	b.lines[b.cursor.Row-1] = prev + b.lines[b.cursor.Row]
	b.lines = append(b.lines[:b.cursor.Row], b.lines[b.cursor.Row+1:]...)
	b.cursor.Row--
	b.cursor.Column = len(prev)
	return "\n"
}

// DeleteAt removes the character under the cursor and returns it, or ""
// when the cursor sits past the end of the line.
func (b *Buffer) DeleteAt() string {
	line := b.lines[b.cursor.Row]
	col := b.cursor.Column
	if col >= len(line) {
		return ""
	}
	removed := line[col : col+1]
	b.lines[b.cursor.Row] = line[:col] + line[col+1:]
	return removed
}

// WordRight returns the cursor moved to the start of the next word on
// the current line, or the line end when there is none.
func (b *Buffer) WordRight() domain.Cursor {
	line := b.lines[b.cursor.Row]
	col := b.cursor.Column

	// Skip the rest of the current word, then any separators.
	for col < len(line) && isWord(line[col]) {
		col++
	}
	for col < len(line) && !isWord(line[col]) {
		col++
	}
	return domain.Cursor{Row: b.cursor.Row, Column: col}
}

// WordLeft returns the cursor moved to the start of the previous word on
// the current line, or column 0.
func (b *Buffer) WordLeft() domain.Cursor {
	line := b.lines[b.cursor.Row]
	col := b.cursor.Column

	for col > 0 && !isWord(line[col-1]) {
		col--
	}
	for col > 0 && isWord(line[col-1]) {
		col--
	}
	return domain.Cursor{Row: b.cursor.Row, Column: col}
}

func isWord(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
