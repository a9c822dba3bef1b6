// Package domain holds the shared types and ports of the spoken-feedback
// engine: cursor/token/annotation values coming in from the host editor,
// speech actions going out to the voice service, and the interfaces that
// connect the two.
package domain

// Cursor is a zero-indexed caret position in the editor buffer.
type Cursor struct {
	Row    int
	Column int
}

// Token is a lexical unit produced by the host editor's highlighter.
// Type is a dotted category string such as "keyword.control"; the
// outermost segment selects the speech profile.
type Token struct {
	Type  string
	Value string
}

// Annotation is a diagnostic marker attached to a buffer location.
// Two annotations at the same (row, column) are the same logical entity.
type Annotation struct {
	Row    int
	Column int
	Type   string
	Text   string
}

// Mode classifies the editor's modal-editing state.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeCommand
	ModeInsert
	// ModeOther covers modal states outside the known set. They are
	// tracked but never announced by name.
	ModeOther
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeInsert:
		return "insert"
	case ModeOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParseMode maps the editor's modal state string onto the known enum.
// Unrecognized strings map to ModeOther.
func ParseMode(state string) Mode {
	switch state {
	case "command":
		return ModeCommand
	case "insert":
		return ModeInsert
	case "":
		return ModeUnknown
	default:
		return ModeOther
	}
}

// TextAction distinguishes the two kinds of buffer mutation the engine
// reacts to.
type TextAction int

const (
	TextInsert TextAction = iota
	TextRemove
)

// String returns a human-readable action name.
func (a TextAction) String() string {
	if a == TextRemove {
		return "remove"
	}
	return "insert"
}
