package domain

import "context"

// Buffer is the read-only view of the host editor the engine consults when
// composing utterances. Implementations can be the in-process demo editor
// or an adapter to a real one.
type Buffer interface {
	// LineText returns the text of the given row, or "" when the row
	// does not exist.
	LineText(row int) string
	// TokensForRow returns the highlighter's token list for the row, in
	// column order. An empty slice means nothing to speak.
	TokensForRow(row int) []Token
	// LineCount returns the number of rows in the buffer.
	LineCount() int
	// Cursor returns the current caret position.
	Cursor() Cursor
	// ModalActive reports whether modal editing is switched on at all.
	ModalActive() bool
	// ModalState returns the editor's authoritative modal state string.
	// Only meaningful while ModalActive is true.
	ModalState() string
}

// Voice is the write-only port to the external speech/earcon service.
// Calls are fire-and-forget; the service owns queueing and playback and
// preserves submission order.
type Voice interface {
	Speak(text string, mode SpeakMode, profile Profile)
	Stop()
	PlayEarcon(e Earcon)
	SetKeyEcho(enabled bool)
}

// Synthesizer converts styled text into playable audio. Implementations
// can be cloud TTS, a local engine, or a fake under test.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, profile Profile) ([]byte, error)
	Voice() string
}
