package engine

import (
	"fmt"
	"testing"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// voiceRecorder captures every call to the voice port, in order, as a
// readable trace line.
type voiceRecorder struct {
	calls []string
}

func (v *voiceRecorder) Speak(text string, mode domain.SpeakMode, _ domain.Profile) {
	v.calls = append(v.calls, fmt.Sprintf("speak[%s] %q", mode, text))
}

func (v *voiceRecorder) Stop() {
	v.calls = append(v.calls, "stop")
}

func (v *voiceRecorder) PlayEarcon(e domain.Earcon) {
	v.calls = append(v.calls, "earcon "+e.String())
}

func (v *voiceRecorder) SetKeyEcho(enabled bool) {
	v.calls = append(v.calls, fmt.Sprintf("keyecho %t", enabled))
}

func (v *voiceRecorder) reset() { v.calls = nil }

// fakeBuffer is a scripted Buffer. When tokens has no entry for a row the
// whole line is served as a single plain-text token.
type fakeBuffer struct {
	lines       []string
	tokens      map[int][]domain.Token
	cursor      domain.Cursor
	modalActive bool
	modalState  string
}

func (b *fakeBuffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

func (b *fakeBuffer) TokensForRow(row int) []domain.Token {
	if toks, ok := b.tokens[row]; ok {
		return toks
	}
	line := b.LineText(row)
	if line == "" {
		return nil
	}
	return []domain.Token{{Type: "text", Value: line}}
}

func (b *fakeBuffer) LineCount() int        { return len(b.lines) }
func (b *fakeBuffer) Cursor() domain.Cursor { return b.cursor }
func (b *fakeBuffer) ModalActive() bool     { return b.modalActive }
func (b *fakeBuffer) ModalState() string    { return b.modalState }

var _ domain.Buffer = (*fakeBuffer)(nil)
var _ domain.Voice = (*voiceRecorder)(nil)

func setupEngine(t *testing.T, buf *fakeBuffer) (*Engine, *voiceRecorder) {
	t.Helper()
	rec := &voiceRecorder{}
	log := logger.New(logger.LevelOff, nil)
	return New(buf, rec, log), rec
}

func assertCalls(t *testing.T, rec *voiceRecorder, want ...string) {
	t.Helper()
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d calls %v, want %d %v", len(rec.calls), rec.calls, len(want), want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (full trace: %v)", i, rec.calls[i], want[i], rec.calls)
		}
	}
}

func TestInsertSpeaksAndSuppressesOnce(t *testing.T) {
	buf := &fakeBuffer{lines: []string{"hello"}}
	eng, rec := setupEngine(t, buf)

	eng.OnTextChanged(domain.TextInsert, "x")
	assertCalls(t, rec, `speak[flush] "x"`)
	rec.reset()

	// The cursor event caused by the edit is swallowed...
	eng.OnCursorChanged(domain.Cursor{Row: 0, Column: 1})
	assertCalls(t, rec)

	// ...but only that one. The next user move announces normally.
	eng.OnCursorChanged(domain.Cursor{Row: 0, Column: 2})
	assertCalls(t, rec, `speak[flush] "l"`)
}

func TestRemoveSpeaksDeletion(t *testing.T) {
	buf := &fakeBuffer{lines: []string{"hello"}}
	eng, rec := setupEngine(t, buf)

	eng.OnTextChanged(domain.TextRemove, "lo")
	assertCalls(t, rec, `speak[flush] "lo"`)
}

func TestEmptyEditArmsLatchSilently(t *testing.T) {
	buf := &fakeBuffer{lines: []string{"hello"}}
	eng, rec := setupEngine(t, buf)

	eng.OnTextChanged(domain.TextInsert, "")
	assertCalls(t, rec)

	eng.OnCursorChanged(domain.Cursor{Row: 0, Column: 1})
	assertCalls(t, rec)
}

func TestSearchResult(t *testing.T) {
	buf := &fakeBuffer{lines: []string{"hello"}}
	eng, rec := setupEngine(t, buf)

	eng.OnSearchResultChanged("hello", true)
	assertCalls(t, rec, `speak[flush] "hello"`)
	rec.reset()

	eng.OnSearchResultChanged("", false)
	assertCalls(t, rec, "earcon alert", `speak[flush] "No matches"`)
}
