package engine

import (
	"reflect"
	"testing"

	"github.com/aymendh/edvox/internal/domain"
)

func codeBuffer() *fakeBuffer {
	// Row 0: "func main"
	// Row 1: "ab cd"
	// Row 2: "foo bar baz"
	return &fakeBuffer{
		lines: []string{"func main", "ab cd", "foo bar baz"},
		tokens: map[int][]domain.Token{
			0: {
				{Type: "storage.type", Value: "func"},
				{Type: "text", Value: " "},
				{Type: "entity.name.function", Value: "main"},
			},
			2: {
				{Type: "variable", Value: "foo"},
				{Type: "text", Value: " "},
				{Type: "variable", Value: "bar"},
				{Type: "text", Value: " "},
				{Type: "variable", Value: "baz"},
			},
		},
	}
}

func moveTo(eng *Engine, row, col int) {
	eng.OnCursorChanged(domain.Cursor{Row: row, Column: col})
}

func TestColumnSingleStepSpeaksCharacter(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{"forward onto word start", 3, 4, ` "b"`}, // never the word path on delta 1
		{"forward mid word", 4, 5, ` "a"`},
		{"backward", 5, 4, ` "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := codeBuffer()
			eng, rec := setupEngine(t, buf)
			moveTo(eng, 2, tt.from)
			rec.reset()

			moveTo(eng, 2, tt.to)
			assertCalls(t, rec, "speak[flush]"+tt.want)
		})
	}
}

func TestColumnJumpToLineEdgeSpeaksLine(t *testing.T) {
	buf := codeBuffer()
	eng, rec := setupEngine(t, buf)
	moveTo(eng, 0, 6)
	rec.reset()

	// Jump to column 0: whole line, flush then queued syntax tokens.
	moveTo(eng, 0, 0)
	assertCalls(t, rec, `speak[flush] "func"`, `speak[queue] "main"`)
	rec.reset()

	// Jump to end of line.
	moveTo(eng, 0, len("func main"))
	assertCalls(t, rec, `speak[flush] "func"`, `speak[queue] "main"`)
}

func TestColumnJumpToWordStartSpeaksToken(t *testing.T) {
	buf := codeBuffer()
	eng, rec := setupEngine(t, buf)
	moveTo(eng, 2, 0)
	rec.reset()

	// Column 8 is the 'b' of "baz": preceded by a space, not a line edge.
	moveTo(eng, 2, 8)
	assertCalls(t, rec, "stop", `speak[queue] "baz"`)
}

func TestColumnJumpMidWordSpeaksCharacter(t *testing.T) {
	buf := codeBuffer()
	eng, rec := setupEngine(t, buf)
	moveTo(eng, 2, 0)
	rec.reset()

	moveTo(eng, 2, 5)
	assertCalls(t, rec, `speak[flush] "a"`)
}

func TestDisplacementSpeech(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"jump expands spaces", 0, 4, []string{`speak[flush] "b space c"`}},
		{"single forward is inclusive", 3, 4, []string{`speak[flush] "d"`}},
		{"single forward onto space", 1, 2, []string{`speak[flush] "space"`}},
		{"single backward is silent", 4, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := codeBuffer() // row 1 is "ab cd"
			eng, rec := setupEngine(t, buf)
			eng.InvokeCommand("toggle_displacement")
			moveTo(eng, 1, tt.from)
			rec.reset()

			moveTo(eng, 1, tt.to)
			assertCalls(t, rec, tt.want...)
		})
	}
}

func TestRowChangeSpeaksDestinationLine(t *testing.T) {
	buf := codeBuffer()
	buf.cursor = domain.Cursor{Row: 2}
	eng, rec := setupEngine(t, buf)

	moveTo(eng, 0, 0)
	assertCalls(t, rec, `speak[flush] "func"`, `speak[queue] "main"`)
}

func TestRowChangeAnnotatedPlaysAlertFirst(t *testing.T) {
	for _, locationMode := range []bool{false, true} {
		buf := codeBuffer()
		eng, rec := setupEngine(t, buf)
		eng.OnAnnotationsChanged([]domain.Annotation{
			{Row: 2, Column: 2, Type: "error", Text: "bad"},
		})
		if locationMode {
			eng.InvokeTrigger("ctrl-alt-r")
		}
		rec.reset()

		moveTo(eng, 2, 0)
		if len(rec.calls) == 0 || rec.calls[0] != "earcon alert" {
			t.Fatalf("locationMode=%t: alert earcon must lead, got %v", locationMode, rec.calls)
		}
	}
}

func TestRowChangeLocationMode(t *testing.T) {
	buf := codeBuffer()
	buf.cursor = domain.Cursor{Row: 2}
	eng, rec := setupEngine(t, buf)
	eng.InvokeTrigger("ctrl-alt-r")
	rec.reset()

	// Character under the cursor, its token, then the full row queued
	// behind them.
	moveTo(eng, 0, 1)
	assertCalls(t, rec,
		`speak[flush] "u"`,
		`speak[queue] "func"`,
		`speak[queue] "func"`,
		`speak[queue] "main"`,
	)
}

func TestRowLocationToggleRoundTrip(t *testing.T) {
	run := func(toggles int) []string {
		eng, rec := setupEngine(t, codeBuffer())
		for i := 0; i < toggles; i++ {
			eng.InvokeTrigger("ctrl-alt-r")
		}
		moveTo(eng, 2, 4)
		moveTo(eng, 0, 0)
		return rec.calls
	}

	before := run(0)
	after := run(2)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("double toggle changed behavior:\nbefore %v\nafter  %v", before, after)
	}
}
