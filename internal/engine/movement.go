package engine

import (
	"strings"

	"github.com/aymendh/edvox/internal/domain"
)

// classifyMovement decides the utterances for one cursor transition. An
// armed edit suppression consumes the event silently — the edit itself
// was already announced.
func (e *Engine) classifyMovement(prev, cur domain.Cursor) []domain.Action {
	if e.suppressNext {
		e.suppressNext = false
		e.log.Debug("engine: cursor event suppressed after edit")
		return nil
	}

	if cur.Row != prev.Row {
		return e.rowChangeActions(cur)
	}
	return e.columnChangeActions(prev, cur)
}

// rowChangeActions handles a move onto a different row. An annotated
// destination always cues the alert earcon first; the earcon is a
// playback alongside the row speech, never a replacement for it.
func (e *Engine) rowChangeActions(cur domain.Cursor) []domain.Action {
	var acts []domain.Action
	if len(e.annotations[cur.Row]) > 0 {
		acts = append(acts, domain.PlayEarcon(domain.EarconAlert))
	}

	if !e.speakRowLocation {
		return append(acts, e.lineActions(cur.Row, domain.Flush)...)
	}

	// Location mode: character under the cursor, then its token, then
	// the whole row, all strung onto one queue behind the flush.
	line := e.buf.LineText(cur.Row)
	if ch := charAt(line, cur.Column); ch != "" {
		acts = append(acts, domain.Speak(ch, domain.Flush, domain.DefaultProfile()))
	} else {
		acts = append(acts, domain.StopSpeech())
	}
	if tok, ok := e.tokenAt(cur); ok {
		acts = append(acts, speakToken(tok, domain.Queue))
	}
	return append(acts, e.lineActions(cur.Row, domain.Queue)...)
}

// columnChangeActions handles a move within the same row.
func (e *Engine) columnChangeActions(prev, cur domain.Cursor) []domain.Action {
	line := e.buf.LineText(cur.Row)
	delta := cur.Column - prev.Column
	if delta == 0 {
		return nil
	}

	if e.speakDisplacement {
		text := displacementText(line, prev.Column, cur.Column)
		if text == "" {
			return nil
		}
		return []domain.Action{domain.Speak(text, domain.Flush, domain.DefaultProfile())}
	}

	// Single-step navigation always speaks just the landed-on
	// character, even when it starts a word.
	if delta == 1 || delta == -1 {
		return e.charActions(line, cur.Column)
	}

	// A jump to the start or end of the line reads the whole line.
	if cur.Column == 0 || cur.Column == len(line) {
		return e.lineActions(cur.Row, domain.Flush)
	}

	if wordStart(line, cur.Column) {
		if tok, ok := e.tokenAt(cur); ok {
			return []domain.Action{domain.StopSpeech(), speakToken(tok, domain.Queue)}
		}
	}

	return e.charActions(line, cur.Column)
}

// charActions speaks the single character under the cursor in flush mode.
func (e *Engine) charActions(line string, col int) []domain.Action {
	ch := charAt(line, col)
	if ch == "" {
		return nil
	}
	return []domain.Action{domain.Speak(ch, domain.Flush, domain.DefaultProfile())}
}

// displacementText returns the text crossed between two columns on one
// line, with spaces expanded to the word "space" so silent whitespace is
// perceptible. A one-column-forward move speaks the landed-on character
// inclusively rather than the empty point substring.
func displacementText(line string, prevCol, curCol int) string {
	var sub string
	if curCol-prevCol == 1 {
		sub = charAt(line, curCol)
	} else {
		lo, hi := prevCol, curCol
		if lo > hi {
			lo, hi = hi, lo
		}
		lo++
		if lo < 0 {
			lo = 0
		}
		if hi > len(line) {
			hi = len(line)
		}
		if lo < hi {
			sub = line[lo:hi]
		}
	}
	if sub == "" {
		return ""
	}

	expanded := strings.ReplaceAll(sub, " ", " space ")
	return strings.Join(strings.Fields(expanded), " ")
}

// wordStart reports whether the column sits on the first character of a
// word: the preceding character (a synthetic leading space at column 0)
// is a non-word character and the column itself starts a word-character
// run. Word characters are alphanumerics and underscore.
func wordStart(line string, col int) bool {
	if col < 0 || col >= len(line) || !isWordByte(line[col]) {
		return false
	}
	return col == 0 || !isWordByte(line[col-1])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
