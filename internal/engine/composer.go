package engine

import "github.com/aymendh/edvox/internal/domain"

// speakToken builds the styled speech action for one token.
func speakToken(tok domain.Token, mode domain.SpeakMode) domain.Action {
	return domain.Speak(tok.Value, mode, domain.ProfileForType(tok.Type))
}

// lineActions composes the utterances for a full row: the first token at
// the caller's mode, every remaining syntax token queued after it. Plain
// text tokens between syntax tokens are separators, not content — reading
// whitespace runs aloud helps nobody.
func (e *Engine) lineActions(row int, mode domain.SpeakMode) []domain.Action {
	toks := e.buf.TokensForRow(row)
	if len(toks) == 0 {
		return nil
	}

	acts := []domain.Action{speakToken(toks[0], mode)}
	for _, tok := range toks[1:] {
		if domain.ParseCategory(tok.Type) == domain.CategoryPlain {
			continue
		}
		acts = append(acts, speakToken(tok, domain.Queue))
	}
	return acts
}

// tokenAt returns the token covering the cursor's column, walking the
// row's tokens by accumulated width.
func (e *Engine) tokenAt(c domain.Cursor) (domain.Token, bool) {
	col := 0
	for _, tok := range e.buf.TokensForRow(c.Row) {
		col += len(tok.Value)
		if c.Column < col {
			return tok, true
		}
	}
	return domain.Token{}, false
}

// charAt returns the single character under the given column, or "" when
// the column is past the end of the line.
func charAt(line string, col int) string {
	if col < 0 || col >= len(line) {
		return ""
	}
	return line[col : col+1]
}
