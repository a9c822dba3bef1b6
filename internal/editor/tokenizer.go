package editor

import "github.com/aymendh/edvox/internal/domain"

// Keyword tables for the fixture highlighter. Loosely Go-shaped; the
// engine only cares about the dotted category prefixes.
var controlKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "range": true, "return": true,
	"break": true, "continue": true, "switch": true, "case": true,
	"default": true, "go": true, "defer": true, "select": true,
	"fallthrough": true, "goto": true,
}

var storageKeywords = map[string]bool{
	"func": true, "var": true, "const": true, "type": true,
	"struct": true, "interface": true, "map": true, "chan": true,
	"package": true, "import": true,
}

var languageConstants = map[string]bool{
	"true": true, "false": true, "nil": true, "iota": true,
}

// Tokenize splits one line into categorized tokens. Whitespace and
// operator runs come out as plain "text" tokens; the engine treats those
// as inaudible separators. Token values concatenate back to the exact
// input line.
func Tokenize(line string) []domain.Token {
	var toks []domain.Token
	i := 0
	for i < len(line) {
		start := i
		switch b := line[i]; {
		case isWord(b):
			for i < len(line) && isWord(line[i]) {
				i++
			}
			toks = append(toks, wordToken(line, start, i))
		case b == '"' || b == '\'' || b == '`':
			quote := b
			i++
			for i < len(line) && line[i] != quote {
				if quote != '`' && line[i] == '\\' && i+1 < len(line) {
					i++
				}
				i++
			}
			if i < len(line) {
				i++ // closing quote
			}
			toks = append(toks, domain.Token{Type: "constant.string", Value: line[start:i]})
		default:
			for i < len(line) && !isWord(line[i]) && line[i] != '"' && line[i] != '\'' && line[i] != '`' {
				i++
			}
			toks = append(toks, domain.Token{Type: "text", Value: line[start:i]})
		}
	}
	return toks
}

// wordToken categorizes one identifier-shaped token.
func wordToken(line string, start, end int) domain.Token {
	word := line[start:end]

	switch {
	case controlKeywords[word]:
		return domain.Token{Type: "keyword.control", Value: word}
	case storageKeywords[word]:
		return domain.Token{Type: "storage.type", Value: word}
	case languageConstants[word]:
		return domain.Token{Type: "constant.language", Value: word}
	case word[0] >= '0' && word[0] <= '9':
		return domain.Token{Type: "constant.numeric", Value: word}
	case end < len(line) && line[end] == '(':
		return domain.Token{Type: "entity.name.function", Value: word}
	default:
		return domain.Token{Type: "variable", Value: word}
	}
}
