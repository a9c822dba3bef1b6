package editor

import (
	"strings"

	"github.com/aymendh/edvox/internal/domain"
)

// Lint runs the demo diagnostics pass over the buffer and returns the
// annotation list the engine should track. Checks are deliberately
// shallow — a real host would wire its own diagnostics producer here.
func Lint(lines []string) []domain.Annotation {
	var anns []domain.Annotation
	for row, line := range lines {
		if trimmed := strings.TrimRight(line, " \t"); len(trimmed) < len(line) {
			anns = append(anns, domain.Annotation{
				Row:    row,
				Column: len(trimmed),
				Type:   "warning",
				Text:   "trailing whitespace",
			})
		}
		if col := strings.Index(line, "TODO"); col >= 0 {
			anns = append(anns, domain.Annotation{
				Row:    row,
				Column: col,
				Type:   "info",
				Text:   "TODO marker",
			})
		}
	}
	return anns
}
