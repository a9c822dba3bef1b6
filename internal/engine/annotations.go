package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymendh/edvox/internal/domain"
)

// isNew reports whether no tracked annotation occupies the location yet.
func (e *Engine) isNew(a domain.Annotation) bool {
	_, exists := e.annotations[a.Row][a.Column]
	return !exists
}

// OnAnnotationsChanged diffs the incoming list against the current table,
// cues the alert earcon when anything new appeared, then replaces the
// table wholesale. Duplicate (row, column) keys in the list silently
// overwrite — last entry wins.
func (e *Engine) OnAnnotationsChanged(list []domain.Annotation) {
	anyNew := false
	for _, a := range list {
		if e.isNew(a) {
			anyNew = true
			break
		}
	}

	table := make(map[int]map[int]domain.Annotation, len(list))
	for _, a := range list {
		row, ok := table[a.Row]
		if !ok {
			row = make(map[int]domain.Annotation)
			table[a.Row] = row
		}
		row[a.Column] = a
	}
	e.annotations = table

	if anyNew {
		e.log.Debug("engine: new annotations (%d total)", len(list))
		e.emit([]domain.Action{domain.PlayEarcon(domain.EarconAlert)})
	}
}

// RowHasAnnotation reports whether the row carries any tracked annotation.
func (e *Engine) RowHasAnnotation(row int) bool {
	return len(e.annotations[row]) > 0
}

// AnnotationAt returns the tracked annotation at a location, if any.
func (e *Engine) AnnotationAt(row, col int) (domain.Annotation, bool) {
	a, ok := e.annotations[row][col]
	return a, ok
}

// annotationText formats one annotation for speech, one-indexed for
// human ears. Some speech engines mangle literal semicolons, so they are
// rephrased as the word.
func annotationText(a domain.Annotation) string {
	msg := fmt.Sprintf("%s %s on row %d column %d", a.Type, a.Text, a.Row+1, a.Column+1)
	msg = strings.ReplaceAll(msg, ";", " semicolon ")
	return strings.Join(strings.Fields(msg), " ")
}

// annotationActions queues the spoken form of one annotation.
func annotationActions(a domain.Annotation) []domain.Action {
	return []domain.Action{domain.Speak(annotationText(a), domain.Queue, domain.DefaultProfile())}
}

// rowAnnotationActions speaks every annotation on a row in column order.
// No-op when the row is clean.
func (e *Engine) rowAnnotationActions(row int) []domain.Action {
	cols := e.annotations[row]
	if len(cols) == 0 {
		return nil
	}

	keys := make([]int, 0, len(cols))
	for c := range cols {
		keys = append(keys, c)
	}
	sort.Ints(keys)

	var acts []domain.Action
	for _, c := range keys {
		acts = append(acts, annotationActions(cols[c])...)
	}
	return acts
}

// allAnnotationActions speaks every tracked annotation, rows ascending,
// columns ascending within each row.
func (e *Engine) allAnnotationActions() []domain.Action {
	rows := make([]int, 0, len(e.annotations))
	for r := range e.annotations {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	var acts []domain.Action
	for _, r := range rows {
		acts = append(acts, e.rowAnnotationActions(r)...)
	}
	return acts
}
