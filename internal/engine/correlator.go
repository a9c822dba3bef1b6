package engine

import "github.com/aymendh/edvox/internal/domain"

// OnTextChanged handles a buffer mutation. The affected text is spoken
// immediately — removed text in the deletion styling — and the
// suppression latch is armed, because editors fire a cursor-moved event
// right after a programmatic edit and announcing that too would say
// everything twice.
func (e *Engine) OnTextChanged(action domain.TextAction, text string) {
	var acts []domain.Action
	if text != "" {
		switch action {
		case domain.TextRemove:
			acts = []domain.Action{domain.Speak(text, domain.Flush, domain.DeletionProfile())}
		case domain.TextInsert:
			acts = []domain.Action{domain.Speak(text, domain.Flush, domain.DefaultProfile())}
		}
	}

	e.suppressNext = true
	e.emit(acts)
}
