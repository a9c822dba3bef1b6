package engine

import "github.com/aymendh/edvox/internal/domain"

// OnSearchResultChanged handles the search surface reporting a new match
// state. A hit reads the matched text over whatever is playing; a miss
// cues the alert earcon.
func (e *Engine) OnSearchResultChanged(text string, found bool) {
	if !found {
		e.emit([]domain.Action{
			domain.PlayEarcon(domain.EarconAlert),
			domain.Speak("No matches", domain.Flush, domain.DefaultProfile()),
		})
		return
	}
	if text == "" {
		return
	}
	e.emit([]domain.Action{domain.Speak(text, domain.Flush, domain.DefaultProfile())})
}
