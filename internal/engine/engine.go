// Package engine implements the speech-decision core: for every editor
// event it decides whether to speak, what to speak, at what interruption
// mode, and with what vocal styling, then hands the resulting utterances
// to the voice service in order.
package engine

import (
	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// Engine owns the durable announcement state of one editing session: the
// last known cursor, the annotation table, the tracked modal state, the
// two user toggles, and the edit-suppression latch. It is driven from a
// single goroutine by the host's event loop.
type Engine struct {
	buf   domain.Buffer
	voice domain.Voice
	log   *logger.Logger

	lastCursor  domain.Cursor
	annotations map[int]map[int]domain.Annotation
	mode        domain.Mode
	modeRaw     string

	speakRowLocation  bool
	speakDisplacement bool

	// suppressNext is armed by a programmatic edit and consumed by the
	// very next cursor event, so an edit never double-announces.
	suppressNext bool

	commands  []Command
	byTrigger map[string]int
	byName    map[string]int
}

// New creates an engine bound to a buffer view and a voice service.
func New(buf domain.Buffer, voice domain.Voice, log *logger.Logger) *Engine {
	e := &Engine{
		buf:         buf,
		voice:       voice,
		log:         log,
		lastCursor:  buf.Cursor(),
		annotations: make(map[int]map[int]domain.Annotation),
	}
	e.indexCommands()
	return e
}

// emit issues actions to the voice service in the order they were
// decided. Flush-then-queue sequences rely on this order surviving.
func (e *Engine) emit(actions []domain.Action) {
	for _, a := range actions {
		switch a.Kind {
		case domain.ActionSpeak:
			e.log.Debug("engine: speak (%s): %q", a.Mode, a.Text)
			e.voice.Speak(a.Text, a.Mode, a.Profile)
		case domain.ActionStop:
			e.voice.Stop()
		case domain.ActionEarcon:
			e.log.Debug("engine: earcon %s", a.Earcon)
			e.voice.PlayEarcon(a.Earcon)
		case domain.ActionKeyEcho:
			e.voice.SetKeyEcho(a.Enabled)
		}
	}
}

// OnCursorChanged handles a cursor-changed event from the editor.
func (e *Engine) OnCursorChanged(cur domain.Cursor) {
	acts := e.classifyMovement(e.lastCursor, cur)
	e.lastCursor = cur
	e.emit(acts)
}

// RowLocationEnabled reports the location-on-row-change toggle.
func (e *Engine) RowLocationEnabled() bool { return e.speakRowLocation }

// DisplacementEnabled reports the displacement-on-column-change toggle.
func (e *Engine) DisplacementEnabled() bool { return e.speakDisplacement }

// Mode returns the tracked modal state.
func (e *Engine) Mode() domain.Mode { return e.mode }
