package engine

import "github.com/aymendh/edvox/internal/domain"

// OnModalStatusChanged handles the editor reporting its modal state. Only
// evaluated while modal editing is active; repeated identical reports are
// idempotent. Insert enables literal key echo, command disables it, and
// states outside the known set are tracked without an announcement.
func (e *Engine) OnModalStatusChanged() {
	if !e.buf.ModalActive() {
		return
	}

	raw := e.buf.ModalState()
	next := domain.ParseMode(raw)
	if next == e.mode && raw == e.modeRaw {
		return
	}

	var acts []domain.Action
	switch next {
	case domain.ModeInsert:
		acts = []domain.Action{domain.PlayEarcon(domain.EarconModalSwitch), domain.KeyEcho(true)}
	case domain.ModeCommand:
		acts = []domain.Action{domain.PlayEarcon(domain.EarconModalSwitch), domain.KeyEcho(false)}
	}

	e.log.Debug("engine: mode %s -> %s (%q)", e.mode, next, raw)
	e.mode = next
	e.modeRaw = raw
	e.emit(acts)
}

// modeAnnouncement speaks the editor's instantaneous modal state — not
// the tracked one — or nothing when modal editing is off or the state is
// unrecognized.
func (e *Engine) modeAnnouncement() []domain.Action {
	if !e.buf.ModalActive() {
		return nil
	}
	switch domain.ParseMode(e.buf.ModalState()) {
	case domain.ModeInsert:
		return []domain.Action{domain.Speak("Insert mode", domain.Flush, domain.DefaultProfile())}
	case domain.ModeCommand:
		return []domain.Action{domain.Speak("Command mode", domain.Flush, domain.DefaultProfile())}
	default:
		return nil
	}
}
