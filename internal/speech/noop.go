package speech

import (
	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// Compile-time interface check.
var _ domain.Voice = (*NoOp)(nil)

// NoOp is a voice that does nothing. Used when the speech service never
// became available — the engine keeps running, silently.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op voice.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Speak does nothing.
func (n *NoOp) Speak(text string, mode domain.SpeakMode, _ domain.Profile) {
	n.log.Debug("voice no-op: would speak (%s) %q", mode, text)
}

// Stop does nothing.
func (n *NoOp) Stop() {}

// PlayEarcon does nothing.
func (n *NoOp) PlayEarcon(e domain.Earcon) {
	n.log.Debug("voice no-op: would play earcon %s", e)
}

// SetKeyEcho does nothing.
func (n *NoOp) SetKeyEcho(bool) {}

// EchoKey does nothing.
func (n *NoOp) EchoKey(string) {}
