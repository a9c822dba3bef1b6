package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrVoiceUnavailable = errors.New("voice service unavailable")
	ErrNoAudioDevice    = errors.New("no audio device")
	ErrNotImplemented   = errors.New("not implemented")
)
