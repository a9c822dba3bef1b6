package domain

// SpeakMode controls how an utterance meets whatever the voice service is
// already saying.
type SpeakMode int

const (
	// Flush cancels any in-progress utterance and speaks immediately.
	Flush SpeakMode = iota
	// Queue appends after current and pending utterances.
	Queue
)

// String returns a human-readable mode name.
func (m SpeakMode) String() string {
	if m == Queue {
		return "queue"
	}
	return "flush"
}

// Earcon names a short non-speech audio cue.
type Earcon int

const (
	// EarconAlert signals an error or a failed search.
	EarconAlert Earcon = iota
	// EarconModalSwitch signals a modal-editing transition.
	EarconModalSwitch
)

// String returns the earcon name.
func (e Earcon) String() string {
	if e == EarconModalSwitch {
		return "modal_switch"
	}
	return "alert"
}

// ActionKind tags the variants of Action.
type ActionKind int

const (
	ActionSpeak ActionKind = iota
	ActionStop
	ActionEarcon
	ActionKeyEcho
)

// Action is one outbound request to the voice service. Handlers return
// ordered action lists instead of calling the service directly, so the
// decision logic stays deterministic under test.
type Action struct {
	Kind    ActionKind
	Text    string    // ActionSpeak
	Mode    SpeakMode // ActionSpeak
	Profile Profile   // ActionSpeak
	Earcon  Earcon    // ActionEarcon
	Enabled bool      // ActionKeyEcho
}

// Speak builds a speech action.
func Speak(text string, mode SpeakMode, profile Profile) Action {
	return Action{Kind: ActionSpeak, Text: text, Mode: mode, Profile: profile}
}

// StopSpeech builds a stop action: cancel current and pending utterances
// without replacing them.
func StopSpeech() Action {
	return Action{Kind: ActionStop}
}

// PlayEarcon builds an earcon playback action.
func PlayEarcon(e Earcon) Action {
	return Action{Kind: ActionEarcon, Earcon: e}
}

// KeyEcho builds a key-echo toggle action.
func KeyEcho(enabled bool) Action {
	return Action{Kind: ActionKeyEcho, Enabled: enabled}
}
