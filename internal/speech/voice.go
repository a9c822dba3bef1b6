package speech

import (
	"context"
	"sync"
	"time"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// SpeakerOption configures the Speaker.
type SpeakerOption func(*Speaker)

// WithCacheDir sets the filesystem directory used for persistent audio
// caching. If empty, the disk layer is disabled (pure in-memory).
func WithCacheDir(dir string) SpeakerOption {
	return func(s *Speaker) {
		s.cacheDir = dir
	}
}

// WithDiskWrite controls whether new cache entries are written to disk.
// Even when false, existing on-disk entries are still read.
func WithDiskWrite(enabled bool) SpeakerOption {
	return func(s *Speaker) {
		s.diskWrite = enabled
	}
}

// request is one queued utterance waiting to be spoken.
type request struct {
	text     string
	profile  domain.Profile
	queuedAt time.Time
}

// Speaker is the voice service behind the domain.Voice port. It
// serializes all speech through a single pipeline — queue -> synthesize
// -> play — preserving submission order. Flush cancels the current
// utterance and pending queue before speaking; Queue appends. Earcons
// play on independent audio players and are never cancelled by speech.
type Speaker struct {
	synth  domain.Synthesizer
	player *Player
	log    *logger.Logger
	cache  *AudioCache

	mu          sync.Mutex
	queue       []request
	notify      chan struct{}
	speaking    bool
	interrupted bool // set by Flush/Stop, checked before playback
	keyEcho     bool
	cacheDir    string
	diskWrite   bool

	earcons map[domain.Earcon][]byte
}

// Compile-time interface check.
var _ domain.Voice = (*Speaker)(nil)

// NewSpeaker creates a voice dispatcher with the given synthesizer and
// player.
func NewSpeaker(synth domain.Synthesizer, player *Player, log *logger.Logger, opts ...SpeakerOption) *Speaker {
	s := &Speaker{
		synth:     synth,
		player:    player,
		log:       log,
		notify:    make(chan struct{}, 32),
		diskWrite: true,
		earcons: map[domain.Earcon][]byte{
			domain.EarconAlert:       renderEarcon(domain.EarconAlert),
			domain.EarconModalSwitch: renderEarcon(domain.EarconModalSwitch),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = NewAudioCache(synth.Voice(), s.cacheDir, s.diskWrite, log)
	return s
}

// Start begins the speech processing goroutine. Non-blocking.
func (s *Speaker) Start(ctx context.Context) {
	go s.processLoop(ctx)
	s.log.Info("speaker started (voice=%s)", s.synth.Voice())
}

// Speak queues text at the given interruption mode. Non-blocking.
func (s *Speaker) Speak(text string, mode domain.SpeakMode, profile domain.Profile) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if mode == domain.Flush {
		s.queue = s.queue[:0]
		s.interrupted = true
	}
	s.queue = append(s.queue, request{text: text, profile: profile, queuedAt: time.Now()})
	s.mu.Unlock()

	if mode == domain.Flush {
		s.player.Stop()
	}

	s.log.Debug("speaker: queued (%s): %q", mode, text)

	// Signal the processing goroutine.
	select {
	case s.notify <- struct{}{}:
	default: // already signaled
	}
}

// Stop cancels the current utterance and clears the pending queue.
func (s *Speaker) Stop() {
	s.mu.Lock()
	s.queue = s.queue[:0]
	s.interrupted = true
	s.mu.Unlock()

	s.player.Stop()
	s.log.Debug("speaker: stopped — queue cleared")
}

// PlayEarcon plays a cue immediately on its own audio player. The cue
// overlaps in-flight speech and survives a flush.
func (s *Speaker) PlayEarcon(e domain.Earcon) {
	pcm, ok := s.earcons[e]
	if !ok {
		return
	}
	s.log.Debug("speaker: earcon %s", e)
	s.player.PlayCue(pcm)
}

// SetKeyEcho enables or disables literal keystroke echo.
func (s *Speaker) SetKeyEcho(enabled bool) {
	s.mu.Lock()
	s.keyEcho = enabled
	s.mu.Unlock()
	s.log.Debug("speaker: key echo %t", enabled)
}

// EchoKey speaks a single keystroke when key echo is enabled. Each echo
// replaces the previous one so fast typing doesn't build a backlog.
func (s *Speaker) EchoKey(key string) {
	s.mu.Lock()
	enabled := s.keyEcho
	s.mu.Unlock()
	if !enabled {
		return
	}
	if key == " " {
		key = "space"
	}
	s.Speak(key, domain.Flush, domain.DefaultProfile())
}

// IsSpeaking reports whether the speaker is synthesizing or playing.
func (s *Speaker) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// processLoop waits for queued items and processes them in order.
func (s *Speaker) processLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.log.Info("speaker stopped")
			return
		case <-s.notify:
			s.drain(ctx)
		}
	}
}

// drain processes all queued items in submission order.
func (s *Speaker) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.mu.Lock()
		s.interrupted = false
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		item := s.queue[0]
		s.queue = s.queue[1:]
		s.speaking = true
		s.mu.Unlock()

		s.process(ctx, item)

		s.mu.Lock()
		s.speaking = false
		s.mu.Unlock()
	}
}

// process synthesizes and plays a single utterance, via the cache.
func (s *Speaker) process(ctx context.Context, req request) {
	waited := time.Since(req.queuedAt).Round(time.Millisecond)
	s.log.Debug("speaker: speaking (waited=%s): %q", waited, req.text)

	audio, ok := s.cache.Get(req.text, req.profile)
	if !ok {
		var err error
		audio, err = s.synth.Synthesize(ctx, req.text, req.profile)
		if err != nil {
			s.log.Error("speaker: synthesis failed: %v", err)
			return
		}
		s.cache.Put(req.text, req.profile, audio)
	}

	// A flush may have arrived while synthesizing; this utterance is
	// stale if so.
	s.mu.Lock()
	stale := s.interrupted
	s.mu.Unlock()
	if stale {
		s.log.Debug("speaker: dropping stale utterance: %q", req.text)
		return
	}

	if err := s.player.Play(audio); err != nil {
		s.log.Error("speaker: playback failed: %v", err)
	}
}
