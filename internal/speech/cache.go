package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

// AudioCache is a thread-safe two-tier cache (in-memory + filesystem) for
// synthesized audio. Announcements repeat constantly — single characters,
// keywords, mode names — so avoiding a re-synthesis round trip matters.
// The key is sha256(voice + profile fingerprint + text): changing voice
// or styling misses cleanly.
//
// Disk behaviour is controlled by diskWrite: the on-disk cache is always
// consulted, but new entries are only persisted when writes are enabled,
// giving a warm start from previous runs either way.
type AudioCache struct {
	mu        sync.RWMutex
	entries   map[string][]byte // hash -> WAV bytes
	log       *logger.Logger
	voice     string
	cacheDir  string // filesystem cache directory (empty = no disk layer)
	diskWrite bool
	hits      int64
	misses    int64
}

// NewAudioCache creates an audio cache. An empty cacheDir disables the
// disk layer entirely.
func NewAudioCache(voice, cacheDir string, diskWrite bool, log *logger.Logger) *AudioCache {
	c := &AudioCache{
		entries:   make(map[string][]byte),
		log:       log,
		voice:     voice,
		cacheDir:  cacheDir,
		diskWrite: diskWrite,
	}

	if cacheDir != "" && diskWrite {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			log.Error("cache: failed to create cache dir %s: %v", cacheDir, err)
		}
	}

	return c
}

// Get returns cached audio for the styled text and true, or nil and false.
// It checks the in-memory map first, then falls back to the disk cache.
func (c *AudioCache) Get(text string, profile domain.Profile) ([]byte, bool) {
	key := c.hashKey(text, profile)

	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return data, true
	}

	if c.cacheDir != "" {
		if diskData, err := os.ReadFile(c.diskPath(key)); err == nil {
			// Promote to in-memory for faster subsequent hits.
			c.mu.Lock()
			c.entries[key] = diskData
			c.hits++
			c.mu.Unlock()
			return diskData, true
		}
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	return nil, false
}

// Put stores audio for the styled text. Always writes to memory; writes
// to disk only when diskWrite is enabled.
func (c *AudioCache) Put(text string, profile domain.Profile, audio []byte) {
	key := c.hashKey(text, profile)

	c.mu.Lock()
	c.entries[key] = audio
	c.mu.Unlock()

	if c.cacheDir != "" && c.diskWrite {
		path := c.diskPath(key)
		if err := os.WriteFile(path, audio, 0o644); err != nil {
			c.log.Error("cache: disk write failed for %s: %v", path, err)
		}
	}
}

// Len returns the number of in-memory cached entries.
func (c *AudioCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counts.
func (c *AudioCache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// hashKey folds voice, styling, and text into one cache key.
func (c *AudioCache) hashKey(text string, p domain.Profile) string {
	fingerprint := fmt.Sprintf("%s:%.2f:%.2f:%.2f:%.2f:%d:", c.voice, p.Rate, p.Pitch, p.Volume, p.RelativePitch, p.Punctuation)
	h := sha256.Sum256([]byte(fingerprint + text))
	return hex.EncodeToString(h[:])
}

func (c *AudioCache) diskPath(key string) string {
	return filepath.Join(c.cacheDir, key+".wav")
}
