package speech

import (
	"bytes"
	"io"
	"testing"

	"github.com/aymendh/edvox/internal/domain"
	"github.com/aymendh/edvox/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.LevelOff, io.Discard)
}

func TestCacheMemoryRoundTrip(t *testing.T) {
	c := NewAudioCache("v", "", false, testLogger())
	p := domain.DefaultProfile()

	if _, ok := c.Get("hello", p); ok {
		t.Fatal("empty cache should miss")
	}

	c.Put("hello", p, []byte("audio"))
	data, ok := c.Get("hello", p)
	if !ok || !bytes.Equal(data, []byte("audio")) {
		t.Fatalf("Get = %q, %v", data, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("Stats = %d hits, %d misses", hits, misses)
	}
}

func TestCacheKeyedByProfile(t *testing.T) {
	c := NewAudioCache("v", "", false, testLogger())

	c.Put("word", domain.DefaultProfile(), []byte("plain"))
	c.Put("word", domain.DeletionProfile(), []byte("low"))

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2 distinct entries", c.Len())
	}
	data, ok := c.Get("word", domain.DeletionProfile())
	if !ok || !bytes.Equal(data, []byte("low")) {
		t.Fatalf("deletion-styled entry = %q, %v", data, ok)
	}
}

func TestCacheDiskLayer(t *testing.T) {
	dir := t.TempDir()
	p := domain.DefaultProfile()

	warm := NewAudioCache("v", dir, true, testLogger())
	warm.Put("persisted", p, []byte("on disk"))

	// A fresh cache with the same voice and dir reads the previous run's
	// entries even with disk writes off.
	cold := NewAudioCache("v", dir, false, testLogger())
	data, ok := cold.Get("persisted", p)
	if !ok || !bytes.Equal(data, []byte("on disk")) {
		t.Fatalf("disk read = %q, %v", data, ok)
	}
	if cold.Len() != 1 {
		t.Fatalf("disk hit not promoted to memory, Len = %d", cold.Len())
	}
}

func TestCacheKeyedByVoice(t *testing.T) {
	dir := t.TempDir()
	p := domain.DefaultProfile()

	a := NewAudioCache("voice-a", dir, true, testLogger())
	a.Put("shared", p, []byte("a"))

	b := NewAudioCache("voice-b", dir, true, testLogger())
	if _, ok := b.Get("shared", p); ok {
		t.Fatal("different voice must not share cache entries")
	}
}
