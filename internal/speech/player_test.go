package speech

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/aymendh/edvox/internal/domain"
)

// buildWAV assembles a minimal RIFF container around the given chunks.
func buildWAV(chunks ...[]byte) []byte {
	body := bytes.Join(chunks, nil)
	out := make([]byte, 0, 12+len(body))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+len(body)))
	out = append(out, "WAVE"...)
	return append(out, body...)
}

func chunk(id string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, id...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...)
}

func TestExtractPCM(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}
	wav := buildWAV(
		chunk("fmt ", make([]byte, 16)),
		chunk("data", pcm),
	)
	// Pad so the container passes the minimum length check.
	wav = append(wav, make([]byte, 44)...)

	got, err := extractPCM(wav)
	if err != nil {
		t.Fatalf("extractPCM: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Fatalf("pcm = %v, want %v", got, pcm)
	}
}

func TestExtractPCMSkipsOddChunks(t *testing.T) {
	pcm := []byte{9, 8, 7, 6}
	wav := buildWAV(
		chunk("LIST", []byte{1, 2, 3}), // odd size, word-aligned on disk
		[]byte{0},                      // alignment pad
		chunk("data", pcm),
	)
	wav = append(wav, make([]byte, 44)...)

	got, err := extractPCM(wav)
	if err != nil {
		t.Fatalf("extractPCM: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Fatalf("pcm = %v, want %v", got, pcm)
	}
}

func TestExtractPCMRejectsGarbage(t *testing.T) {
	if _, err := extractPCM([]byte("short")); err == nil {
		t.Fatal("short input should fail")
	}

	bad := make([]byte, 64)
	copy(bad, "JUNK")
	if _, err := extractPCM(bad); err == nil {
		t.Fatal("non-RIFF input should fail")
	}

	noData := buildWAV(chunk("fmt ", make([]byte, 16)))
	noData = append(noData, make([]byte, 44)...)
	if _, err := extractPCM(noData); err == nil {
		t.Fatal("missing data chunk should fail")
	}
}

func TestRenderEarcon(t *testing.T) {
	alert := renderEarcon(domain.EarconAlert)
	modal := renderEarcon(domain.EarconModalSwitch)

	if len(alert) == 0 || len(modal) == 0 {
		t.Fatal("earcons must render PCM")
	}
	if len(alert)%2 != 0 || len(modal)%2 != 0 {
		t.Fatal("PCM must be whole 16-bit samples")
	}
	if len(alert) <= len(modal) {
		t.Fatalf("alert (%d bytes) should outlast the modal blip (%d bytes)", len(alert), len(modal))
	}
}
