package speech

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/aymendh/edvox/internal/domain"
)

// renderEarcon synthesizes the PCM for an earcon at the player format.
// Alert is a falling two-tone figure; the modal switch is a single short
// blip. Both carry a short attack/release envelope so they don't click.
func renderEarcon(e domain.Earcon) []byte {
	switch e {
	case domain.EarconModalSwitch:
		return tone(1320, 70*time.Millisecond, 0.4)
	default:
		out := tone(880, 90*time.Millisecond, 0.5)
		return append(out, tone(587, 110*time.Millisecond, 0.5)...)
	}
}

// tone renders a sine wave as 16-bit little-endian mono PCM.
func tone(freq float64, dur time.Duration, gain float64) []byte {
	samples := int(float64(SampleRate) * dur.Seconds())
	ramp := SampleRate / 200 // 5 ms attack and release
	out := make([]byte, samples*2)

	for i := 0; i < samples; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(SampleRate))

		env := 1.0
		if i < ramp {
			env = float64(i) / float64(ramp)
		} else if rest := samples - i; rest < ramp {
			env = float64(rest) / float64(ramp)
		}

		s := int16(v * env * gain * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
