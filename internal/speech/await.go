package speech

import (
	"context"
	"fmt"
	"time"

	"github.com/aymendh/edvox/internal/domain"
)

// Await probes for a working voice service a bounded number of times on
// a fixed delay. The first success wins; exhausting the budget returns
// ErrVoiceUnavailable and the caller is expected to fall back to the
// no-op voice rather than fail.
func Await(ctx context.Context, attempts int, delay time.Duration, build func(context.Context) (*Speaker, error)) (*Speaker, error) {
	if attempts <= 0 {
		attempts = DefaultAwaitAttempts
	}
	if delay <= 0 {
		delay = DefaultAwaitDelay
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		s, err := build(ctx)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", domain.ErrVoiceUnavailable, attempts, lastErr)
}
