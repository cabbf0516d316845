package isolate

import (
	"math/rand"
	"time"
)

// BackoffPolicy bounds the retry loop around the archiving tool. The delay
// is a uniformly random duration in [MinDelay, MaxDelay] rather than an
// exponential ramp: the jitter desynchronizes concurrent clients hammering
// the same archive server after an outage.
type BackoffPolicy struct {
	// MaxAttempts is the total invocation budget, including the first try.
	MaxAttempts int
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// DefaultBackoff is the production policy: four attempts with 10 to 60
// second pauses between them.
func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts: 4,
		MinDelay:    10 * time.Second,
		MaxDelay:    60 * time.Second,
	}
}

// Delay draws the next pause from the jitter window.
func (p BackoffPolicy) Delay(rng *rand.Rand) time.Duration {
	window := p.MaxDelay - p.MinDelay
	if window <= 0 {
		return p.MinDelay
	}
	return p.MinDelay + time.Duration(rng.Int63n(int64(window)+1))
}
