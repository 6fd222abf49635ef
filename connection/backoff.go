package connection

import (
	"math"
	"math/rand"
	"time"
)

// ReconnectPolicy defines the delay before each reconnect attempt
type ReconnectPolicy interface {
	// returns the delay for the given attempt, starting at 0 after the last open connection
	//
	// returns false if no further attempt should be made
	NextDelay(attempt int) (time.Duration, bool)
}

// FixedDelay waits the same duration before every attempt
type FixedDelay struct {
	Delay time.Duration

	// 0 means unlimited
	MaxAttempts int
}

var _ ReconnectPolicy = (*FixedDelay)(nil)

func (f *FixedDelay) NextDelay(attempt int) (time.Duration, bool) {
	if f.MaxAttempts > 0 && attempt >= f.MaxAttempts {
		return 0, false
	}

	return f.Delay, true
}

// ExponentialBackoff doubles the delay with every attempt up to Max
//
// The resulting delay is randomized by +/- Jitter (a fraction of the delay)
// so that many clients do not reconnect at the same time after a server restart.
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration

	// 0.2 spreads the delay by 20% in both directions
	Jitter float64

	// 0 means unlimited
	MaxAttempts int
}

var _ ReconnectPolicy = (*ExponentialBackoff)(nil)

func (e *ExponentialBackoff) NextDelay(attempt int) (time.Duration, bool) {
	if e.MaxAttempts > 0 && attempt >= e.MaxAttempts {
		return 0, false
	}

	delay := e.Base
	for i := 0; i < attempt; i++ {
		if delay <= 0 || delay > math.MaxInt64/2 || (e.Max > 0 && delay >= e.Max) {
			break
		}
		delay *= 2
	}
	if e.Max > 0 && delay > e.Max {
		delay = e.Max
	}

	if spread := int64(float64(delay) * e.Jitter); spread > 0 {
		// #nosec G404
		delay += time.Duration(rand.Int63n(2*spread+1) - spread)
	}

	if delay < 0 {
		delay = 0
	}
	if e.Max > 0 && delay > e.Max {
		delay = e.Max
	}

	return delay, true
}
