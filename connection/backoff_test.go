package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedDelay(t *testing.T) {
	policy := &FixedDelay{Delay: 5 * time.Second}

	for _, attempt := range []int{0, 1, 10, 1000} {
		delay, ok := policy.NextDelay(attempt)
		assert.True(t, ok)
		assert.Equal(t, 5*time.Second, delay)
	}

	policy.MaxAttempts = 2
	_, ok := policy.NextDelay(1)
	assert.True(t, ok)
	_, ok = policy.NextDelay(2)
	assert.False(t, ok)
}

func TestExponentialBackoff(t *testing.T) {
	policy := &ExponentialBackoff{
		Base: 100 * time.Millisecond,
		Max:  time.Second,
	}

	tc := []struct {
		attempt int
		delay   time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second},
		{60, time.Second},
		{1 << 20, time.Second},
	}

	for _, c := range tc {
		delay, ok := policy.NextDelay(c.attempt)
		assert.True(t, ok)
		assert.Equal(t, c.delay, delay, "attempt %d", c.attempt)
	}

	policy.MaxAttempts = 3
	_, ok := policy.NextDelay(3)
	assert.False(t, ok)
}

func TestExponentialBackoffJitter(t *testing.T) {
	policy := &ExponentialBackoff{
		Base:   time.Second,
		Max:    10 * time.Second,
		Jitter: 0.2,
	}

	for i := 0; i < 200; i++ {
		delay, ok := policy.NextDelay(1)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, delay, 1600*time.Millisecond)
		assert.LessOrEqual(t, delay, 2400*time.Millisecond)

		delay, _ = policy.NextDelay(10)
		assert.GreaterOrEqual(t, delay, 8*time.Second)
		assert.LessOrEqual(t, delay, 10*time.Second)
	}
}
