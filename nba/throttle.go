package nba

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle is a token bucket pacing outbound requests. The upstream stats
// endpoint throttles aggressively, so one bucket is shared across every
// resource a client fetches.
type Throttle struct {
	rate  float64
	burst float64
	clock clockwork.Clock

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewThrottle creates a Throttle allowing ratePerSecond sustained requests
// with bursts up to burst. A nil clock uses the wall clock.
func NewThrottle(ratePerSecond float64, burst int, clock clockwork.Clock) *Throttle {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttle{
		rate:       ratePerSecond,
		burst:      float64(burst),
		clock:      clock,
		tokens:     float64(burst),
		lastRefill: clock.Now(),
	}
}

// Allow reports whether a request may proceed now, consuming a token when
// it may.
func (t *Throttle) Allow() bool {
	ok, _ := t.take()
	return ok
}

// Wait blocks until a token is available or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	for {
		ok, wait := t.take()
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.clock.After(wait):
		}
	}
}

// take refills the bucket from elapsed time and tries to consume one token.
// When the bucket is empty it returns how long until the next token.
func (t *Throttle) take() (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	t.tokens = math.Min(t.burst, t.tokens+elapsed*t.rate)
	t.lastRefill = now

	if t.tokens >= 1 {
		t.tokens--
		return true, 0
	}
	wait := time.Duration((1 - t.tokens) / t.rate * float64(time.Second))
	return false, wait
}
