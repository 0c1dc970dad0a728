package nba

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestThrottle_Allow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	th := NewThrottle(1, 2, clock)

	if !th.Allow() || !th.Allow() {
		t.Fatal("burst tokens were not available")
	}
	if th.Allow() {
		t.Fatal("third request allowed with an empty bucket")
	}

	clock.Advance(time.Second)
	if !th.Allow() {
		t.Fatal("refill did not restore a token")
	}
}

func TestThrottle_BurstCapped(t *testing.T) {
	clock := clockwork.NewFakeClock()
	th := NewThrottle(10, 2, clock)

	// A long idle period must not accumulate beyond the burst size.
	clock.Advance(time.Hour)
	allowed := 0
	for i := 0; i < 5; i++ {
		if th.Allow() {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("allowed %d requests after idle, want 2", allowed)
	}
}

func TestThrottle_WaitBlocksUntilRefill(t *testing.T) {
	clock := clockwork.NewFakeClock()
	th := NewThrottle(1, 1, clock)

	if !th.Allow() {
		t.Fatal("initial token missing")
	}

	done := make(chan error, 1)
	go func() {
		done <- th.Wait(context.Background())
	}()

	clock.BlockUntil(1)
	clock.Advance(time.Second)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after refill")
	}
}

func TestThrottle_WaitHonorsContext(t *testing.T) {
	clock := clockwork.NewFakeClock()
	th := NewThrottle(1, 1, clock)
	th.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- th.Wait(ctx)
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Wait error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not observe cancellation")
	}
}
