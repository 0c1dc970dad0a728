package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/courtside/observe"
)

// LoaderFunc produces the value for a key on a cache miss.
type LoaderFunc func(ctx context.Context) (any, error)

// StoreConfig configures a Store.
type StoreConfig struct {
	// Clock is the time source used for expiry decisions.
	// Default: the wall clock.
	Clock clockwork.Clock

	// Metrics receives lookup and load outcomes. Default: noop.
	Metrics observe.Metrics
}

// Store is an in-memory key-value store with per-entry expiry policies and
// single-flight load coalescing.
//
// Contract:
// - Concurrency: safe for concurrent use; loaders run outside the store lock.
// - Ownership: the store owns every entry; stored values are treated as
//   immutable. Loaders must return freshly allocated values and callers must
//   not mutate what they receive back.
// - Single-flight: concurrent Load calls for the same missing key trigger
//   exactly one loader invocation; every waiter receives its result.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	epoch   uint64
	group   singleflight.Group
	clock   clockwork.Clock
	metrics observe.Metrics
}

type entry struct {
	value     any
	expiresAt time.Time // zero means the entry never expires
}

// expired reports whether the entry is logically absent at now.
// An entry set with TTL=T is absent from t >= T onward.
func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewStore creates a Store, applying defaults for unset config fields.
func NewStore(config StoreConfig) *Store {
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if config.Metrics == nil {
		config.Metrics = observe.NoopMetrics()
	}
	return &Store{
		entries: make(map[string]entry),
		clock:   config.Clock,
		metrics: config.Metrics,
	}
}

// Get retrieves a value. Returns (nil, false) on miss or expiry; an expired
// entry is evicted as a side effect.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(key)
}

func (s *Store) getLocked(key string) (any, bool) {
	ent, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if ent.expired(s.clock.Now()) {
		delete(s.entries, key)
		return nil, false
	}
	return ent.value, true
}

// Set stores a value under the given policy, overwriting any existing entry.
func (s *Store) Set(key string, value any, policy Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: policy.expiry(s.clock.Now())}
}

// Load returns the cached value for key, or runs loader to produce it.
//
// A valid entry returns immediately without blocking. On a miss, concurrent
// callers coalesce onto one loader invocation and all receive the same value
// or the same error. Loader failures cache nothing; the next call retries
// with a fresh load. A Clear issued while a load is in flight causes the
// load's result to be returned to its waiters but not installed.
func (s *Store) Load(ctx context.Context, key string, policy Policy, loader LoaderFunc) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if v, ok := s.getLocked(key); ok {
		s.mu.Unlock()
		s.metrics.RecordCacheLookup(ctx, key, true)
		return v, nil
	}
	s.mu.Unlock()
	s.metrics.RecordCacheLookup(ctx, key, false)

	v, err, _ := s.group.Do(key, func() (any, error) {
		// A completed flight may have installed the entry between the miss
		// check and attaching here.
		s.mu.Lock()
		if v, ok := s.getLocked(key); ok {
			s.mu.Unlock()
			return v, nil
		}
		epoch := s.epoch
		s.mu.Unlock()

		v, err := loader(ctx)
		s.metrics.RecordCacheLoad(ctx, key, err)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		// An epoch bump means the caller invalidated everything while this
		// load was in flight; the result is stale and must not be installed.
		if s.epoch == epoch {
			s.entries[key] = entry{value: v, expiresAt: policy.expiry(s.clock.Now())}
		}
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate removes a single entry. In-flight loads for the key are
// unaffected and still install their result.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear removes all entries and bumps the epoch so that loads already in
// flight discard their results instead of resurrecting invalidated entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
	s.epoch++
}

// Stats returns entry counts at call time.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	st := Stats{Total: len(s.entries)}
	for _, ent := range s.entries {
		if !ent.expired(now) {
			st.Valid++
		}
	}
	return st
}

// LoadTyped is a typed wrapper around Store.Load.
func LoadTyped[T any](ctx context.Context, s *Store, key string, policy Policy, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := s.Load(ctx, key, policy, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrWrongType, key, v)
	}
	return typed, nil
}
