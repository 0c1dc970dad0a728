// Package cache provides an in-memory store with TTL expiry, permanent
// entries, and single-flight load coalescing.
//
// It is the freshness layer between resource fetchers and a rate-limited
// external data provider: concurrent misses for the same key collapse into
// one loader call, and a full Clear bumps an epoch so in-flight loads cannot
// resurrect invalidated entries.
package cache
