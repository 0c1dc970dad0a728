package cache

import (
	"errors"
	"fmt"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
	ErrWrongType  = errors.New("cache: cached value has unexpected type")
)

// Stats reports entry counts at a point in time.
type Stats struct {
	// Total counts all entries, including expired ones that have not been
	// lazily evicted yet.
	Total int

	// Valid counts only unexpired entries.
	Valid int
}

// Key builds a cache key from a resource name and its parameters.
// Format: <resource>:<param>:<param>...
//
// Two semantically identical requests always produce the same key; requests
// that differ in any parameter never collide.
func Key(resource string, params ...any) string {
	if len(params) == 0 {
		return resource
	}
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, resource)
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ":")
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
