package nba

import "errors"

// Sentinel errors for provider failures. Callers classify with errors.Is.
var (
	// ErrUnavailable covers timeouts, transport failures and 5xx responses.
	ErrUnavailable = errors.New("nba: provider unavailable")

	// ErrMalformed covers undecodable payloads and schema mismatches.
	ErrMalformed = errors.New("nba: malformed provider response")

	// ErrNotFound covers unknown team, player or resource ids.
	ErrNotFound = errors.New("nba: resource not found")
)
