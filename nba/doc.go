// Package nba is the surface onto the external stats provider: a Provider
// interface returning provider-native result sets, an HTTP implementation
// with bounded timeouts, and the static franchise table.
//
// The provider is treated as an opaque collaborator; its failures map onto
// three sentinels: ErrUnavailable, ErrMalformed, ErrNotFound.
package nba
