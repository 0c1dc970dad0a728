// Package franchise exposes the query surface for one tracked franchise:
// cached primitive lookups, derived analytics, and a composite full report.
//
// A Client owns its cache store and provider handle; it is constructed
// explicitly at process start (or per team session) and holds no global
// state.
package franchise
