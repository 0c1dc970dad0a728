// Package analytics derives higher-order readings from cached primitives:
// streaks, trend splits, performance metrics, competitive context, and a
// bounded momentum score.
//
// Every function is pure and stateless; empty or missing input produces a
// zeroed or neutral result instead of an error, so a momentary provider
// outage degrades quality rather than crashing report assembly.
package analytics
