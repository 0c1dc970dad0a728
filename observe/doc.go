// Package observe provides telemetry for the data layer: a structured
// logger, OpenTelemetry metrics for provider fetches and cache outcomes,
// and tracing around external provider calls.
package observe
