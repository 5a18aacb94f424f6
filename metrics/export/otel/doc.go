// Package otel provides OpenTelemetry metric exporter bindings for goVault counters and
// histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each goVault metric
// and Int64ObservableGauge per histogram bucket. A single callback reads
// [goVault.Vault.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate vault state.
package otel
