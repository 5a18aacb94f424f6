package internaldefs

import (
	goVault "github.com/MrEthical07/goVault"
)

// CounterDef defines a public type used by goVault APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goVault.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goVault APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goVault.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the key vault engine.
var CounterDefs = []CounterDef{
	{ID: goVault.MetricCreateSuccess, Name: "govault_create_success_total", Help: "Successful join-key allocations."},
	{ID: goVault.MetricCreateFallbackScan, Name: "govault_create_fallback_scan_total", Help: "Allocations that fell back to the exhaustive scan."},
	{ID: goVault.MetricCreateExhausted, Name: "govault_create_exhausted_total", Help: "Allocations rejected at full capacity."},
	{ID: goVault.MetricRelease, Name: "govault_release_total", Help: "Join-key release operations."},
	{ID: goVault.MetricReleaseMalformed, Name: "govault_release_malformed_total", Help: "Release calls rejected for malformed codes."},
	{ID: goVault.MetricKeysReclaimed, Name: "govault_keys_reclaimed_total", Help: "Keys removed by the background reclaimer."},
}

// HistogramDefs is an exported constant or variable used by the key vault engine.
var HistogramDefs = []HistogramDef{
	{ID: goVault.MetricCreateLatency, Name: "govault_create_latency_seconds", Help: "CreateKey latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the key vault engine.
var HistogramBounds = []string{
	"0.000005",
	"0.00001",
	"0.000025",
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the key vault engine.
var HistogramBoundSuffix = []string{
	"5us",
	"10us",
	"25us",
	"50us",
	"100us",
	"250us",
	"500us",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed bucket
// count so exporters can index it safely.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form both
// exposition formats expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
