package goVault

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMetricsDisabledSnapshotEmpty(t *testing.T) {
	vault := newTestVault(t, []string{"Red"}, []string{"Fox"}, nil)

	if _, err := vault.CreateKey(context.Background()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	snapshot := vault.MetricsSnapshot()
	if len(snapshot.Counters) != 0 || len(snapshot.Histograms) != 0 {
		t.Fatalf("expected empty snapshot with metrics disabled, got %+v", snapshot)
	}
}

func TestMetricsCounters(t *testing.T) {
	vault := newTestVault(t, []string{"Red", "Blue"}, []string{"Fox", "Owl"}, func(cfg *Config) {
		cfg.Metrics.Enabled = true
	})

	codes := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		code, err := vault.CreateKey(context.Background())
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		codes = append(codes, code)
	}

	if _, err := vault.CreateKey(context.Background()); !errors.Is(err, ErrFullCapacity) {
		t.Fatalf("expected ErrFullCapacity, got %v", err)
	}

	if err := vault.ReleaseKey(context.Background(), codes[0]); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := vault.ReleaseKey(context.Background(), "not-two-words"); !errors.Is(err, ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}

	snapshot := vault.MetricsSnapshot()
	checks := []struct {
		id   MetricID
		want uint64
	}{
		{MetricCreateSuccess, 4},
		{MetricCreateExhausted, 1},
		{MetricRelease, 1},
		{MetricReleaseMalformed, 1},
	}
	for _, c := range checks {
		if got := snapshot.Counters[c.id]; got != c.want {
			t.Fatalf("metric %d: expected %d, got %d", c.id, c.want, got)
		}
	}

	// The exhausted create walked the full space after its random draws
	// failed, so the fallback scan counter must be at least 1.
	if got := snapshot.Counters[MetricCreateFallbackScan]; got == 0 {
		t.Fatal("expected fallback scan to be recorded for the exhausted create")
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	vault := newTestVault(t, []string{"Red"}, []string{"Fox"}, func(cfg *Config) {
		cfg.Metrics.Enabled = true
		cfg.Metrics.EnableLatencyHistograms = true
	})

	if _, err := vault.CreateKey(context.Background()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	snapshot := vault.MetricsSnapshot()
	buckets, ok := snapshot.Histograms[MetricCreateLatency]
	if !ok {
		t.Fatal("expected latency histogram in snapshot")
	}

	var total uint64
	for _, b := range buckets {
		total += b
	}
	if total != 1 {
		t.Fatalf("expected 1 latency sample, got %d", total)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricCreateSuccess)
	m.Add(MetricKeysReclaimed, 5)
	m.Observe(MetricCreateLatency, time.Millisecond)

	if m.Enabled() || m.LatencyEnabled() {
		t.Fatal("nil metrics reported enabled")
	}
	if got := m.Value(MetricCreateSuccess); got != 0 {
		t.Fatalf("expected 0 from nil metrics, got %d", got)
	}
	snapshot := m.Snapshot()
	if len(snapshot.Counters) != 0 {
		t.Fatal("expected empty snapshot from nil metrics")
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{3 * time.Microsecond, 0},
		{5 * time.Microsecond, 0},
		{10 * time.Microsecond, 1},
		{25 * time.Microsecond, 2},
		{50 * time.Microsecond, 3},
		{100 * time.Microsecond, 4},
		{250 * time.Microsecond, 5},
		{500 * time.Microsecond, 6},
		{time.Millisecond, 7},
		{time.Second, 7},
	}
	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Fatalf("bucketIndex(%v): expected %d, got %d", tc.d, tc.want, got)
		}
	}
}
