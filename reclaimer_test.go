package goVault

import (
	"context"
	"testing"
	"time"
)

func TestReclaimOnceRemovesExpired(t *testing.T) {
	sink := newCaptureSink(8)
	vault := newAuditVault(t, []string{"Red", "Blue"}, []string{"Fox", "Owl"}, sink, nil)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vault.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		if _, err := vault.CreateKey(context.Background()); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	vault.now = func() time.Time { return base.Add(2 * time.Hour) }

	removed := vault.reclaimOnce(context.Background())
	if removed != 3 {
		t.Fatalf("expected 3 reclaimed keys, got %d", removed)
	}
	if got := vault.ActiveKeys(); got != 0 {
		t.Fatalf("expected 0 active keys after reclaim, got %d", got)
	}

	select {
	case event := <-sink.events:
		if event.EventType != auditEventKeysReclaimed {
			t.Fatalf("unexpected event type %q", event.EventType)
		}
		if event.Severity != SeverityWarning {
			t.Fatalf("expected warning severity, got %q", event.Severity)
		}
		if event.Function != "reclaim_keys" {
			t.Fatalf("unexpected function %q", event.Function)
		}
		if event.Metadata["removed"] != "3" {
			t.Fatalf("expected removed=3 metadata, got %q", event.Metadata["removed"])
		}
		if event.EventID == "" {
			t.Fatal("expected non-empty event id")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reclaim audit event")
	}

	// Exactly one event per pass.
	select {
	case event := <-sink.events:
		t.Fatalf("unexpected extra audit event %q", event.EventType)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestReclaimOnceKeepsFreshKeys(t *testing.T) {
	vault := newTestVault(t, []string{"Red", "Blue"}, []string{"Fox", "Owl"}, nil)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vault.now = func() time.Time { return base }

	old1, err := vault.CreateKey(context.Background())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	old2, err := vault.CreateKey(context.Background())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	vault.now = func() time.Time { return base.Add(30 * time.Minute) }
	fresh, err := vault.CreateKey(context.Background())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 90 minutes after base: the first two keys are past the 1h TTL, the
	// third is only 60 minutes old.
	vault.now = func() time.Time { return base.Add(90 * time.Minute) }

	removed := vault.reclaimOnce(context.Background())
	if removed != 2 {
		t.Fatalf("expected 2 reclaimed keys, got %d", removed)
	}
	if vault.KeyActive(old1) || vault.KeyActive(old2) {
		t.Fatal("expired key still active after reclaim")
	}
	if !vault.KeyActive(fresh) {
		t.Fatal("fresh key was reclaimed")
	}
}

func TestReclaimOnceNothingExpiredEmitsNoEvent(t *testing.T) {
	sink := &countingSink{}
	vault := newAuditVault(t, []string{"Red"}, []string{"Fox"}, sink, nil)

	if _, err := vault.CreateKey(context.Background()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if removed := vault.reclaimOnce(context.Background()); removed != 0 {
		t.Fatalf("expected 0 reclaimed keys, got %d", removed)
	}

	vault.audit.Close()
	if got := sink.Count(); got != 0 {
		t.Fatalf("expected no audit events for an empty pass, got %d", got)
	}
}

func TestReclaimerBackgroundLoop(t *testing.T) {
	vault := newTestVault(t, []string{"Red"}, []string{"Fox"}, func(cfg *Config) {
		cfg.Reclaim.Enabled = true
		cfg.Reclaim.Interval = 10 * time.Millisecond
		cfg.Reclaim.TTL = 10 * time.Millisecond
	})

	if _, err := vault.CreateKey(context.Background()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for vault.ActiveKeys() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("reclaimer did not expire the key in time")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := vault.MetricsSnapshot(); len(got.Counters) != 0 {
		// Metrics are disabled in the test config; snapshot must be empty.
		t.Fatalf("expected empty snapshot, got %d counters", len(got.Counters))
	}
}

func TestReclaimMetrics(t *testing.T) {
	vault := newTestVault(t, []string{"Red", "Blue"}, []string{"Fox", "Owl"}, func(cfg *Config) {
		cfg.Metrics.Enabled = true
	})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vault.now = func() time.Time { return base }

	for i := 0; i < 4; i++ {
		if _, err := vault.CreateKey(context.Background()); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	vault.now = func() time.Time { return base.Add(2 * time.Hour) }
	if removed := vault.reclaimOnce(context.Background()); removed != 4 {
		t.Fatalf("expected 4 reclaimed keys, got %d", removed)
	}

	if got := vault.metrics.Value(MetricKeysReclaimed); got != 4 {
		t.Fatalf("expected MetricKeysReclaimed=4, got %d", got)
	}
}
