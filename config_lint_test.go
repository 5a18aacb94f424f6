package goVault

import (
	"testing"
	"time"
)

func TestLint_DefaultConfigNoHighFindings(t *testing.T) {
	// The default config ships with audit and metrics off, so low and
	// medium findings are expected. HIGH findings are not.
	cfg := defaultConfig()
	ws := cfg.Lint()

	if len(ws.BySeverity(LintHigh)) != 0 {
		t.Errorf("default config should have no HIGH findings, got %v", ws.BySeverity(LintHigh).Codes())
	}
}

func TestLint_AuditDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Audit.Enabled = false
	if !containsCode(cfg.Lint().Codes(), "audit_disabled") {
		t.Error("expected audit_disabled warning when audit is off")
	}

	cfg.Audit.Enabled = true
	if containsCode(cfg.Lint().Codes(), "audit_disabled") {
		t.Error("should not warn when audit is on")
	}
}

func TestLint_BlockingAuditSink(t *testing.T) {
	cfg := defaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.DropIfFull = false
	if !containsCode(cfg.Lint().Codes(), "audit_blocking") {
		t.Error("expected audit_blocking warning")
	}
}

func TestLint_ReclaimDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Reclaim.Enabled = false
	if !containsCode(cfg.Lint().Codes(), "reclaim_disabled") {
		t.Error("expected reclaim_disabled warning")
	}
}

func TestLint_ShortReclaimTTL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Reclaim.TTL = 5 * time.Minute
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "reclaim_ttl_short") {
		t.Error("expected reclaim_ttl_short warning")
	}
	for _, w := range ws {
		if w.Code == "reclaim_ttl_short" && w.Severity != LintHigh {
			t.Errorf("reclaim_ttl_short should be HIGH, got %s", w.Severity)
		}
	}
}

func TestLint_LongReclaimInterval(t *testing.T) {
	cfg := defaultConfig()
	cfg.Reclaim.Interval = 48 * time.Hour
	if !containsCode(cfg.Lint().Codes(), "reclaim_interval_long") {
		t.Error("expected reclaim_interval_long warning")
	}
}

func TestLint_LowRandomAttempts(t *testing.T) {
	cfg := defaultConfig()
	cfg.Allocation.RandomAttempts = 5
	if !containsCode(cfg.Lint().Codes(), "random_attempts_low") {
		t.Error("expected random_attempts_low warning")
	}
}

func TestLint_AsError(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Lint().AsError(LintHigh); err != nil {
		t.Errorf("default config should not fail AsError(LintHigh): %v", err)
	}

	cfg.Reclaim.TTL = time.Minute
	if err := cfg.Lint().AsError(LintHigh); err == nil {
		t.Error("expected AsError(LintHigh) to return error for short reclaim TTL")
	}
}

func TestLint_BySeverity(t *testing.T) {
	cfg := defaultConfig()
	cfg.Reclaim.TTL = time.Minute
	ws := cfg.Lint()

	high := ws.BySeverity(LintHigh)
	if len(high) == 0 {
		t.Error("expected at least one HIGH severity warning")
	}
	for _, w := range high {
		if w.Severity < LintHigh {
			t.Errorf("BySeverity(LintHigh) returned warning with severity %s", w.Severity)
		}
	}
}

// helpers

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
