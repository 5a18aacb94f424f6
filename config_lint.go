package goVault

import (
	"fmt"
	"strings"
	"time"
)

// LintSeverity ranks lint findings. Higher values are more serious.
type LintSeverity int

const (
	LintLow LintSeverity = iota
	LintMedium
	LintHigh
)

// String describes the string operation and its observable behavior.
func (s LintSeverity) String() string {
	switch s {
	case LintLow:
		return "LOW"
	case LintMedium:
		return "MEDIUM"
	case LintHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// LintWarning defines a public type used by goVault APIs.
//
// LintWarning instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintWarning struct {
	Code     string
	Severity LintSeverity
	Message  string
}

// LintWarnings defines a public type used by goVault APIs.
type LintWarnings []LintWarning

// Codes describes the codes operation and its observable behavior.
func (ws LintWarnings) Codes() []string {
	codes := make([]string, 0, len(ws))
	for _, w := range ws {
		codes = append(codes, w.Code)
	}
	return codes
}

// BySeverity returns the warnings at or above the given severity.
func (ws LintWarnings) BySeverity(min LintSeverity) LintWarnings {
	out := make(LintWarnings, 0, len(ws))
	for _, w := range ws {
		if w.Severity >= min {
			out = append(out, w)
		}
	}
	return out
}

// AsError returns an error summarizing the warnings at or above the given
// severity, or nil when there are none. Useful for failing startup on
// HIGH findings while logging the rest.
func (ws LintWarnings) AsError(min LintSeverity) error {
	flagged := ws.BySeverity(min)
	if len(flagged) == 0 {
		return nil
	}
	parts := make([]string, 0, len(flagged))
	for _, w := range flagged {
		parts = append(parts, fmt.Sprintf("%s [%s]: %s", w.Code, w.Severity, w.Message))
	}
	return fmt.Errorf("config lint: %s", strings.Join(parts, "; "))
}

// Lint reports configurations that are valid but likely mistakes. Unlike
// Validate it never rejects a config; Build ignores lint findings.
func (c Config) Lint() LintWarnings {
	var ws LintWarnings

	if !c.Audit.Enabled {
		ws = append(ws, LintWarning{
			Code:     "audit_disabled",
			Severity: LintLow,
			Message:  "audit is disabled; exhaustion and reclamation events will not be reported",
		})
	}
	if c.Audit.Enabled && !c.Audit.DropIfFull {
		ws = append(ws, LintWarning{
			Code:     "audit_blocking",
			Severity: LintMedium,
			Message:  "DropIfFull is off; a slow audit sink can stall key allocation",
		})
	}

	if !c.Reclaim.Enabled {
		ws = append(ws, LintWarning{
			Code:     "reclaim_disabled",
			Severity: LintMedium,
			Message:  "reclamation is disabled; keys leaked by crashed sessions are never freed",
		})
	}
	if c.Reclaim.Enabled && c.Reclaim.TTL < 10*time.Minute {
		ws = append(ws, LintWarning{
			Code:     "reclaim_ttl_short",
			Severity: LintHigh,
			Message:  "Reclaim TTL is shorter than a plausible game session; live keys may be reclaimed mid-session",
		})
	}
	if c.Reclaim.Enabled && c.Reclaim.Interval > 24*time.Hour {
		ws = append(ws, LintWarning{
			Code:     "reclaim_interval_long",
			Severity: LintLow,
			Message:  "Reclaim Interval exceeds a day; leaked keys linger long after their TTL",
		})
	}

	if c.Allocation.RandomAttempts < 10 {
		ws = append(ws, LintWarning{
			Code:     "random_attempts_low",
			Severity: LintMedium,
			Message:  "RandomAttempts below 10 forces the exhaustive fallback scan at modest occupancy",
		})
	}

	return ws
}
