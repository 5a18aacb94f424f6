package goVault

import (
	"errors"
	"time"
)

// Config defines a public type used by goVault APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Words      WordsConfig
	Allocation AllocationConfig
	Reclaim    ReclaimConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
WORDS CONFIG
====================================
*/

// WordsConfig defines a public type used by goVault APIs.
//
// WordsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type WordsConfig struct {
	// RedisPrefixKey and RedisSuffixKey name the two Redis lists read once
	// during Build when the vault is constructed with WithRedis.
	RedisPrefixKey string
	RedisSuffixKey string
	// LoadTimeout bounds the single startup read of the vocabulary store.
	LoadTimeout time.Duration
}

/*
====================================
ALLOCATION CONFIG
====================================
*/

// AllocationConfig defines a public type used by goVault APIs.
//
// AllocationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AllocationConfig struct {
	// RandomAttempts is the number of uniform random draws tried before the
	// allocator falls back to an exhaustive scan. The fallback guarantees
	// liveness near full capacity.
	RandomAttempts int
}

/*
====================================
RECLAIM CONFIG
====================================
*/

// ReclaimConfig defines a public type used by goVault APIs.
//
// ReclaimConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ReclaimConfig struct {
	Enabled bool
	// Interval is the reclaimer's fixed timer period.
	Interval time.Duration
	// TTL is the age past which an unreleased key is presumed leaked by a
	// crashed session. Must exceed the maximum plausible session lifetime.
	TTL time.Duration
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goVault APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goVault APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration used by New.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Words: WordsConfig{
			RedisPrefixKey: "vault:words:prefix",
			RedisSuffixKey: "vault:words:suffix",
			LoadTimeout:    5 * time.Second,
		},
		Allocation: AllocationConfig{
			RandomAttempts: 100,
		},
		Reclaim: ReclaimConfig{
			Enabled:  true,
			Interval: time.Hour,
			TTL:      time.Hour,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation or configuration checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Words
	if c.Words.LoadTimeout < 0 {
		return errors.New("Words LoadTimeout must be >= 0")
	}

	// Allocation
	if c.Allocation.RandomAttempts <= 0 {
		return errors.New("Allocation RandomAttempts must be > 0")
	}

	// Reclaim
	if c.Reclaim.Enabled {
		if c.Reclaim.Interval <= 0 {
			return errors.New("Reclaim Interval must be > 0")
		}
		if c.Reclaim.TTL <= 0 {
			return errors.New("Reclaim TTL must be > 0")
		}
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0")
	}

	return nil
}
