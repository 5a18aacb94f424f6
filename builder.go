package goVault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrEthical07/goVault/internal/registry"
	"github.com/MrEthical07/goVault/internal/words"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goVault APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	prefixWords []string
	suffixWords []string

	auditSink AuditSink

	built bool
}

// New returns a Builder seeded with the default configuration.
//
// New does not perform I/O; the vocabulary store is read once, during Build.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the Redis client backing the vocabulary store. The two word
// lists are read from the keys named in WordsConfig, exactly once, during
// Build.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithWordLists supplies the vocabularies directly, bypassing Redis. Intended
// for tests and deployments that compile their word lists in. Takes
// precedence over WithRedis.
func (b *Builder) WithWordLists(prefix, suffix []string) *Builder {
	b.prefixWords = prefix
	b.suffixWords = suffix
	return b
}

// WithAuditSink sets the destination for exhaustion and reclamation events.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles counter recording.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the CreateKey latency histogram.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build loads the vocabularies, assembles the vault, and starts the
// reclaimer when enabled. A load failure is fatal: no partial vault is
// returned. The builder is single-use.
func (b *Builder) Build() (*Vault, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var source words.Source
	switch {
	case b.prefixWords != nil || b.suffixWords != nil:
		source = words.NewStaticSource(b.prefixWords, b.suffixWords)
	case b.redis != nil:
		source = words.NewRedisSource(b.redis, cfg.Words.RedisPrefixKey, cfg.Words.RedisSuffixKey)
	default:
		return nil, errors.New("vocabulary source required: use WithRedis or WithWordLists")
	}

	loadCtx := context.Background()
	if cfg.Words.LoadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, cfg.Words.LoadTimeout)
		defer cancel()
	}

	pool, err := words.Load(loadCtx, source)
	if err != nil {
		switch {
		case errors.Is(err, words.ErrPrefixListEmpty), errors.Is(err, words.ErrSuffixListEmpty):
			return nil, fmt.Errorf("%w: %v", ErrWordListEmpty, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrWordsUnavailable, err)
		}
	}

	vault := &Vault{
		config:   cfg,
		pool:     pool,
		registry: registry.New(),
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:  NewMetrics(cfg.Metrics),
		now:      time.Now,
	}

	if cfg.Reclaim.Enabled {
		vault.startReclaimer(cfg.Reclaim.Interval)
	}

	b.built = true

	return vault, nil
}
