package goVault

import (
	"context"
	crand "crypto/rand"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/goVault/internal/registry"
	"github.com/MrEthical07/goVault/internal/words"
)

// Vault defines a public type used by goVault APIs.
//
// Vault instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// One Vault is constructed per process through [Builder.Build] and shared by
// every request handler; all methods are safe for concurrent use.
type Vault struct {
	config   Config
	pool     *words.Pool
	registry *registry.Registry
	audit    *auditDispatcher
	metrics  *Metrics

	now func() time.Time

	reclaimStop chan struct{}
	reclaimWG   sync.WaitGroup
	closed      atomic.Bool
	closeOnce   sync.Once
}

// CreateKey allocates a fresh join code and returns its rendered
// "prefix suffix" form.
//
// Up to Allocation.RandomAttempts uniform random draws are tried first; the
// generator is reseeded from OS entropy on every call so join codes are not
// predictable from request data. When every draw collides, which is only
// likely near full capacity, a deterministic row-major scan over the full combination
// space guarantees that a free pair is found if one exists. Only when the
// scan also fails is the vault exhausted: a Critical audit event is emitted
// and ErrFullCapacity returned. The caller decides how to surface that.
func (v *Vault) CreateKey(ctx context.Context) (string, error) {
	if v == nil || v.registry == nil {
		return "", ErrVaultNotReady
	}
	if v.closed.Load() {
		return "", ErrVaultClosed
	}

	var start time.Time
	if v.metrics.LatencyEnabled() {
		start = time.Now()
	}

	var seed [32]byte
	_, _ = crand.Read(seed[:])
	rng := rand.New(rand.NewChaCha8(seed))

	prefixLen := v.pool.PrefixLen()
	suffixLen := v.pool.SuffixLen()

	for attempt := 0; attempt < v.config.Allocation.RandomAttempts; attempt++ {
		key := registry.Key{
			Prefix: v.pool.Prefix(rng.IntN(prefixLen)),
			Suffix: v.pool.Suffix(rng.IntN(suffixLen)),
		}
		if v.registry.InsertIfAbsent(key, v.now()) {
			return v.finishCreate(key, start), nil
		}
	}

	v.metricInc(MetricCreateFallbackScan)

	for i := 0; i < prefixLen; i++ {
		for j := 0; j < suffixLen; j++ {
			key := registry.Key{
				Prefix: v.pool.Prefix(i),
				Suffix: v.pool.Suffix(j),
			}
			if v.registry.InsertIfAbsent(key, v.now()) {
				return v.finishCreate(key, start), nil
			}
		}
	}

	v.metricInc(MetricCreateExhausted)
	v.emitAudit(ctx, auditEventVaultExhausted, SeverityCritical, "create_key", "vault exhausted", map[string]string{
		"capacity": strconv.Itoa(v.pool.Capacity()),
	})

	return "", ErrFullCapacity
}

func (v *Vault) finishCreate(key registry.Key, start time.Time) string {
	v.metricInc(MetricCreateSuccess)
	if !start.IsZero() {
		v.metrics.Observe(MetricCreateLatency, time.Since(start))
	}
	return key.Prefix + " " + key.Suffix
}

// ReleaseKey frees the join code so a later CreateKey may hand it out again.
// Releasing a code that is not allocated is a no-op: teardown and the reclaim
// timeout may race, and both must be safe.
//
// A code that does not parse into exactly two words is rejected with
// ErrMalformedCode before the registry is consulted.
func (v *Vault) ReleaseKey(ctx context.Context, code string) error {
	if v == nil || v.registry == nil {
		return ErrVaultNotReady
	}
	if v.closed.Load() {
		return ErrVaultClosed
	}

	key, err := parseKey(code)
	if err != nil {
		v.metricInc(MetricReleaseMalformed)
		return err
	}

	v.registry.Remove(key)
	v.metricInc(MetricRelease)
	return nil
}

// KeyActive reports whether the given join code is currently allocated.
// Malformed codes are never active.
func (v *Vault) KeyActive(code string) bool {
	if v == nil || v.registry == nil {
		return false
	}

	key, err := parseKey(code)
	if err != nil {
		return false
	}
	return v.registry.Contains(key)
}

// ActiveKeys returns the number of currently allocated join codes.
func (v *Vault) ActiveKeys() int {
	if v == nil || v.registry == nil {
		return 0
	}
	return v.registry.Len()
}

// Capacity returns the total number of distinct join codes the vocabularies
// can express.
func (v *Vault) Capacity() int {
	if v == nil || v.pool == nil {
		return 0
	}
	return v.pool.Capacity()
}

// Close stops the reclaimer and drains the audit dispatcher. Subsequent
// CreateKey and ReleaseKey calls return ErrVaultClosed.
func (v *Vault) Close() {
	if v == nil {
		return
	}
	v.closeOnce.Do(func() {
		v.closed.Store(true)
		if v.reclaimStop != nil {
			close(v.reclaimStop)
			v.reclaimWG.Wait()
		}
		if v.audit != nil {
			v.audit.Close()
		}
	})
}

// AuditDropped reports audit events discarded under dispatcher backpressure.
func (v *Vault) AuditDropped() uint64 {
	if v == nil || v.audit == nil {
		return 0
	}
	return v.audit.Dropped()
}

// MetricsSnapshot copies the current counter and histogram state.
func (v *Vault) MetricsSnapshot() MetricsSnapshot {
	if v == nil || v.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return v.metrics.Snapshot()
}

func (v *Vault) metricInc(id MetricID) {
	if v == nil || v.metrics == nil {
		return
	}
	v.metrics.Inc(id)
}

// parseKey maps a rendered code back to its registry identity. Exactly two
// non-empty tokens separated by one space; anything else is a caller error.
func parseKey(code string) (registry.Key, error) {
	prefix, suffix, ok := strings.Cut(code, " ")
	if !ok || prefix == "" || suffix == "" || strings.Contains(suffix, " ") {
		return registry.Key{}, ErrMalformedCode
	}
	return registry.Key{Prefix: prefix, Suffix: suffix}, nil
}
