package goVault

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// startReclaimer launches the background task that expires keys abandoned by
// crashed sessions. It runs on a fixed timer, independent of request traffic,
// until Close.
func (v *Vault) startReclaimer(interval time.Duration) {
	v.reclaimStop = make(chan struct{})
	v.reclaimWG.Add(1)

	go func() {
		defer v.reclaimWG.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				v.reclaimOnce(context.Background())
			case <-v.reclaimStop:
				return
			}
		}
	}()
}

// reclaimOnce removes every key older than the reclaim TTL and returns the
// removed count. A non-zero count is abnormal, since keys should be freed on
// session teardown, so it is surfaced as a Warning rather than silently
// absorbed.
func (v *Vault) reclaimOnce(ctx context.Context) int {
	cutoff := v.now().Add(-v.config.Reclaim.TTL)
	removed := v.registry.ExpireBefore(cutoff)
	if removed == 0 {
		return 0
	}

	v.metrics.Add(MetricKeysReclaimed, uint64(removed))
	v.emitAudit(ctx, auditEventKeysReclaimed, SeverityWarning, "reclaim_keys",
		fmt.Sprintf("reclaimed %d expired keys", removed),
		map[string]string{
			"removed": strconv.Itoa(removed),
			"warning": "expired keys indicate a crashed or abandoned session; keys should be freed on teardown",
		})

	return removed
}
