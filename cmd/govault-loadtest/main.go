package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goVault "github.com/MrEthical07/goVault"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		prefixWords = flag.Int("prefix-words", 200, "number of prefix words to seed")
		suffixWords = flag.Int("suffix-words", 200, "number of suffix words to seed")
		fillPercent = flag.Int("fill", 50, "percent of capacity to pre-fill before the churn phase")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations in the churn phase (create + release)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
	)
	flag.Parse()

	if *prefixWords <= 0 || *suffixWords <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "prefix-words, suffix-words, concurrency, and ops must be > 0")
		os.Exit(2)
	}
	if *fillPercent < 0 || *fillPercent > 100 {
		fmt.Fprintln(os.Stderr, "fill must be between 0 and 100")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := goVault.DefaultConfig()
	cfg.Reclaim.Enabled = false
	cfg.Metrics.Enabled = true

	if err := seedWordLists(ctx, client, cfg.Words.RedisPrefixKey, cfg.Words.RedisSuffixKey, *prefixWords, *suffixWords); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed word lists: %v\n", err)
		os.Exit(1)
	}

	vault, err := goVault.New().
		WithConfig(cfg).
		WithRedis(client).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build vault: %v\n", err)
		os.Exit(1)
	}
	defer vault.Close()

	capacity := vault.Capacity()
	fill := capacity * *fillPercent / 100
	fmt.Printf("capacity=%d pre-filling %d keys...\n", capacity, fill)

	fillStats := runFillPhase(ctx, vault, fill, *concurrency)
	churnStats := runChurnPhase(ctx, vault, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("fill", fillStats)
	printStats("churn", churnStats)
	fmt.Printf("active=%d capacity=%d\n", vault.ActiveKeys(), vault.Capacity())
}

func seedWordLists(ctx context.Context, client redis.UniversalClient, prefixKey, suffixKey string, prefixCount, suffixCount int) error {
	if err := client.Del(ctx, prefixKey, suffixKey).Err(); err != nil {
		return err
	}
	prefixes := make([]interface{}, prefixCount)
	for i := range prefixes {
		prefixes[i] = fmt.Sprintf("Prefix%04d", i)
	}
	suffixes := make([]interface{}, suffixCount)
	for i := range suffixes {
		suffixes[i] = fmt.Sprintf("Suffix%04d", i)
	}
	if err := client.RPush(ctx, prefixKey, prefixes...).Err(); err != nil {
		return err
	}
	return client.RPush(ctx, suffixKey, suffixes...).Err()
}

func runFillPhase(ctx context.Context, vault *goVault.Vault, fill, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, fill)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= fill {
					return
				}
				t0 := time.Now()
				_, err := vault.CreateKey(ctx)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runChurnPhase(ctx context.Context, vault *goVault.Vault, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			held := make([]string, 0, 64)
			defer func() {
				for _, code := range held {
					_ = vault.ReleaseKey(ctx, code)
				}
			}()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}

				// Bias toward releasing once a worker holds a few keys so
				// occupancy stays near the pre-fill level.
				if len(held) > 0 && r.Intn(2) == 0 {
					idx := r.Intn(len(held))
					code := held[idx]
					held[idx] = held[len(held)-1]
					held = held[:len(held)-1]

					t0 := time.Now()
					err := vault.ReleaseKey(ctx, code)
					d := time.Since(t0)
					if err != nil {
						atomic.AddInt64(&failures, 1)
					}
					mu.Lock()
					latencies = append(latencies, d)
					mu.Unlock()
					continue
				}

				t0 := time.Now()
				code, err := vault.CreateKey(ctx)
				d := time.Since(t0)
				if err != nil {
					if !errors.Is(err, goVault.ErrFullCapacity) {
						atomic.AddInt64(&failures, 1)
					}
				} else {
					held = append(held, code)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
