package words

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrPrefixListEmpty is returned when the prefix vocabulary loads with zero words.
var ErrPrefixListEmpty = errors.New("prefix word list is empty")

// ErrSuffixListEmpty is returned when the suffix vocabulary loads with zero words.
var ErrSuffixListEmpty = errors.New("suffix word list is empty")

// Source supplies the two vocabularies. It is consulted exactly once, during
// vault construction.
type Source interface {
	WordSets(ctx context.Context) (prefix []string, suffix []string, err error)
}

// Pool holds the two vocabularies after a successful load. It is immutable
// for the process lifetime and shared by reference; no synchronization is
// needed to read it.
type Pool struct {
	prefix []string
	suffix []string
}

// Load reads both word lists from source and freezes them into a Pool.
// Either list being empty is a fatal load error: a vault with undefined
// capacity is not permitted to start.
func Load(ctx context.Context, source Source) (*Pool, error) {
	prefix, suffix, err := source.WordSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word sets: %w", err)
	}
	if len(prefix) == 0 {
		return nil, ErrPrefixListEmpty
	}
	if len(suffix) == 0 {
		return nil, ErrSuffixListEmpty
	}

	p := &Pool{
		prefix: make([]string, len(prefix)),
		suffix: make([]string, len(suffix)),
	}
	copy(p.prefix, prefix)
	copy(p.suffix, suffix)
	return p, nil
}

// PrefixLen returns the prefix vocabulary size.
func (p *Pool) PrefixLen() int {
	return len(p.prefix)
}

// SuffixLen returns the suffix vocabulary size.
func (p *Pool) SuffixLen() int {
	return len(p.suffix)
}

// Capacity is the number of distinct index pairs. The lists do not need equal
// lengths; capacity is the product, not the minimum.
func (p *Pool) Capacity() int {
	return len(p.prefix) * len(p.suffix)
}

// Prefix returns the prefix word at i.
func (p *Pool) Prefix(i int) string {
	return p.prefix[i]
}

// Suffix returns the suffix word at i.
func (p *Pool) Suffix(i int) string {
	return p.suffix[i]
}

// RedisSource reads the vocabularies from two Redis lists.
type RedisSource struct {
	client    redis.UniversalClient
	prefixKey string
	suffixKey string
}

// NewRedisSource builds a Source over the given client and list keys.
func NewRedisSource(client redis.UniversalClient, prefixKey, suffixKey string) *RedisSource {
	return &RedisSource{
		client:    client,
		prefixKey: prefixKey,
		suffixKey: suffixKey,
	}
}

// WordSets fetches both lists in one pipeline round-trip.
func (s *RedisSource) WordSets(ctx context.Context) ([]string, []string, error) {
	var prefixCmd, suffixCmd *redis.StringSliceCmd

	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		prefixCmd = pipe.LRange(ctx, s.prefixKey, 0, -1)
		suffixCmd = pipe.LRange(ctx, s.suffixKey, 0, -1)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch word lists: %w", err)
	}

	return prefixCmd.Val(), suffixCmd.Val(), nil
}

// StaticSource serves fixed in-memory word lists. Used by tests and by
// deployments that compile their vocabularies in.
type StaticSource struct {
	prefix []string
	suffix []string
}

// NewStaticSource builds a Source over the given slices. The slices are not
// copied; Load copies on its side.
func NewStaticSource(prefix, suffix []string) *StaticSource {
	return &StaticSource{
		prefix: prefix,
		suffix: suffix,
	}
}

// WordSets returns the configured slices.
func (s *StaticSource) WordSets(context.Context) ([]string, []string, error) {
	return s.prefix, s.suffix, nil
}
