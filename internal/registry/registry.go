package registry

import (
	"sync"
	"time"
)

// Key identifies one allocated join code by its word pair. The rendered
// string form is derived from the pair, never the other way around.
type Key struct {
	Prefix string
	Suffix string
}

// Registry is the set of join keys currently bound to a live session, each
// tagged with its allocation time. All methods are safe for concurrent use.
//
// InsertIfAbsent is the correctness-critical primitive: the membership check
// and the write happen under one lock acquisition, so two concurrent callers
// can never both claim the same key.
type Registry struct {
	mu   sync.Mutex
	keys map[Key]time.Time
}

func New() *Registry {
	return &Registry{
		keys: make(map[Key]time.Time),
	}
}

// InsertIfAbsent records key with the given allocation time iff it is not
// already present. Returns true when the key was inserted by this call.
func (r *Registry) InsertIfAbsent(key Key, allocatedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keys[key]; ok {
		return false
	}
	r.keys[key] = allocatedAt
	return true
}

// Contains reports whether key is currently allocated.
func (r *Registry) Contains(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.keys[key]
	return ok
}

// Remove frees key. Removing an absent key is a no-op; a session may be
// released twice (explicit teardown racing the reclaim timeout).
func (r *Registry) Remove(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.keys, key)
}

// Len returns the number of currently allocated keys.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.keys)
}

// ExpireBefore removes every key allocated before cutoff and returns the
// number removed.
func (r *Registry) ExpireBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, allocatedAt := range r.keys {
		if allocatedAt.Before(cutoff) {
			delete(r.keys, key)
			removed++
		}
	}
	return removed
}
