// Package goVault issues short, human-speakable, globally-unique join codes
// ("Red Fox") that let a second device join a live game session. Codes are
// drawn from a bounded vocabulary space, so the vault must never hand out the
// same code twice while it is active, must report exhaustion, and must
// reclaim codes abandoned by crashed sessions.
//
// The package is designed for concurrent server workloads: Vault methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goVault is the public surface. It exposes [Vault], [Builder], [Config], and
// value types (AuditEvent, MetricsSnapshot, etc.). All internal coordination
// (vocabulary loading, the active-key set, audit dispatch) lives under
// internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Expose Redis clients, the registry, or word-pool internals in its
//     public API.
//   - Perform I/O outside of Build (the vocabulary store is read exactly
//     once; allocation and release touch only in-memory state).
//   - Import any sub-package that re-imports goVault (no import cycles).
//
// # Performance contract
//
// CreateKey is the hot path. While utilization is low it completes in O(1)
// expected time via random draws; the exhaustive fallback costs O(capacity)
// and only runs near full occupancy. Neither CreateKey nor ReleaseKey
// performs blocking I/O.
package goVault
