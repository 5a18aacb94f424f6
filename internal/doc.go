// Package internal groups helper packages that are intentionally private to
// goVault.
//
// # Sub-packages
//
//   - registry — the concurrency-safe active-key set with atomic
//     insert-if-absent
//   - words — vocabulary sources (Redis, static) and the immutable word pool
//
// # What this package must NOT do
//
//   - Export types that appear in the public goVault API.
//   - Be imported by any package outside the goVault module.
package internal
