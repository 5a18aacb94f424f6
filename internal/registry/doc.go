// Package registry implements the active-key set shared by every allocation
// and release path.
//
// # Components
//
//   - [Key] — word-pair identity of one allocated join code.
//   - [Registry] — mutex-guarded map from Key to allocation time with an
//     atomic insert-if-absent primitive.
//
// # Architecture boundaries
//
// This package owns membership and expiry bookkeeping only. It does NOT pick
// candidate keys, render them, or decide what exhaustion means; that
// responsibility belongs to the Vault.
//
// # What this package must NOT do
//
//   - Import goVault or any sibling internal package.
//   - Perform I/O of any kind.
package registry
