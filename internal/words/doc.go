// Package words loads and freezes the two join-code vocabularies.
//
// # Components
//
//   - [Source] — interface for vocabulary providers (Redis lists, static slices).
//   - [Pool] — the immutable loaded vocabularies plus derived capacity.
//
// # Architecture boundaries
//
// Loading happens once, during vault construction; after that the Pool is
// read-only and shared by reference. This package never touches the active-key
// set and has no opinion on allocation order.
//
// # What this package must NOT do
//
//   - Mutate a Pool after Load returns.
//   - Retry a failed load; startup failure is the caller's decision to surface.
//   - Import goVault or any sibling internal package.
package words
