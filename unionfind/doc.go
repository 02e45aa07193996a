// Package unionfind maintains a partition of a fixed universe {0..n-1}
// into disjoint sets, supporting near-constant-time union and
// connectivity queries.
//
// What:
//
//   - UnionFind is an array-backed weighted quick-union structure.
//   - Union merges two sets by attaching the smaller tree under the larger
//     (union by size); Find resolves an element's root with full path
//     compression, repointing every visited node directly at the root.
//   - Connected, Count and SizeOf answer same-set, set-count and
//     set-population queries.
//
// Why:
//
//   - Dynamic connectivity: incremental "are these linked yet?" queries.
//   - Kruskal-style cycle detection over edge streams.
//   - Grid percolation and island/component merging.
//
// Complexity:
//
//   - New:       O(n) time and memory.
//   - Find:      O(α(n)) amortized (inverse Ackermann), O(1) extra space.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//   - Count/Len: O(1).
//
// Errors:
//
//   - ErrUniverseSize: requested universe holds fewer than one element.
//   - ErrElementRange: an element index lies outside [0, n).
//
// The structure is not safe for concurrent use; callers requiring shared
// access must serialize externally.
package unionfind
