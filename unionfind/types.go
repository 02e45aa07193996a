// Package unionfind defines the core structure and sentinel errors for
// the disjoint-set engine of github.com/aev3/algos-percolation.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrUniverseSize indicates the requested universe holds fewer than one element.
	ErrUniverseSize = errors.New("unionfind: universe must hold at least one element")
	// ErrElementRange indicates an element index lies outside [0, n).
	ErrElementRange = errors.New("unionfind: element index out of range")
)

// UnionFind tracks a partition of the fixed universe {0..n-1} into disjoint
// sets. parent[x] is the element recorded as x's parent; a root satisfies
// parent[x] == x. size[x] is meaningful only while x is a root and holds the
// population of that root's tree, driving union-by-size tie-breaking.
// The universe never grows or shrinks after construction.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
