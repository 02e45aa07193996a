// Package percolation defines the grid structure and sentinel errors for
// the percolation core of github.com/aev3/algos-percolation.
package percolation

import (
	"errors"

	"github.com/aev3/algos-percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidDimension indicates the requested grid dimension is below 1.
	ErrInvalidDimension = errors.New("percolation: grid dimension must be at least 1")
	// ErrCoordinateRange indicates a row or column lies outside [1, N].
	ErrCoordinateRange = errors.New("percolation: row or column out of range")
)

// Percolation models an n×n grid of sites over two disjoint-set engines.
// sites is the row-major open/blocked state; a site flips to open exactly
// once and never back. full tracks connectivity to the virtual top anchor
// only, so fullness queries cannot suffer backwash from the bottom anchor.
// perc additionally wires the virtual bottom anchor and answers the global
// percolation query. Both engines span n*n+2 elements.
type Percolation struct {
	n      int
	sites  []bool
	opened int
	full   *unionfind.UnionFind
	perc   *unionfind.UnionFind
}
