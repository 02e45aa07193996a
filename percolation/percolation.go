// Package percolation provides the N×N site grid built on two independent
// disjoint-set engines. It supports:
//
//   - Irreversible site opening with orthogonal-neighbor merging
//   - Fullness queries free of the bottom-anchor backwash artifact
//   - A single near-constant-time global percolation query
//
// Sites are blocked until opened; coordinates are 1-indexed externally and
// mapped to row-major identifiers internally by siteIndex.
package percolation

import "github.com/aev3/algos-percolation/unionfind"

// New constructs an n×n grid with every site blocked.
// Both engines span the n*n sites plus the two virtual anchors.
// Returns ErrInvalidDimension if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n < 1 {
		return nil, ErrInvalidDimension
	}
	// Universe: n*n sites, then virtual top at n*n, virtual bottom at n*n+1.
	full, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, err
	}
	perc, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, err
	}

	return &Percolation{
		n:     n,
		sites: make([]bool, n*n),
		full:  full,
		perc:  perc,
	}, nil
}

// Dimension reports the grid dimension n fixed at construction.
// Complexity: O(1).
func (p *Percolation) Dimension() int {
	return p.n
}

// NumberOfOpenSites reports how many sites have been opened so far.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.opened
}

// virtualTop is the identifier of the synthetic element standing in for the
// entire top row.
func (p *Percolation) virtualTop() int {
	return p.n * p.n
}

// virtualBottom is the identifier of the synthetic element standing in for
// the entire bottom row. Only the percolation-tracking engine ever unions
// with it.
func (p *Percolation) virtualBottom() int {
	return p.n*p.n + 1
}

// siteIndex maps 1-indexed (row, col) to a row-major identifier in [0, n²).
// All coordinate validation lives here.
// Returns ErrCoordinateRange if row or col lies outside [1, n].
// Complexity: O(1).
func (p *Percolation) siteIndex(row, col int) (int, error) {
	if row < 1 || row > p.n || col < 1 || col > p.n {
		return 0, ErrCoordinateRange
	}

	return (row-1)*p.n + (col - 1), nil
}

// Open activates the site at (row, col) if it is still blocked and merges it
// with each already-open orthogonal neighbor in both engines. A top-row site
// is united with the virtual top in both engines; a bottom-row site is
// united with the virtual bottom in the percolation-tracking engine only,
// which is what keeps fullness queries free of backwash. Opening an already
// open site is a no-op.
// Returns ErrCoordinateRange if row or col lies outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	// 1. Validate and map the target site.
	site, err := p.siteIndex(row, col)
	if err != nil {
		return err
	}
	if p.sites[site] {
		// Already open; idempotent.
		return nil
	}

	// 2. Flip the site open and bump the counter.
	p.sites[site] = true
	p.opened++

	// 3. Merge with each open orthogonal neighbor in both engines.
	p.unite(site, row-1, col)
	p.unite(site, row+1, col)
	p.unite(site, row, col-1)
	p.unite(site, row, col+1)

	// 4. Wire the virtual anchors.
	if row == 1 {
		_ = p.full.Union(site, p.virtualTop())
		_ = p.perc.Union(site, p.virtualTop())
	}
	if row == p.n {
		// Bottom anchor joins the percolation engine only (backwash rule).
		_ = p.perc.Union(site, p.virtualBottom())
	}

	return nil
}

// unite merges site with the neighbor at (row, col) in both engines when
// that neighbor exists and is already open. Out-of-grid neighbors are
// skipped, so edge and corner sites need no special casing.
func (p *Percolation) unite(site, row, col int) {
	neighbor, err := p.siteIndex(row, col)
	if err != nil || !p.sites[neighbor] {
		return
	}
	// Indices are validated above; engine unions cannot fail.
	_ = p.full.Union(site, neighbor)
	_ = p.perc.Union(site, neighbor)
}

// IsOpen reports whether the site at (row, col) has been opened.
// Returns ErrCoordinateRange if row or col lies outside [1, n].
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	site, err := p.siteIndex(row, col)
	if err != nil {
		return false, err
	}

	return p.sites[site], nil
}

// IsFull reports whether the site at (row, col) connects to the top row
// through a chain of open, orthogonally adjacent sites. A blocked site is
// never full. The query runs against the full-tracking engine, which never
// touches the virtual bottom, so a percolating system cannot flood
// disconnected bottom-row sites.
// Returns ErrCoordinateRange if row or col lies outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	site, err := p.siteIndex(row, col)
	if err != nil {
		return false, err
	}
	if !p.sites[site] {
		return false, nil
	}
	conn, err := p.full.Connected(site, p.virtualTop())
	if err != nil {
		return false, err
	}

	return conn, nil
}

// Percolates reports whether an open path connects the top row to the
// bottom row. Once true it stays true: sites never close and unions never
// split. Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	conn, _ := p.perc.Connected(p.virtualTop(), p.virtualBottom())

	return conn
}
