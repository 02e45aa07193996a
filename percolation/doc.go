// Package percolation models an N×N grid of sites, each blocked or open,
// and answers whether an open path of orthogonally adjacent sites connects
// the top row to the bottom row.
//
// What:
//
//   - Percolation wraps an N×N boolean site grid, all sites initially blocked.
//   - Open activates a site (irreversibly) and merges it with its open
//     orthogonal neighbors.
//   - IsFull reports whether a site is reachable from the top row through
//     open sites; Percolates reports whether the whole system conducts
//     from top to bottom.
//
// Why:
//
//   - Physics: conductivity of composite materials, fluid flow through
//     porous media.
//   - Monte Carlo estimation of the percolation threshold p*.
//   - A worked setting for dynamic connectivity over a grid.
//
// How:
//
//	The grid owns two independent unionfind.UnionFind engines over the
//	universe of N*N sites plus two virtual anchors (top = N*N,
//	bottom = N*N+1). The percolation-tracking engine wires open top-row
//	sites to the virtual top and open bottom-row sites to the virtual
//	bottom, so Percolates is a single top~bottom query. The full-tracking
//	engine wires the virtual top only: a bottom-row site therefore never
//	becomes "full" merely because the system percolates elsewhere
//	(the backwash artifact).
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized (at most six unions).
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(α(N²)) amortized.
//
// Errors:
//
//   - ErrInvalidDimension: requested grid dimension is below 1.
//   - ErrCoordinateRange: a row or column lies outside [1, N].
//
// Coordinates are 1-indexed: (1,1) is the upper-left site, (N,N) the
// lower-right. One logical thread drives one grid; concurrent callers must
// wrap the instance in their own mutual exclusion.
package percolation
