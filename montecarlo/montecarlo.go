// Package montecarlo provides external drivers over the percolation core:
// a random-opening trial for threshold estimation and a stream replay for
// recorded opening sequences.
package montecarlo

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/aev3/algos-percolation/percolation"
)

// Trial constructs a fresh n×n grid and opens uniformly random sites until
// the system percolates, skipping sites that are already open so Opened
// counts distinct sites. The returned Result carries the open fraction at
// the moment of first percolation and the elapsed wall time.
// Deterministic under a seeded rng.
//
// Returns ErrNilRand if rng is nil; dimension errors propagate from the
// percolation core.
// Complexity: O(n²·α(n²)) expected time, O(n²) memory.
func Trial(n int, rng *rand.Rand) (Result, error) {
	if rng == nil {
		return Result{}, ErrNilRand
	}
	grid, err := percolation.New(n)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	for !grid.Percolates() {
		row, col := 1+rng.Intn(n), 1+rng.Intn(n)
		// Coordinates are generated in range; Open cannot fail here.
		_ = grid.Open(row, col)
	}

	return snapshot(grid, time.Since(start)), nil
}

// Replay reads a whitespace-separated stream of the form
//
//	N
//	r1 c1
//	r2 c2
//	...
//
// constructs an N×N grid and opens every listed site in order. Line breaks
// carry no meaning; any whitespace separates tokens. The grid is returned
// alongside a Result snapshot so callers can keep querying it.
//
// Returns ErrBadInput for non-integer tokens or a dangling row without a
// column; dimension and coordinate errors propagate from the percolation
// core. Complexity: O(K·α(N²)) for K listed sites.
func Replay(r io.Reader) (*percolation.Percolation, Result, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	start := time.Now()

	// 1. Grid dimension.
	n, ok, err := nextInt(sc)
	if err != nil {
		return nil, Result{}, err
	}
	if !ok {
		return nil, Result{}, fmt.Errorf("%w: missing grid dimension", ErrBadInput)
	}
	grid, err := percolation.New(n)
	if err != nil {
		return nil, Result{}, err
	}

	// 2. (row, col) pairs until the stream ends.
	for {
		row, ok, err := nextInt(sc)
		if err != nil {
			return nil, Result{}, err
		}
		if !ok {
			break
		}
		col, ok, err := nextInt(sc)
		if err != nil {
			return nil, Result{}, err
		}
		if !ok {
			return nil, Result{}, fmt.Errorf("%w: row %d has no column", ErrBadInput, row)
		}
		if err := grid.Open(row, col); err != nil {
			return nil, Result{}, err
		}
	}

	return grid, snapshot(grid, time.Since(start)), nil
}

// nextInt scans one token and parses it as an integer. ok is false when the
// stream is exhausted.
func nextInt(sc *bufio.Scanner) (v int, ok bool, err error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrBadInput, err)
		}

		return 0, false, nil
	}
	v, err = strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not an integer", ErrBadInput, sc.Text())
	}

	return v, true, nil
}

// snapshot folds the grid's current state into a Result.
func snapshot(grid *percolation.Percolation, elapsed time.Duration) Result {
	n := grid.Dimension()

	return Result{
		N:          n,
		Opened:     grid.NumberOfOpenSites(),
		Percolated: grid.Percolates(),
		Threshold:  float64(grid.NumberOfOpenSites()) / float64(n*n),
		Elapsed:    elapsed,
	}
}
