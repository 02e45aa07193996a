// Package montecarlo defines the trial result type and sentinel errors for
// the percolation drivers of github.com/aev3/algos-percolation.
package montecarlo

import (
	"errors"
	"time"
)

// Sentinel errors for montecarlo drivers.
var (
	// ErrNilRand indicates Trial was invoked without a random source.
	ErrNilRand = errors.New("montecarlo: random source must not be nil")
	// ErrBadInput indicates a malformed or truncated replay stream.
	ErrBadInput = errors.New("montecarlo: malformed input stream")
)

// Result summarizes one driven grid.
//
// Threshold is the fraction of sites open when the driver stopped; for a
// percolated Trial it is a one-shot estimate of the percolation threshold.
type Result struct {
	// N is the grid dimension.
	N int
	// Opened counts distinct sites opened.
	Opened int
	// Percolated reports whether the grid percolates at the end of the run.
	Percolated bool
	// Threshold is Opened divided by N².
	Threshold float64
	// Elapsed is the wall time the run took.
	Elapsed time.Duration
}
