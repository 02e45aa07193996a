// Package montecarlo drives percolation grids from the outside: random
// trials for threshold estimation and deterministic replays of recorded
// opening sequences.
//
// What:
//
//   - Trial opens uniformly random blocked sites on a fresh N×N grid until
//     the system percolates, reporting the fraction of open sites at that
//     moment — a one-shot estimate of the percolation threshold p*.
//   - Replay feeds a whitespace-separated stream "N r1 c1 r2 c2 ..." into a
//     fresh grid, opening each listed site in order.
//
// Why:
//
//   - When sites open independently with probability p, a sharp threshold
//     p* separates almost-never from almost-always percolating grids; no
//     closed form for p* is known, so it is estimated by simulation.
//   - Replay makes recorded scenarios reproducible without hand-writing
//     Open calls.
//
// Complexity:
//
//   - Trial:  O(N² · α(N²)) expected time, O(N²) memory.
//   - Replay: O(K · α(N²)) for K listed sites, O(N²) memory.
//
// Errors:
//
//   - ErrNilRand: Trial was given a nil random source.
//   - ErrBadInput: Replay met a malformed or truncated stream.
//   - Dimension and coordinate errors propagate from the percolation core.
//
// Aggregation across trials (mean, stddev, confidence intervals) is left to
// callers; this package runs one grid at a time.
package montecarlo
