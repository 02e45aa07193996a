// Package algos is the umbrella for github.com/aev3/algos-percolation:
// site percolation on an N-by-N grid in near-constant amortized time per
// operation.
//
// 🚀 What is algos-percolation?
//
//	A small, focused library that brings together:
//		• unionfind/   — array-backed disjoint sets with union by size and
//		  full path compression (O(α(n)) amortized per operation)
//		• percolation/ — the N×N site grid over two independent engines,
//		  with virtual top/bottom anchors and backwash-free fullness
//		• montecarlo/  — external drivers: random trials estimating the
//		  percolation threshold p*, and replay of recorded opening streams
//
// ✨ Why choose it?
//
//   - Minimal API, clear naming: Open, IsOpen, IsFull, Percolates
//   - Sentinel errors for every contract violation, comparable with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic drivers – seedable trials, reproducible replays
//
// Quick ASCII example (3×3, left column opened top to bottom):
//
//	■ □ □        ■ = open
//	■ □ □        □ = blocked
//	■ □ □        → the open column links the virtual top to the virtual
//	              bottom, so the system percolates.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples, or run the demo under examples/.
package algos
