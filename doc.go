// Package gridmin (module root) sums the minima of every a×b window of a
// deterministic pseudorandom n×m grid in O(n·m).
//
// Under the hood, everything is organized under these subpackages:
//
//	lcg/      seeded linear congruential stream that fills the grid row-major
//	window/   sliding-window minimum (monotonic deque), shared by both passes
//	matrix/   row-major int64 Dense holding the per-row window minima
//	gridmin/  Params, validation, the two-pass Sum and the naive reference
//	cmd/      the gridmin command (stdin / -input / positional arguments)
//
// Quick example, g0=5 x=1 y=1 z=100 on a 2×2 grid:
//
//	5 6
//	7 8
//
//	1×1 windows → 5+6+7+8 = 26
//	2×2 window  → 5
//
//	go install github.com/katalvlaran/gridmin/cmd/gridmin@latest
package gridmin
