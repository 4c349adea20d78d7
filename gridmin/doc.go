// Package gridmin sums the minima of every a×b window of a deterministic
// pseudorandom n×m grid.
//
// What:
//
//   - Params: grid shape, window shape and LCG parameters, with Validate.
//   - Sum: two-pass O(n·m) reduction (rows of width b, then columns of height a).
//   - Naive / Generate: the O(n·m·a·b) definition and a materialized grid, for checks.
//
// Why:
//
//   - Counting the "floor" of every rectangular plot on a generated height map.
//   - A compact exercise that shares one monotonic-deque primitive across two axes.
//
// Data flow:
//
//	lcg.State -> row buffer -> window.Reducer(b) -> matrix.Dense (n × (m-b+1))
//	          -> window.Reducer(a) per column -> accumulator -> int64
//
// Determinism:
//
//	Sum is a pure function of Params. Only grid cell (0,0) is the raw seed;
//	every other cell, including the rest of row 0, comes from the recurrence.
//
// Options:
//
//   - WithLogger: debug records at phase boundaries.
//   - WithRowHook: observe each row of the intermediate matrix.
//
// Errors:
//
//   - ErrBadShape:       n < 1 or m < 1.
//   - ErrBadWindow:      a < 1 or b < 1.
//   - ErrWindowTooLarge: a > n or b > m.
//   - ErrSumOverflow:    the answer exceeds int64.
//   - lcg.ErrInvalidModulus, lcg.ErrNegativeSeed (wrapped).
package gridmin
