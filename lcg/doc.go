// Package lcg implements the deterministic linear congruential stream
// g' = (g*x + y) mod z used to fill a grid in row-major order.
//
// What:
//
//   - Snapshot + Advance: pure, value-passing generator state.
//   - State: a small mutable wrapper with Next and Fill for loops.
//
// Seed rule:
//
//	Only the very first draw is the raw seed g0. Every later draw, including
//	the rest of the first grid row, goes through the recurrence.
//
// Complexity:
//
//   - Advance / Next: O(1), exact for any int64 x, y and z > 0.
//   - Fill:           O(len(dst)).
//
// Errors:
//
//   - ErrInvalidModulus: z <= 0.
//   - ErrNegativeSeed:   g0 < 0.
package lcg
