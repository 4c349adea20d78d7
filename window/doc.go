// Package window computes sliding-window minima with a monotonic deque.
//
// What:
//
//   - Sequence[T]: any finite random-access view (slices, matrix columns).
//   - Reducer[T]: the one-pass algorithm, reusing its Deque across calls.
//   - Minima: slice-in, slice-out convenience.
//   - Deque: ring-buffer index queue backing the reducer.
//
// Complexity:
//
//   - Reduce / Minima: O(L) time for a sequence of length L; each index is
//     pushed and popped at most once.
//
// Errors:
//
//   - ErrEmptySequence:  L == 0.
//   - ErrBadWidth:       w < 1.
//   - ErrWindowTooLarge: w > L.
package window
