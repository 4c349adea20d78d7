// SPDX-License-Identifier: MIT
// Package: gridmin/window
//
// window.go: sliding-window minimum over any indexable, length-known sequence.
//
// Algorithm (monotonic deque, one pass):
//  1. Keep positions in the deque ordered by index, with strictly increasing
//     values front-to-back.
//  2. For each j with value v: pop the back while value(back) >= v, push j.
//     Ties evict the older index, so only the rightmost of equal values stays.
//  3. Pop the front if it is <= j-w (left the window).
//  4. Once j >= w-1, value(front) is the minimum of window [j-w+1, j].
//
// Complexity: O(L) time for L values, O(w) deque memory.

package window

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrBadWidth indicates window width w < 1.
	ErrBadWidth = errors.New("window: width must be >= 1")

	// ErrWindowTooLarge indicates w > L: no window fits the sequence.
	ErrWindowTooLarge = errors.New("window: width exceeds sequence length")

	// ErrEmptySequence indicates L == 0.
	ErrEmptySequence = errors.New("window: sequence is empty")
)

// Sequence is a finite, random-access view of ordered values.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to Sequence.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Reducer runs sliding-window minima and reuses one Deque across calls.
// The zero value is ready to use. Not safe for concurrent use.
type Reducer[T cmp.Ordered] struct {
	dq Deque
}

// NewReducer returns a Reducer whose deque is pre-sized for width w.
func NewReducer[T cmp.Ordered](w int) *Reducer[T] {
	return &Reducer[T]{dq: *NewDeque(w + 1)}
}

// Reduce emits, in increasing start order, the minimum of every window of
// width w over seq: emit(start, v) for start in [0, L-w].
// Returns ErrEmptySequence, ErrBadWidth or ErrWindowTooLarge (wrapped)
// before emitting anything.
func (r *Reducer[T]) Reduce(seq Sequence[T], w int, emit func(start int, v T)) error {
	n := seq.Len()
	if err := check(n, w); err != nil {
		return err
	}

	dq := &r.dq
	dq.Reset()
	for j := 0; j < n; j++ {
		v := seq.At(j)
		for dq.Len() > 0 && seq.At(dq.Back()) >= v {
			dq.PopBack()
		}
		dq.PushBack(j)
		if dq.Front() <= j-w {
			dq.PopFront()
		}
		if j >= w-1 {
			emit(j-w+1, seq.At(dq.Front()))
		}
	}

	return nil
}

// Minima returns the L-w+1 window minima of s.
// Complexity: O(L) time, O(L-w+1) output memory.
func Minima[T cmp.Ordered](s []T, w int) ([]T, error) {
	if err := check(len(s), w); err != nil {
		return nil, err
	}

	out := make([]T, len(s)-w+1)
	var r Reducer[T]
	err := r.Reduce(Slice[T](s), w, func(start int, v T) {
		out[start] = v
	})

	return out, err
}

// check validates (L, w) in priority order: empty -> width -> fit.
func check(n, w int) error {
	switch {
	case n == 0:
		return ErrEmptySequence
	case w < 1:
		return fmt.Errorf("w=%d: %w", w, ErrBadWidth)
	case w > n:
		return fmt.Errorf("w=%d, len=%d: %w", w, n, ErrWindowTooLarge)
	}

	return nil
}
