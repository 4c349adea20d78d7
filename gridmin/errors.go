// SPDX-License-Identifier: MIT
// Package: gridmin
//
// errors.go: sentinel errors for the gridmin package.
//
// Error policy:
//   • Validation runs before any allocation; there is no partial result.
//   • Sentinels are wrapped with %w plus the offending values; callers use
//     errors.Is. Generator errors surface as lcg.ErrInvalidModulus /
//     lcg.ErrNegativeSeed, wrapped the same way.

package gridmin

import "errors"

// ErrBadShape indicates n < 1 or m < 1.
var ErrBadShape = errors.New("gridmin: grid dimensions must be >= 1")

// ErrBadWindow indicates a < 1 or b < 1.
var ErrBadWindow = errors.New("gridmin: window dimensions must be >= 1")

// ErrWindowTooLarge indicates a > n or b > m: no window fits the grid.
var ErrWindowTooLarge = errors.New("gridmin: window larger than grid")

// ErrSumOverflow indicates the accumulated answer left the int64 range.
var ErrSumOverflow = errors.New("gridmin: sum overflows int64")
