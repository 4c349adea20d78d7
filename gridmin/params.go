// SPDX-License-Identifier: MIT

package gridmin

import (
	"fmt"

	"github.com/katalvlaran/gridmin/lcg"
)

// Params is the complete, order-sensitive input of one run:
// grid n×m, window a×b, generator (g0, x, y, z).
type Params struct {
	N, M int // grid rows, columns
	A, B int // window rows, columns

	Seed int64 // g0
	Mul  int64 // x
	Inc  int64 // y
	Mod  int64 // z
}

// Generator returns the lcg parameters embedded in p.
func (p Params) Generator() lcg.Params {
	return lcg.Params{Seed: p.Seed, Mul: p.Mul, Inc: p.Inc, Mod: p.Mod}
}

// Cols returns the width of the intermediate matrix, m-b+1.
func (p Params) Cols() int { return p.M - p.B + 1 }

// Windows returns the number of a×b windows that fit, (n-a+1)*(m-b+1).
func (p Params) Windows() int { return (p.N - p.A + 1) * p.Cols() }

// Validate checks p in priority order:
// shape -> window bounds -> window fit -> generator.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.N < 1 || p.M < 1 {
		return fmt.Errorf("n=%d m=%d: %w", p.N, p.M, ErrBadShape)
	}
	if p.A < 1 || p.B < 1 {
		return fmt.Errorf("a=%d b=%d: %w", p.A, p.B, ErrBadWindow)
	}
	if p.A > p.N || p.B > p.M {
		return fmt.Errorf("%dx%d window on %dx%d grid: %w", p.A, p.B, p.N, p.M, ErrWindowTooLarge)
	}
	if err := p.Generator().Validate(); err != nil {
		return fmt.Errorf("gridmin: %w", err)
	}

	return nil
}
