// SPDX-License-Identifier: MIT

package gridmin

import (
	"fmt"

	"github.com/katalvlaran/gridmin/lcg"
	"github.com/katalvlaran/gridmin/matrix"
)

// Generate materializes the full n×m grid in row-major draw order.
// Sum never does this; it exists for inspection and reference checks.
// Complexity: O(n·m) time and memory.
func Generate(p Params) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	gen, err := lcg.New(p.Seed, p.Mul, p.Inc, p.Mod)
	if err != nil {
		return nil, fmt.Errorf("gridmin: %w", err)
	}
	grid, err := matrix.NewDense(p.N, p.M)
	if err != nil {
		return nil, fmt.Errorf("gridmin: %w", err)
	}
	for i := 0; i < p.N; i++ {
		row, err := grid.Row(i)
		if err != nil {
			return nil, fmt.Errorf("gridmin: %w", err)
		}
		gen.Fill(row)
	}

	return grid, nil
}

// Naive computes the same answer as Sum straight from the definition:
// for every top-left (r, c), the minimum over rows [r, r+a) and columns
// [c, c+b), summed.
// Complexity: O(n·m·a·b) time, O(n·m) memory.
func Naive(p Params) (int64, error) {
	grid, err := Generate(p)
	if err != nil {
		return 0, err
	}

	var acc accumulator
	for r := 0; r+p.A <= p.N; r++ {
		for c := 0; c+p.B <= p.M; c++ {
			lo, _ := grid.At(r, c)
			for i := r; i < r+p.A; i++ {
				for j := c; j < c+p.B; j++ {
					v, _ := grid.At(i, j)
					lo = min(lo, v)
				}
			}
			acc.add(0, lo)
		}
	}
	if acc.overflow {
		return 0, ErrSumOverflow
	}

	return acc.total, nil
}
