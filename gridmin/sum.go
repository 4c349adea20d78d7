// SPDX-License-Identifier: MIT

package gridmin

import (
	"fmt"

	"github.com/katalvlaran/gridmin/lcg"
	"github.com/katalvlaran/gridmin/matrix"
	"github.com/katalvlaran/gridmin/window"
)

// Sum returns the sum, over every a×b window of the generated n×m grid,
// of that window's minimum.
//
// Algorithm Outline:
//  1. Validate p; nothing is allocated on bad input.
//  2. Row pass: for each row i, draw m values into a reused buffer and
//     write its width-b window minima into row i of an n×(m-b+1) matrix.
//  3. Column pass: for each column j of that matrix, take the height-a
//     window minima and add each to the accumulator.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·(m-b+1)) for the intermediate matrix + O(m) row buffer
//
// Errors:
//   - ErrBadShape, ErrBadWindow, ErrWindowTooLarge, lcg.ErrInvalidModulus,
//     lcg.ErrNegativeSeed: rejected input.
//   - ErrSumOverflow: the answer does not fit in int64.
func Sum(p Params, opts ...Option) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	cfg := newConfig(opts)

	gen, err := lcg.New(p.Seed, p.Mul, p.Inc, p.Mod)
	if err != nil {
		return 0, fmt.Errorf("gridmin: %w", err)
	}

	rowMin, err := rowPass(p, gen, cfg)
	if err != nil {
		return 0, err
	}
	cfg.logger.Debug("row pass done", "rows", rowMin.Rows(), "cols", rowMin.Cols(), "drawn", gen.Drawn())

	total, err := columnPass(p, rowMin)
	if err != nil {
		return 0, err
	}
	cfg.logger.Debug("column pass done", "windows", p.Windows(), "sum", total)

	return total, nil
}

// rowPass fills the intermediate matrix with width-b minima of each row.
func rowPass(p Params, gen *lcg.State, cfg config) (*matrix.Dense, error) {
	rowMin, err := matrix.NewDense(p.N, p.Cols())
	if err != nil {
		return nil, fmt.Errorf("gridmin: %w", err)
	}

	buf := make([]int64, p.M)
	r := window.NewReducer[int64](p.B)
	for i := 0; i < p.N; i++ {
		gen.Fill(buf)
		dst, err := rowMin.Row(i)
		if err != nil {
			return nil, fmt.Errorf("gridmin: %w", err)
		}
		if err := r.Reduce(window.Slice[int64](buf), p.B, func(start int, v int64) {
			dst[start] = v
		}); err != nil {
			return nil, fmt.Errorf("gridmin: row %d: %w", i, err)
		}
		if cfg.rowHook != nil {
			cfg.rowHook(i, dst)
		}
	}

	return rowMin, nil
}

// columnPass reduces each column with height a and accumulates the minima.
func columnPass(p Params, rowMin *matrix.Dense) (int64, error) {
	var acc accumulator
	r := window.NewReducer[int64](p.A)
	for j := 0; j < rowMin.Cols(); j++ {
		col, err := rowMin.Col(j)
		if err != nil {
			return 0, fmt.Errorf("gridmin: %w", err)
		}
		if err := r.Reduce(col, p.A, acc.add); err != nil {
			return 0, fmt.Errorf("gridmin: column %d: %w", j, err)
		}
		if acc.overflow {
			return 0, fmt.Errorf("column %d: %w", j, ErrSumOverflow)
		}
	}

	return acc.total, nil
}

// accumulator is the running int64 answer. Cells are non-negative, so
// overflow shows up as a decrease.
type accumulator struct {
	total    int64
	overflow bool
}

func (a *accumulator) add(_ int, v int64) {
	next := a.total + v
	if next < a.total {
		a.overflow = true
	}
	a.total = next
}
