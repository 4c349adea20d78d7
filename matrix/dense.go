// SPDX-License-Identifier: MIT
// Package matrix provides the row-major integer matrix that carries
// per-row window minima from the row pass to the column pass.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice aliasing the backing storage; writes
// through it are visible in m. Returns ErrIndexOutOfBounds for bad i.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Col returns a read-only strided view of column j, suitable for
// window.Sequence consumers. Returns ErrIndexOutOfBounds for bad j.
// Complexity: O(1); At on the view is O(1).
func (m *Dense) Col(j int) (Column, error) {
	if j < 0 || j >= m.c {
		return Column{}, denseErrorf("Col", 0, j, ErrIndexOutOfBounds)
	}

	return Column{m: m, j: j}, nil
}

// Min returns the smallest element of m.
// Complexity: O(r*c).
func (m *Dense) Min() int64 {
	lo := m.data[0]
	for _, v := range m.data[1:] {
		lo = min(lo, v)
	}

	return lo
}

// Sum returns the sum of all elements, reporting ErrOverflow if an
// intermediate total leaves the int64 range.
// Complexity: O(r*c).
func (m *Dense) Sum() (int64, error) {
	var s int64
	for i, v := range m.data {
		next := s + v
		if (v > 0 && next < s) || (v < 0 && next > s) {
			return 0, denseErrorf("Sum", i/m.c, i%m.c, ErrOverflow)
		}
		s = next
	}

	return s, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Column is a strided, read-only view over one column of a Dense.
// It satisfies window.Sequence[int64].
type Column struct {
	m *Dense
	j int
}

// Len returns the number of rows of the underlying matrix.
func (c Column) Len() int { return c.m.r }

// At returns element (i, j) without bounds checks beyond the slice's own.
func (c Column) At(i int) int64 { return c.m.data[i*c.m.c+c.j] }
