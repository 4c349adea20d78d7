// SPDX-License-Identifier: MIT
// Package: gridmin/lcg
//
// lcg.go: linear congruential generator that fills the grid row-major.
//
// Contract:
//   • The very first draw returns the seed verbatim, no recurrence applied.
//   • Every later draw computes g = (g*x + y) mod z and returns the new g.
//   • All state lives in an explicit Snapshot/State value; there is no global.
//   • The product g*x is formed in 128-bit unsigned arithmetic, so any
//     int64 parameters with z > 0 are exact.

package lcg

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidModulus indicates z <= 0; the recurrence is undefined.
var ErrInvalidModulus = errors.New("lcg: modulus must be > 0")

// ErrNegativeSeed indicates g0 < 0; grid cells are non-negative.
var ErrNegativeSeed = errors.New("lcg: seed must be >= 0")

// Params are the immutable recurrence parameters of one run.
type Params struct {
	Seed int64 // g0, returned unchanged by the first draw
	Mul  int64 // x
	Inc  int64 // y
	Mod  int64 // z, must be > 0
}

// Validate reports ErrInvalidModulus or ErrNegativeSeed.
// Modulus is checked first: a bad z makes every other field meaningless.
func (p Params) Validate() error {
	if p.Mod <= 0 {
		return fmt.Errorf("z=%d: %w", p.Mod, ErrInvalidModulus)
	}
	if p.Seed < 0 {
		return fmt.Errorf("g0=%d: %w", p.Seed, ErrNegativeSeed)
	}

	return nil
}

// Snapshot is the complete generator state between two draws.
// The zero Snapshot with valid Params is "not started": its first
// Advance yields Params.Seed.
type Snapshot struct {
	Params
	G       int64 // last produced term
	Started bool  // false until the seed has been emitted
}

// Start returns the initial Snapshot for p after validating it.
// Complexity: O(1).
func Start(p Params) (Snapshot, error) {
	if err := p.Validate(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Params: p, G: p.Seed}, nil
}

// Advance is the pure form of the generator: it consumes a Snapshot and
// returns the successor Snapshot together with the value it produced.
// The input Snapshot must come from Start (Mod > 0).
// Complexity: O(1).
func Advance(s Snapshot) (Snapshot, int64) {
	if !s.Started {
		s.Started = true
		s.G = s.Seed

		return s, s.G
	}
	s.G = step(s.G, s.Mul, s.Inc, s.Mod)

	return s, s.G
}

// step computes (g*x + y) mod z for z > 0, exactly, with the result in [0, z).
// Operands are first reduced into [0, z); then (g'*x') + y' < z*z, whose
// high word is < z, so bits.Div64 cannot overflow.
func step(g, x, y, z int64) int64 {
	m := uint64(z)
	gu, xu, yu := reduce(g, z), reduce(x, z), reduce(y, z)

	hi, lo := bits.Mul64(gu, xu)
	var carry uint64
	lo, carry = bits.Add64(lo, yu, 0)
	hi += carry
	_, rem := bits.Div64(hi, lo, m)

	return int64(rem)
}

// reduce returns the Euclidean residue of v modulo z as uint64.
func reduce(v, z int64) uint64 {
	r := v % z
	if r < 0 {
		r += z
	}

	return uint64(r)
}
