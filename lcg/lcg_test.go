package lcg_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmin/lcg"
)

// bigStream is an arbitrary-precision reference for the same recurrence.
func bigStream(seed, x, y, z int64, n int) []int64 {
	out := make([]int64, 0, n)
	g := big.NewInt(seed)
	bx, by, bz := big.NewInt(x), big.NewInt(y), big.NewInt(z)
	for i := 0; i < n; i++ {
		if i > 0 {
			g.Mul(g, bx)
			g.Add(g, by)
			g.Mod(g, bz) // Euclidean: result in [0, z)
		}
		out = append(out, g.Int64())
	}

	return out
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		mod  int64
		seed int64
		err  error
	}{
		{"ZeroModulus", 0, 1, lcg.ErrInvalidModulus},
		{"NegativeModulus", -7, 1, lcg.ErrInvalidModulus},
		{"NegativeSeed", 10, -1, lcg.ErrNegativeSeed},
		{"BothBad_ModulusWins", 0, -1, lcg.ErrInvalidModulus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lcg.New(tc.seed, 3, 1, tc.mod)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNext_SeedVerbatim checks that the first draw is g0 even when g0 >= z.
func TestNext_SeedVerbatim(t *testing.T) {
	s, err := lcg.New(250, 7, 3, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(250), s.Next(), "first draw must be the raw seed")
	assert.Equal(t, int64((250*7+3)%100), s.Next(), "second draw applies the recurrence")
	assert.Equal(t, int64(2), s.Drawn())
}

// TestNext_ScenarioA covers g0=5, x=1, y=1, z=100 → 5, 6, 7, 8.
func TestNext_ScenarioA(t *testing.T) {
	s, err := lcg.New(5, 1, 1, 100)
	require.NoError(t, err)

	got := make([]int64, 4)
	s.Fill(got)
	assert.Equal(t, []int64{5, 6, 7, 8}, got)
}

func TestNext_Wraps(t *testing.T) {
	s, err := lcg.New(98, 1, 1, 100)
	require.NoError(t, err)

	got := make([]int64, 4)
	s.Fill(got)
	assert.Equal(t, []int64{98, 99, 0, 1}, got)
}

// TestNext_OverflowSafety compares 32-bit-scale and full int64-scale
// parameters against math/big.
func TestNext_OverflowSafety(t *testing.T) {
	cases := []struct {
		name          string
		seed, x, y, z int64
	}{
		{"TwoBillionScale", 1_999_999_999, 1_999_999_973, 1_000_000_007, 2_000_000_000},
		{"XEqualsZ", 123_456_789, 2_000_000_000, 17, 2_000_000_000},
		{"Int32Max", math.MaxInt32 - 1, math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{"Int64Scale", 1, math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64},
		{"HugeMulSmallMod", 9, math.MaxInt64, 0, 1_000_003},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const n = 512
			s, err := lcg.New(tc.seed, tc.x, tc.y, tc.z)
			require.NoError(t, err)

			got := make([]int64, n)
			s.Fill(got)
			assert.Equal(t, bigStream(tc.seed, tc.x, tc.y, tc.z, n), got)
			for i, v := range got[1:] {
				assert.GreaterOrEqual(t, v, int64(0), "draw %d", i+1)
				assert.Less(t, v, tc.z, "draw %d", i+1)
			}
		})
	}
}

// TestAdvance_Pure ensures the value-passing form does not mutate its input.
func TestAdvance_Pure(t *testing.T) {
	s0, err := lcg.Start(lcg.Params{Seed: 4, Mul: 3, Inc: 2, Mod: 11})
	require.NoError(t, err)

	s1, v1 := lcg.Advance(s0)
	s1again, v1again := lcg.Advance(s0)
	assert.Equal(t, v1, v1again)
	assert.Equal(t, s1, s1again)
	assert.False(t, s0.Started, "input snapshot must be unchanged")

	_, v2 := lcg.Advance(s1)
	assert.Equal(t, int64(4), v1)
	assert.Equal(t, int64((4*3+2)%11), v2)
}

func TestResume_Replays(t *testing.T) {
	a, err := lcg.New(17, 48271, 11, 2_147_483_647)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.Next()
	}
	b, err := lcg.Resume(a.Snapshot())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "diverged at step %d", i)
	}

	_, err = lcg.Resume(lcg.Snapshot{})
	assert.ErrorIs(t, err, lcg.ErrInvalidModulus)
}

// TestNext_NegativeParamsStayInRange checks Euclidean reduction of x and y.
func TestNext_NegativeParamsStayInRange(t *testing.T) {
	s, err := lcg.New(3, -5, -2, 13)
	require.NoError(t, err)

	got := make([]int64, 64)
	s.Fill(got)
	assert.Equal(t, bigStream(3, -5, -2, 13, 64), got)
}
