package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmin/gridmin"
)

func TestParse_TwoLines(t *testing.T) {
	p, err := Parse(strings.NewReader("2 2 1 1\n5 1 1 100\n"))
	require.NoError(t, err)
	assert.Equal(t, gridmin.Params{N: 2, M: 2, A: 1, B: 1, Seed: 5, Mul: 1, Inc: 1, Mod: 100}, p)
}

func TestParse_ArbitraryWhitespaceAndTrailing(t *testing.T) {
	p, err := Parse(strings.NewReader("  3\t4\r\n 2 2 7\n\n 9223372036854775807 -1 10 extra junk"))
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), p.Mul)
	assert.Equal(t, int64(-1), p.Inc)
	assert.Equal(t, int64(10), p.Mod)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		err   error
		field string
	}{
		{"Empty", "", ErrMissingField, "n"},
		{"Truncated", "2 2 1 1 5 1 1", ErrMissingField, "z"},
		{"Word", "2 two 1 1 5 1 1 100", ErrMalformedField, "m="},
		{"Float", "2 2 1 1 5 1.5 1 100", ErrMalformedField, "x="},
		{"OutOfRange", "2 2 1 1 5 1 1 99999999999999999999", ErrMalformedField, "z="},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parse(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestParseArgs(t *testing.T) {
	p, err := ParseArgs([]string{"4", "5", "2", "3", "0", "7", "3", "11"})
	require.NoError(t, err)
	assert.Equal(t, gridmin.Params{N: 4, M: 5, A: 2, B: 3, Seed: 0, Mul: 7, Inc: 3, Mod: 11}, p)

	_, err = ParseArgs([]string{"4", "5"})
	assert.ErrorIs(t, err, ErrMissingField)
}
