// Package input parses the eight order-sensitive integers of one run:
//
//	n m a b g0 x y z
//
// Tokens are separated by any whitespace, line breaks included. Extra
// tokens after z are ignored.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridmin/gridmin"
)

var (
	// ErrMissingField indicates the input ended before all eight values.
	ErrMissingField = errors.New("input: missing field")

	// ErrMalformedField indicates a token that is not a base-10 integer
	// in range for its field.
	ErrMalformedField = errors.New("input: malformed field")
)

// Fields lists field names in input order.
var Fields = [8]string{"n", "m", "a", "b", "g0", "x", "y", "z"}

// Parse reads the eight fields from r.
func Parse(r io.Reader) (gridmin.Params, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tokens := make([]string, 0, len(Fields))
	for len(tokens) < len(Fields) && sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return gridmin.Params{}, fmt.Errorf("input: read: %w", err)
	}

	return ParseArgs(tokens)
}

// ParseArgs parses already-split tokens; len(args) may exceed eight.
func ParseArgs(args []string) (gridmin.Params, error) {
	if len(args) < len(Fields) {
		return gridmin.Params{}, fmt.Errorf("%s (got %d of %d values): %w",
			Fields[len(args)], len(args), len(Fields), ErrMissingField)
	}

	var v [8]int64
	for i, name := range Fields {
		bits := 64
		if i < 4 {
			bits = strconv.IntSize // n m a b are grid indices
		}
		n, err := strconv.ParseInt(args[i], 10, bits)
		if err != nil {
			return gridmin.Params{}, fmt.Errorf("%s=%q: %w", name, args[i], ErrMalformedField)
		}
		v[i] = n
	}

	return gridmin.Params{
		N: int(v[0]), M: int(v[1]), A: int(v[2]), B: int(v[3]),
		Seed: v[4], Mul: v[5], Inc: v[6], Mod: v[7],
	}, nil
}
