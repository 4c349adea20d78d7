// SPDX-License-Identifier: MIT

package lcg

// State is a mutable convenience wrapper around Snapshot for callers that
// draw from a single stream in a loop. It is NOT safe for concurrent use.
type State struct {
	snap  Snapshot
	drawn int64 // number of values produced so far
}

// New validates the parameters and returns a fresh generator.
// Returns ErrInvalidModulus or ErrNegativeSeed (wrapped).
// Complexity: O(1).
func New(seed, mul, inc, mod int64) (*State, error) {
	snap, err := Start(Params{Seed: seed, Mul: mul, Inc: inc, Mod: mod})
	if err != nil {
		return nil, err
	}

	return &State{snap: snap}, nil
}

// Next returns the next value of the deterministic stream.
// Complexity: O(1).
func (s *State) Next() int64 {
	var v int64
	s.snap, v = Advance(s.snap)
	s.drawn++

	return v
}

// Fill draws len(dst) consecutive values into dst, in order.
// Complexity: O(len(dst)).
func (s *State) Fill(dst []int64) {
	for i := range dst {
		dst[i] = s.Next()
	}
}

// Drawn reports how many values have been produced.
func (s *State) Drawn() int64 { return s.drawn }

// Snapshot returns a copy of the current state; restoring it with Resume
// replays the identical remainder of the stream.
func (s *State) Snapshot() Snapshot { return s.snap }

// Resume returns a generator continuing from snap.
func Resume(snap Snapshot) (*State, error) {
	if err := snap.Params.Validate(); err != nil {
		return nil, err
	}

	return &State{snap: snap}, nil
}
