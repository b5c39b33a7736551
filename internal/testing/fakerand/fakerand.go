// Package fakerand provides scripted random sources for deterministic tests.
package fakerand

import "fmt"

// Sequence replays a fixed list of draws. Each IntN call consumes the next
// value; once the script is exhausted it keeps returning Fallback.
// A scripted value outside [0, n) panics so broken scripts fail loudly.
type Sequence struct {
	Values   []int
	Fallback int
	pos      int
}

// New returns a Sequence over the given values with a zero fallback
func New(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// IntN returns the next scripted value
func (s *Sequence) IntN(n int) int {
	v := s.Fallback
	if s.pos < len(s.Values) {
		v = s.Values[s.pos]
		s.pos++
	}
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fakerand: scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

// Remaining reports how many scripted values have not been consumed
func (s *Sequence) Remaining() int {
	return len(s.Values) - s.pos
}
