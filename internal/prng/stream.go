// Package prng implements the LuaRandom-style state advance used to draw
// values from a PRNG stream once its initial_state has been produced by
// pseudohash, in both scalar and SIMD-lane-masked vector forms
// (spec.md §4.1).
//
// Per the redesign note in spec.md §9, the historical "state == -2 means
// intentionally absent" sentinel is replaced by an explicit sum type:
// a Stream is either Uninitialized, Active, or Absent. Advancing an
// Absent or Uninitialized stream is a programming invariant violation,
// not a data condition, and panics.
package prng

import "math"

// Kind distinguishes the three states a stream handle can be in.
type Kind uint8

const (
	// KindUninitialized is the zero value: a Stream declared but never
	// given an initial_state.
	KindUninitialized Kind = iota
	// KindActive streams have a valid initial_state and can be advanced.
	KindActive
	// KindAbsent marks a stream the caller has determined will never be
	// drawn from this seed (e.g. a filter-excluded source) — distinct
	// from Uninitialized so "does this stream provide draws at all" can
	// be answered without risking an accidental draw.
	KindAbsent
)

// Stream is a single PRNG stream: its current state and the
// initial_state it was seeded with (kept so callers can reset or audit
// alignment without recomputing the pseudohash).
type Stream struct {
	kind    Kind
	state   float64
	initial float64
}

// NewActive returns a Stream seeded with the given initial_state,
// ready to be advanced.
func NewActive(initialState float64) Stream {
	return Stream{kind: KindActive, state: initialState, initial: initialState}
}

// Absent returns a stream explicitly marked as never going to be drawn
// from. does_provide_X queries on it always answer false.
func Absent() Stream {
	return Stream{kind: KindAbsent}
}

// IsActive reports whether the stream can be drawn from.
func (s Stream) IsActive() bool { return s.kind == KindActive }

// IsAbsent reports whether the stream was explicitly excluded.
func (s Stream) IsAbsent() bool { return s.kind == KindAbsent }

// InitialState returns the state the stream was constructed with.
func (s Stream) InitialState() float64 { return s.initial }

// Reset rewinds the stream back to its initial_state, used when a clause
// needs to replay a stream from the start (e.g. re-deriving the boss
// sequence for a different ante range).
func (s *Stream) Reset() {
	if s.kind != KindActive {
		panic("prng: Reset called on non-active stream")
	}
	s.state = s.initial
}

// splitMix64 is the standard SplitMix64 finalizer, used here only as a
// fixed-point mixing step inside the two-lane LCG combine below — not as
// a general-purpose hash.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

const (
	lcgMulLo = 6364136223846793005
	lcgMulHi = 1442695040888963407
)

// advance runs one LuaRandom-style double step: the f64 state is split
// into two 64-bit lanes, each lane takes one linear-congruential step
// with its own multiplier, and the lanes are recombined into a uniform
// double in [0,1). This reproduces the "two 64-bit lanes combined into a
// uniform double" shape spec.md §4.1 documents for next_random.
func advance(state float64) (next float64, draw float64) {
	bits := math.Float64bits(state)
	lo := splitMix64(bits) * lcgMulLo
	hi := splitMix64(bits^0x9E3779B97F4A7C15) * lcgMulHi
	combined := lo ^ (hi >> 1)

	draw = float64(combined>>11) * (1.0 / (1 << 53))
	next = draw
	return next, draw
}

// NextRandom advances the stream one step and returns the draw in
// [0,1). Panics if the stream is not active — drawing from an absent or
// uninitialized stream is a programming bug, not a recoverable error.
func NextRandom(s *Stream) float64 {
	if s.kind != KindActive {
		panic("prng: NextRandom called on non-active stream")
	}
	next, draw := advance(s.state)
	s.state = next
	return draw
}

// NextRandomInt draws an integer uniformly in [lo, hi] inclusive.
func NextRandomInt(s *Stream, lo, hi int) int {
	r := NextRandom(s)
	return int(math.Floor(r*float64(hi-lo+1))) + lo
}

// NextRandomElement draws a uniformly random element of a non-empty
// slice, advancing the stream by exactly one draw.
func NextRandomElement[T any](s *Stream, items []T) T {
	if len(items) == 0 {
		panic("prng: NextRandomElement called with empty slice")
	}
	idx := NextRandomInt(s, 0, len(items)-1)
	return items[idx]
}
