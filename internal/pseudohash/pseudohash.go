// Package pseudohash implements the deterministic recurrence of
// spec.md §4.1 that maps a string (stream key concatenated with a seed)
// to the [0,1) initial state of a PRNG stream, plus the partial-hash
// cache that lets the hot loop reuse the seed-suffix portion of that
// recurrence across every stream key requested during a batch.
//
// The recurrence's constants (1.1239285023, math.Pi) and right-to-left
// character order are part of the external compatibility surface
// (spec.md §6) — changing them, even to an equivalent closed form,
// breaks bit-exact agreement with the reference game.
package pseudohash

import "math"

// mixConstant is the fixed multiplier in the pseudohash recurrence.
const mixConstant = 1.1239285023

// CharValue returns the double-valued numeric input the recurrence uses
// for a seed/key character — its raw byte value, matching the reference
// game's treatment of characters as numeric codes in the hash mix.
func CharValue(c byte) float64 {
	return float64(c)
}

// step advances num by processing one character at absolute position i,
// where i is the character's index counted from the left of the full
// key∥seed string (the recurrence runs right-to-left, so the first call
// in any range is for the rightmost remaining character).
func step(num float64, c byte, i int) float64 {
	v := (mixConstant/num)*CharValue(c)*math.Pi + float64(i+1)*math.Pi
	return math.Mod(v, 1.0)
}

// StepRange processes s right-to-left against num, where s[0] occupies
// absolute position startPos and s[len(s)-1] occupies
// startPos+len(s)-1. It is the single building block every other
// function in this package composes: the full recurrence, the cached
// tail, and the per-lane vector extension are all just different
// sub-ranges of the same right-to-left walk.
func StepRange(num float64, s []byte, startPos int) float64 {
	for i := len(s) - 1; i >= 0; i-- {
		num = step(num, s[i], startPos+i)
	}
	return num
}

// Full computes the pseudohash of key∥seed from scratch. It is the
// reference form used off the hot path (filter compilation, tests,
// cache verification) — the hot loop instead uses the cached-tail
// composition below.
func Full(key, seed string) float64 {
	n := len(key) + len(seed)
	num := StepRange(1.0, []byte(seed), len(key))
	num = StepRange(num, []byte(key), 0)
	_ = n
	return num
}

// SeedTail computes the result of the recurrence over the trailing
// seedSuffix characters of a seed, for a key of length keyLen — i.e. the
// tail described in spec.md §3's "Partial Pseudohash Cache": characters
// at absolute positions [keyLen+prefixLen, keyLen+prefixLen+len(seedSuffix)).
//
// seedSuffix must be the trailing portion of the seed starting at
// offset prefixLen (the batch character count B): seedSuffix =
// seed[prefixLen:]. The returned value only depends on keyLen (through
// the absolute position offset) and on the trailing characters
// themselves — never on the key's actual content — which is exactly
// why it can be cached per key length instead of per key.
func SeedTail(keyLen int, seedSuffix []byte, prefixLen int) float64 {
	return StepRange(1.0, seedSuffix, keyLen+prefixLen)
}

// ExtendPrefix continues a cached tail over the batch-varying leading
// prefixLen characters of the seed (seed[:prefixLen]), producing the
// per-(keyLen)-per-lane partial hash described in spec.md §3.
// streams.BatchHashCache runs it once per lane per cached key length;
// the search driver does not use that cache.
func ExtendPrefix(tail float64, keyLen int, seedPrefix []byte) float64 {
	return StepRange(tail, seedPrefix, keyLen)
}

// FinishKey continues a cached partial hash over the key-specific head
// characters (positions [0, keyLen)), producing the stream's
// initial_state. This is the only per-stream work left once the
// partial-hash cache for this batch and this key length has been
// computed — O(len(key)) instead of O(len(key)+len(seed)).
func FinishKey(partial float64, key []byte) float64 {
	return StepRange(partial, key, 0)
}
