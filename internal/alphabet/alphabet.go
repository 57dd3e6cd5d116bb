// Package alphabet defines the 35-symbol seed alphabet and its frozen
// ordering. Every seed in the search space is a 1..8 character string
// drawn from this alphabet; the ordering is part of the compatibility
// surface in spec.md §6 and must never be re-sorted or regenerated.
package alphabet

// Symbols is the frozen 35-character alphabet: digits 1-9 (no 0) followed
// by the full uppercase alphabet A-Z (9 + 26 = 35; no letters excluded —
// the real Balatro/Motely seed charset includes I/O/S/U/V). Index order
// is significant — it is the digit-vector order the sequential search
// driver enumerates in.
const Symbols = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the alphabet (35).
const Size = len(Symbols)

// MaxLength is the maximum seed length the engine searches over.
const MaxLength = 8

// indexOf is a reverse lookup built once at init time.
var indexOf [256]int8

func init() {
	for i := range indexOf {
		indexOf[i] = -1
	}
	for i := 0; i < Size; i++ {
		indexOf[Symbols[i]] = int8(i)
	}
}

// Index returns the position of c in Symbols, or -1 if c is not a valid
// seed character.
func Index(c byte) int8 {
	return indexOf[c]
}

// Valid reports whether s is a well-formed seed: 1..MaxLength characters,
// each drawn from Symbols.
func Valid(s string) bool {
	if len(s) == 0 || len(s) > MaxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if Index(s[i]) < 0 {
			return false
		}
	}
	return true
}

// AtIndex returns the i-th symbol of the alphabet. Panics if i is out of
// range; callers in the hot path precompute valid indices.
func AtIndex(i int) byte {
	return Symbols[i]
}
