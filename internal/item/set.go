package item

// MaxSetSize is the fixed capacity of an ItemSet — large enough for the
// biggest booster pack (5 cards) plus headroom, per spec.md §3's "≤ 8"
// bound.
const MaxSetSize = 8

// Set is a fixed-capacity, append/contains-only ordered sequence of
// Items, used for pack contents and (bounded) owned-joker tracking.
// It never allocates: callers own the Set by value.
type Set struct {
	items [MaxSetSize]Item
	n     int
}

// Append adds it to the set. Panics if the set is already at capacity —
// callers never append beyond a pack's declared size, so hitting this
// is a programming bug, not a data condition.
func (s *Set) Append(it Item) {
	if s.n >= MaxSetSize {
		panic("item: Set.Append called at capacity")
	}
	s.items[s.n] = it
	s.n++
}

// Len returns the number of items currently held.
func (s *Set) Len() int { return s.n }

// At returns the i-th item in insertion order.
func (s *Set) At(i int) Item { return s.items[i] }

// ContainsBase reports whether any item in the set shares category and
// ordinal with it, ignoring edition/enhancement/seal/rank/suit/stickers
// — the duplicate check item generators use before resampling.
func (s *Set) ContainsBase(it Item) bool {
	for i := 0; i < s.n; i++ {
		if SameBase(s.items[i], it) {
			return true
		}
	}
	return false
}

// Reset empties the set for reuse without reallocating.
func (s *Set) Reset() {
	s.n = 0
}
