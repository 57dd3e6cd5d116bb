package filter

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/runstate"
	"github.com/rawblock/seedsearch/internal/tables"
)

// EvaluateScalar runs the exhaustive Stage 2 walk spec.md §4.6 describes:
// every MUST/MUST-NOT clause checked with full refinements, then SHOULD
// scoring. It returns whether the seed passes, its total score, and the
// per-SHOULD-clause occurrence counts (parallel to compiled.Should).
func EvaluateScalar(seed string, compiled *Compiled) (matched bool, score int, perClauseCounts []int) {
	return evaluate(seed, compiled, true)
}

// EvaluatePrefilter runs the cheap Stage 1 pass: the same per-ante
// traversal, but item/clause matching ignores edition/sticker/suit/rank/
// enhancement/seal refinements and slot-source narrowing, and MUST-NOT
// clauses are skipped (a widened count would make a negated clause
// stricter, not looser). Because it only ever widens what a MUST clause
// accepts relative to EvaluateScalar, it can never reject a seed
// EvaluateScalar would accept (Testable Property 2's "no false
// negatives"), while still collapsing on the cheap,
// highly-selective clauses (soul-joker, legendary joker, voucher) the
// compiled cost order runs first.
func EvaluatePrefilter(seed string, compiled *Compiled) bool {
	matched, _, _ := evaluate(seed, compiled, false)
	return matched
}

func evaluate(seed string, compiled *Compiled, exact bool) (bool, int, []int) {
	state := &runstate.State{}
	ss := newSeedStreams(seed)

	top := maxAnte(compiled.MustMustNot)
	if shouldTop := maxAnte(compiled.Should); shouldTop > top {
		top = shouldTop
	}

	antes := make(map[int]anteResult, top)
	for a := 1; a <= top; a++ {
		antes[a] = generateAnte(a, compiled.Deck, compiled.Stake, state, ss)
	}

	for _, cc := range compiled.MustMustNot {
		if cc.negate && !exact {
			continue
		}
		total := 0
		for _, a := range cc.Antes {
			total += countInAnte(cc, antes[a], exact)
		}
		threshold := cc.Min
		if threshold < 1 {
			threshold = 1
		}
		passed := total >= threshold
		if cc.negate {
			passed = !passed
		}
		if !passed {
			return false, 0, nil
		}
	}

	score := 1
	perClauseCounts := make([]int, len(compiled.Should))
	for i, cc := range compiled.Should {
		total := 0
		for _, a := range cc.Antes {
			total += countInAnte(cc, antes[a], exact)
		}
		perClauseCounts[i] = total
		threshold := cc.Min
		if threshold < 1 {
			threshold = 1
		}
		if total >= threshold {
			score += total * cc.Score
		}
	}
	return true, score, perClauseCounts
}

// countInAnte counts how many times cc's target appears in ante result
// ar, walking the slot kinds relevant to cc.Type. When exact is false,
// every slot kind relevant to the clause type is walked regardless of
// cc.Sources — a relaxation that can only increase the count, never
// miss an occurrence Stage 2 would find. When exact is true, cc.Sources
// narrows joker/soul-joker clauses only: shop items are walked only if
// shopSlots is non-empty and then only at the listed indices; the
// Buffoon, Arcana and Spectral packs are walked whole if packSlots is
// non-empty, without regard to which indices it lists; a joker clause
// with neither list counts nothing. Consumable clauses always walk their
// pack and every shop slot.
func countInAnte(cc compiledClause, ar anteResult, exact bool) int {
	count := 0
	lenCommon, lenUncommon, lenRare := len(tables.JokerCommon), len(tables.JokerUncommon), len(tables.JokerRare)
	check := func(it item.Item) {
		if !itemMatchesBase(cc, it, lenCommon, lenUncommon, lenRare) {
			return
		}
		if exact && !itemMatchesExact(cc, it) {
			return
		}
		count++
	}

	switch cc.Type {
	case ClauseJoker, ClauseSoulJoker:
		if !exact || len(cc.Sources.ShopSlots) > 0 {
			for i, it := range ar.ShopItems {
				if exact && !slotSelected(cc.Sources.ShopSlots, i) {
					continue
				}
				check(it)
			}
		}
		if !exact || len(cc.Sources.PackSlots) > 0 {
			for i := 0; i < ar.Buffoon.Len(); i++ {
				check(ar.Buffoon.At(i))
			}
			for i := 0; i < ar.Arcana.Len(); i++ {
				check(ar.Arcana.At(i))
			}
			for i := 0; i < ar.Spectral.Len(); i++ {
				check(ar.Spectral.At(i))
			}
		}
	case ClauseTarotCard:
		for i := 0; i < ar.Arcana.Len(); i++ {
			check(ar.Arcana.At(i))
		}
		for _, it := range ar.ShopItems {
			check(it)
		}
	case ClausePlanetCard:
		for i := 0; i < ar.Celestial.Len(); i++ {
			check(ar.Celestial.At(i))
		}
		for _, it := range ar.ShopItems {
			check(it)
		}
	case ClauseSpectralCard:
		for i := 0; i < ar.Spectral.Len(); i++ {
			check(ar.Spectral.At(i))
		}
		for _, it := range ar.ShopItems {
			check(it)
		}
	case ClauseSmallBlindTag:
		check(ar.SmallTag)
	case ClauseBigBlindTag:
		check(ar.BigTag)
	case ClauseVoucher:
		check(ar.Voucher)
	case ClauseBoss:
		check(ar.Boss)
	case ClausePlayingCard:
		for i := 0; i < ar.Standard.Len(); i++ {
			check(ar.Standard.At(i))
		}
	}
	return count
}

func slotSelected(slots []int, i int) bool {
	if len(slots) == 0 {
		return true
	}
	for _, s := range slots {
		if s == i {
			return true
		}
	}
	return false
}
