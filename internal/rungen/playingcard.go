package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
)

// rankValues maps a rank draw index to its game rank (2..14, Ace high).
var rankValues = []item.Rank{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}

// PlayingCardStreams bundles the independent streams a standard-pack
// playing card draw consumes: rank, suit, enhancement, seal, and
// edition (spec.md §4.3 "Standard pack").
type PlayingCardStreams struct {
	Rank        *prng.Stream
	Suit        *prng.Stream
	Enhancement *prng.Stream
	Seal        *prng.Stream
	Edition     *prng.Stream
}

// enhancementPool and sealPool are the uniform draw pools; enhancement
// and seal are comparatively rare so a single roll decides "none" vs the
// full pool in the reference, reproduced here as a flat uniform index
// into a pool whose first entry is the "none" outcome.
var (
	enhancementPool = []item.Enhancement{
		item.EnhancementNone, item.EnhancementBonus, item.EnhancementMult,
		item.EnhancementWild, item.EnhancementGlass, item.EnhancementSteel,
		item.EnhancementStone, item.EnhancementGold, item.EnhancementLucky,
	}
	sealPool = []item.Seal{
		item.SealNone, item.SealGold, item.SealRed, item.SealBlue, item.SealPurple,
	}
)

// DrawPlayingCard draws one standard playing card: rank, suit,
// enhancement, seal, then edition, in that fixed order.
func DrawPlayingCard(s PlayingCardStreams) item.Item {
	rank := prng.NextRandomElement(s.Rank, rankValues)
	suit := item.Suit(prng.NextRandomInt(s.Suit, 0, 3))
	enh := prng.NextRandomElement(s.Enhancement, enhancementPool)
	seal := prng.NextRandomElement(s.Seal, sealPool)

	it := item.New(item.CategoryPlayingCard, 0)
	it = it.WithRank(rank)
	it = it.WithSuit(suit)
	it = it.WithEnhancement(enh)
	it = it.WithSeal(seal)
	it = it.WithEdition(RollEdition(s.Edition, 1.0))
	return it
}
