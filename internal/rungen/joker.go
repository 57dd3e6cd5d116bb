package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/tables"
)

// JokerStreams bundles the independent streams a single joker draw
// consumes. Each field is drawn at most once per joker, in this fixed
// order (rarity, ordinal, edition, eternal/perishable, rental), matching
// the reference's per-facet stream separation noted in spec.md §4.2.
type JokerStreams struct {
	Rarity   *prng.Stream
	Ordinal  *prng.Stream // pool-index draw, shared across rarities
	Edition  *prng.Stream
	Eternal  *prng.Stream
	Rental   *prng.Stream
}

// RollJokerRarity polls the rarity tier (spec.md §4.3 step 2). Legendary
// is excluded — it is only reachable through The Soul.
func RollJokerRarity(stream *prng.Stream) tables.JokerRarity {
	r := clampUnit(prng.NextRandom(stream))
	switch {
	case r > tables.JokerRareThreshold:
		return tables.JokerRareRarity
	case r > tables.JokerUncommonThreshold:
		return tables.JokerUncommonRarity
	default:
		return tables.JokerCommonRarity
	}
}

// editionThreshold turns the base rarity weight into the roll boundary
// for that edition tier at rate r: threshold = 1 - base*r (spec.md §4.3
// step 3). r == 1.0 for every ordinary joker stream; some effects can
// raise it, boosting better editions' odds.
func editionThreshold(base, r float64) float64 {
	return 1 - base*r
}

// RollEdition draws the edition tier for a card at edition rate r
// (spec.md §4.3 step 3: Negative uses a fixed threshold; Polychrome,
// Holographic, and Foil scale with r).
func RollEdition(stream *prng.Stream, r float64) item.Edition {
	roll := clampUnit(prng.NextRandom(stream))
	switch {
	case roll > tables.EditionNegativeThreshold:
		return item.EditionNegative
	case roll > editionThreshold(tables.EditionPolychromeBase, r):
		return item.EditionPolychrome
	case roll > editionThreshold(tables.EditionHolographicBase, r):
		return item.EditionHolographic
	case roll > editionThreshold(tables.EditionFoilBase, r):
		return item.EditionFoil
	default:
		return item.EditionNone
	}
}

// RollStickers draws the Eternal/Perishable and Rental sticker bits,
// gated by stake (spec.md §4.3 step 4, §8 boundary behavior). Each gate
// either consumes its stream or leaves it untouched — a stake that
// doesn't allow a facet must never draw from that facet's stream, or the
// RNG desyncs against the reference.
func RollStickers(js JokerStreams, stake tables.Stake, jokerName string) item.Sticker {
	var s item.Sticker
	if stake.AllowsEternalPerishable() && !tables.CannotBeEternal[jokerName] {
		r := clampUnit(prng.NextRandom(js.Eternal))
		switch {
		case r > tables.StickerEternalThreshold:
			s |= item.StickerEternal
		case r > tables.StickerPerishableThreshold:
			s |= item.StickerPerishable
		}
	}
	if stake.AllowsRental() {
		r := clampUnit(prng.NextRandom(js.Rental))
		if r > tables.StickerRentalThreshold {
			s |= item.StickerRental
		}
	}
	return s
}

// DrawJoker produces one joker Item: rarity, then ordinal within that
// rarity's pool, then edition, then stickers, in that fixed draw order.
// The Item stores the globally-unique joker ordinal (pool offset +
// pool-relative index), not the pool-relative index alone — a common
// "Joker" and the uncommon "Blueprint" both sit at pool-relative index 0
// and must not collide at the same Item identity.
func DrawJoker(js JokerStreams, stake tables.Stake, editionRate float64) item.Item {
	rarity := RollJokerRarity(js.Rarity)
	pool := tables.JokerPool(rarity)
	poolIndex := prng.NextRandomInt(js.Ordinal, 0, len(pool)-1)

	it := item.New(item.CategoryJoker, tables.JokerPoolOffset(rarity)+poolIndex)
	it = it.WithEdition(RollEdition(js.Edition, editionRate))
	it = it.WithStickers(RollStickers(js, stake, pool[poolIndex]))
	return it
}

// DrawLegendaryJoker produces the legendary Item a Soul card resolves
// to, drawing only the ordinal (legendaries never roll an edition or
// stickers of their own — spec.md §4.3 "Soul").
func DrawLegendaryJoker(stream *prng.Stream) item.Item {
	poolIndex := prng.NextRandomInt(stream, 0, len(tables.JokerLegendary)-1)
	return item.New(item.CategoryJoker, tables.JokerPoolOffset(tables.JokerLegendaryRarity)+poolIndex)
}
