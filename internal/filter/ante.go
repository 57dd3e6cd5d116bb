package filter

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/rungen"
	"github.com/rawblock/seedsearch/internal/runstate"
	"github.com/rawblock/seedsearch/internal/streams"
	"github.com/rawblock/seedsearch/internal/tables"
)

// shopSlotsPerAnte and packSlotSize fix the per-ante shop/pack shape this
// evaluator simulates. The reference game's exact shop economy (how many
// slots are offered, how pack kinds rotate) is run-configuration
// dependent; this evaluator instead gives every ante one full set of
// each pack kind plus a fixed run of shop slots. A shop_slots index of
// shopSlotsPerAnte or more selects no slot and so matches nothing — see
// DESIGN.md's Open Question on shop/pack scheduling.
const (
	shopSlotsPerAnte = 6
	packSlotSize     = 4
)

// anteResult is everything one ante's simulated traversal produced, in
// the fixed order spec.md §5 requires ("items for one seed are produced
// in a strict, deterministic order").
type anteResult struct {
	Voucher          item.Item
	SmallTag, BigTag item.Item
	Boss             item.Item
	ShopItems        []item.Item
	Arcana, Celestial, Spectral, Buffoon, Standard item.Set
}

// seedStreams lazily constructs and caches one streams.Source per key
// for a single evaluate call, so every draw on the same key within that
// call advances one shared stream instead of redoing the pseudohash
// recurrence. Stage 1 and Stage 2 each build their own seedStreams.
type seedStreams struct {
	seed  string
	cache map[string]*streams.Source
}

func newSeedStreams(seed string) *seedStreams {
	return &seedStreams{seed: seed, cache: make(map[string]*streams.Source)}
}

func (s *seedStreams) get(key string) *streams.Source {
	if src, ok := s.cache[key]; ok {
		return src
	}
	src := streams.New(key, s.seed, streams.Capabilities{})
	s.cache[key] = src
	return src
}

func (s *seedStreams) stream(key string) *prng.Stream { return &s.get(key).State }

func jokerStreamsFor(ss *seedStreams, ante int) rungen.JokerStreams {
	return rungen.JokerStreams{
		Rarity:  ss.stream(streams.JokerRarityKey(ante)),
		Ordinal: ss.stream(streams.ShopJokerKey(1, ante)),
		Edition: ss.stream(streams.JokerEditionKey(ante)),
		Eternal: ss.stream(streams.JokerStickerKey(ante)),
		Rental:  ss.stream(streams.JokerRentalKey(ante)),
	}
}

func playingCardStreamsFor(ss *seedStreams, ante int) rungen.PlayingCardStreams {
	return rungen.PlayingCardStreams{
		Rank:        ss.stream(streams.PlayingCardRankKey(ante)),
		Suit:        ss.stream(streams.PlayingCardSuitKey(ante)),
		Enhancement: ss.stream(streams.PlayingCardEnhancementKey(ante)),
		Seal:        ss.stream(streams.PlayingCardSealKey(ante)),
		Edition:     ss.stream(streams.PlayingCardEditionKey(ante)),
	}
}

// voucherRatesFromState derives the shop-rate multipliers active from
// already-activated vouchers, by resolving each relevant voucher's fixed
// ordinal once and then querying runstate.
func voucherRatesFromState(state *runstate.State) rungen.VoucherRates {
	active := func(name string) bool {
		o, ok := tables.VoucherOrdinal(name)
		return ok && state.IsVoucherActive(o)
	}
	return rungen.VoucherRates{
		TarotMerchant:  active("TarotMerchant"),
		TarotTycoon:    active("TarotTycoon"),
		PlanetMerchant: active("PlanetMerchant"),
		PlanetTycoon:   active("PlanetTycoon"),
		MagicTrick:     active("MagicTrick"),
	}
}

// generateAnte runs the full, order-faithful per-ante traversal: voucher,
// blind tags, boss, shop slots, then one of each pack kind. Every slot is
// drawn regardless of whether any clause cares about it, keeping every
// sub-stream's RNG aligned with the reference exactly as spec.md §4.6
// requires ("shop-item draws advance all sub-streams even when the slot
// is not of interest").
func generateAnte(ante int, deck tables.Deck, stake tables.Stake, state *runstate.State, ss *seedStreams) anteResult {
	var res anteResult

	voucherSrc := ss.get(streams.VoucherKey(ante))
	res.Voucher = rungen.DrawVoucher(voucherSrc, state)
	state.ActivateVoucher(res.Voucher.Ordinal())

	res.SmallTag = rungen.DrawTag(ss.stream(streams.SmallTagKey(ante)))
	res.BigTag = rungen.DrawTag(ss.stream(streams.BigTagKey(ante)))

	res.Boss = rungen.DrawBoss(ss.stream(streams.BossKey()), ante, state)

	vr := voucherRatesFromState(state)
	res.ShopItems = make([]item.Item, 0, shopSlotsPerAnte)
	for slot := 0; slot < shopSlotsPerAnte; slot++ {
		cat := rungen.RollShopCategory(ss.stream(streams.ShopCategoryKey(ante)), deck, vr)
		var it item.Item
		switch cat {
		case tables.ShopJoker:
			it = rungen.DrawJoker(jokerStreamsFor(ss, ante), stake, 1.0)
		case tables.ShopTarot:
			it = rungen.DrawTarot(ss.stream(streams.TarotKey(ante)))
		case tables.ShopPlanet:
			it = rungen.DrawPlanet(ss.stream(streams.PlanetKey(ante)))
		case tables.ShopSpectral:
			it = rungen.DrawSpectral(ss.stream(streams.SpectralKey(ante)))
		case tables.ShopPlayingCard:
			it = rungen.DrawPlayingCard(playingCardStreamsFor(ss, ante))
		}
		res.ShopItems = append(res.ShopItems, it)
	}

	res.Arcana = rungen.GenerateArcanaPack(ss.get(streams.ArcanaPackKey(ante)), ss.get(streams.SoulJokerKey(ante)), packSlotSize, ante, 0, state)
	res.Celestial = rungen.GenerateCelestialPack(ss.get(streams.CelestialPackKey(ante)), packSlotSize)
	res.Spectral = rungen.GenerateSpectralPack(ss.get(streams.SpectralPackKey(ante)), ss.get(streams.SoulJokerKey(ante)), packSlotSize, ante, 1, state)
	res.Buffoon = rungen.GenerateBuffoonPack(ss.get(streams.BuffoonPackKey(ante)), jokerStreamsFor(ss, ante), stake, 1.0, packSlotSize, state)
	res.Standard = rungen.GenerateStandardPack(playingCardStreamsFor(ss, ante), packSlotSize)

	return res
}

func maxAnte(clauses []compiledClause) int {
	max := 1
	for _, c := range clauses {
		for _, a := range c.Antes {
			if a > max {
				max = a
			}
		}
	}
	return max
}
