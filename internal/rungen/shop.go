package rungen

import (
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/tables"
)

// shopOrder fixes the iteration order the cumulative roll walks, so the
// same roll always lands in the same category regardless of map
// iteration order.
var shopOrder = []tables.ShopCategory{
	tables.ShopJoker, tables.ShopTarot, tables.ShopPlanet,
	tables.ShopPlayingCard, tables.ShopSpectral,
}

// RollShopCategory draws the next shop slot's category, per spec.md
// §4.3 step 1: base rates adjusted for Ghost deck, the MagicTrick
// voucher, and the Tarot/Planet Merchant-or-Tycoon multipliers (Tycoon
// supersedes Merchant when both are somehow active), then a single
// cumulative roll over the adjusted weights.
func RollShopCategory(stream *prng.Stream, deck tables.Deck, vr VoucherRates) tables.ShopCategory {
	rates := make(map[tables.ShopCategory]float64, len(tables.ShopRates))
	for k, v := range tables.ShopRates {
		rates[k] = v
	}
	if deck == tables.DeckGhost {
		rates[tables.ShopSpectral] += tables.GhostDeckSpectralRate
	}
	if vr.MagicTrick {
		rates[tables.ShopPlayingCard] += tables.MagicTrickPlayingCardRate
	}
	switch {
	case vr.TarotTycoon:
		rates[tables.ShopTarot] *= tables.TarotTycoonMultiplier
	case vr.TarotMerchant:
		rates[tables.ShopTarot] *= tables.TarotMerchantMultiplier
	}
	switch {
	case vr.PlanetTycoon:
		rates[tables.ShopPlanet] *= tables.PlanetTycoonMultiplier
	case vr.PlanetMerchant:
		rates[tables.ShopPlanet] *= tables.PlanetMerchantMultiplier
	}

	total := 0.0
	for _, c := range shopOrder {
		total += rates[c]
	}
	roll := clampUnit(prng.NextRandom(stream)) * total

	acc := 0.0
	for _, c := range shopOrder {
		acc += rates[c]
		if roll < acc {
			return c
		}
	}
	return shopOrder[len(shopOrder)-1]
}
