// Package tables holds the opaque static domain data spec.md §1 treats
// as "opaque static data the core consumes by name": joker/tarot/
// planet/spectral/voucher/tag/boss enumerations and the probability
// weights that drive the shop/pack rate roll. Individual item formulas
// are fixed by the reference game and reproduced bit-exactly by the
// generators in internal/rungen; this package only owns the lookup
// tables those generators index into.
package tables

// ShopCategory is the roll outcome of the base shop rate table.
type ShopCategory int

const (
	ShopJoker ShopCategory = iota
	ShopTarot
	ShopPlanet
	ShopPlayingCard
	ShopSpectral
)

// ShopRates mirrors spec.md §4.3 step 1's cumulative rate table. Ghost
// deck and voucher-driven multipliers are applied by the caller on top
// of these base weights — this table holds only the White-stake, Red-
// deck, no-voucher baseline.
var ShopRates = map[ShopCategory]float64{
	ShopJoker:       20,
	ShopTarot:       4,
	ShopPlanet:      4,
	ShopPlayingCard: 0,
	ShopSpectral:    0,
}

// GhostDeckSpectralRate is the spectral weight Ghost deck adds to the
// base shop rate table.
const GhostDeckSpectralRate = 2.0

// MagicTrickPlayingCardRate is the playing-card weight the MagicTrick
// voucher adds to the base shop rate table.
const MagicTrickPlayingCardRate = 4.0

// TarotMerchantMultiplier / TarotTycoonMultiplier scale the tarot shop
// rate when the corresponding voucher is active (they do not stack;
// Tycoon supersedes Merchant).
const (
	TarotMerchantMultiplier = 2.4
	TarotTycoonMultiplier   = 8.0
)

// PlanetMerchantMultiplier / PlanetTycoonMultiplier are the planet-rate
// analogues of the tarot multipliers above.
const (
	PlanetMerchantMultiplier = 2.4
	PlanetTycoonMultiplier   = 8.0
)

// Rarity thresholds for the joker rarity poll (spec.md §4.3 step 2):
// roll > RareThreshold is Rare, > UncommonThreshold is Uncommon, else
// Common. Legendary is never rolled directly — it is only produced via
// The Soul.
const (
	JokerRareThreshold     = 0.95
	JokerUncommonThreshold = 0.70
)

// Edition roll thresholds (spec.md §4.3 step 3). r is the stream's
// edition rate (1.0 unless a source multiplies it).
const (
	EditionNegativeThreshold = 0.997
)

// EditionPolychromeThreshold, EditionHolographicThreshold, and
// EditionFoilThreshold are functions of the edition rate r, not fixed
// constants: threshold = 1 - base*r.
const (
	EditionPolychromeBase = 0.006
	EditionHolographicBase = 0.02
	EditionFoilBase        = 0.04
)

// StickerEternalThreshold / StickerPerishableThreshold gate the
// Eternal/Perishable roll at Black stake or higher.
const (
	StickerEternalThreshold    = 0.7
	StickerPerishableThreshold = 0.4
)

// StickerRentalThreshold gates the Rental roll at Gold stake.
const StickerRentalThreshold = 0.7

// SoulThreshold is the roll above which an Arcana/Spectral pack slot
// becomes The Soul (spec.md §4.3 "Soul" and §6 compatibility surface).
const SoulThreshold = 0.997

// ResampleAssertBound is the iteration count past which a resample loop
// is considered a programming bug rather than data-dependent (spec.md
// §4.3 "Voucher", §7).
const ResampleAssertBound = 1000
