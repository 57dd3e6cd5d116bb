// Package streams names and constructs the PRNG streams spec.md §4.2
// describes: the closed vocabulary of domain-prefix + ante-scoped-suffix
// keys, a batch-level partial-hash cache that computes their initial
// states per lane from a shared seed suffix, and resample-stream
// chaining for duplicate rejection.
package streams

import "strconv"

// Key vocabulary (spec.md §6 compatibility surface). These builders are
// the single source of truth for stream naming — nothing else in the
// module concatenates stream key strings by hand.
func ShopCategoryKey(ante int) string { return "shop" + itoa(ante) }
func ShopJokerKey(group, ante int) string {
	return "Joker" + itoa(group) + itoa(ante)
}
func JokerRarityKey(ante int) string     { return "rarity" + itoa(ante) }
func JokerEditionKey(ante int) string    { return "edi" + itoa(ante) }
func JokerStickerKey(ante int) string    { return "stake" + itoa(ante) }
func JokerRentalKey(ante int) string     { return "rental" + itoa(ante) }
func SmallTagKey(ante int) string        { return "Tag" + itoa(ante) + "_small" }
func BigTagKey(ante int) string          { return "Tag" + itoa(ante) + "_big" }
func PlayingCardRankKey(ante int) string        { return "rank" + itoa(ante) }
func PlayingCardSuitKey(ante int) string        { return "suit" + itoa(ante) }
func PlayingCardEnhancementKey(ante int) string { return "enhancement" + itoa(ante) }
func PlayingCardSealKey(ante int) string        { return "seal" + itoa(ante) }
func PlayingCardEditionKey(ante int) string     { return "edi_card" + itoa(ante) }
func TarotKey(ante int) string           { return "Tarot" + itoa(ante) }
func PlanetKey(ante int) string          { return "Planet" + itoa(ante) }
func SpectralKey(ante int) string        { return "Spectral" + itoa(ante) }
func VoucherKey(ante int) string         { return "Voucher" + itoa(ante) }
func TagKey(ante int) string             { return "Tag" + itoa(ante) }
func BossKey() string                    { return "boss" }
func ArcanaPackKey(ante int) string      { return "ar1" + itoa(ante) }
func CelestialPackKey(ante int) string   { return "pl1" + itoa(ante) }
func SpectralPackKey(ante int) string     { return "spe" + itoa(ante) }
func StandardPackKey(ante int) string    { return "sta" + itoa(ante) }
func BuffoonPackKey(ante int) string      { return "buf" + itoa(ante) }
func SoulJokerKey(ante int) string        { return "sou" + itoa(ante) }
func PackKindKey(ante, slot int) string   { return "pack" + itoa(ante) + "_" + itoa(slot) }

// ResampleKey builds the n-th resample key for a base stream key, per
// spec.md §4.2: "base_key + \"_resample\" + (n+1) for n >= 1".
func ResampleKey(baseKey string, n int) string {
	return baseKey + "_resample" + itoa(n+1)
}

func itoa(i int) string { return strconv.Itoa(i) }
