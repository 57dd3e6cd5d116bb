package tables

// JokerRarity selects which pool of ordinals a joker draw indexes into.
type JokerRarity int

const (
	JokerCommonRarity JokerRarity = iota
	JokerUncommonRarity
	JokerRareRarity
	JokerLegendaryRarity
)

// JokerCommon, JokerUncommon, JokerRare are the shop-reachable joker
// pools, indexed by ordinal within each pool (spec.md §4.3 step 2: "the
// next random integer indexes a lexicographically fixed table").
// JokerLegendary is only reachable via The Soul and is never rolled by
// the ordinary rarity poll.
var (
	JokerCommon = []string{
		"Joker", "GreedyJoker", "LustyJoker", "WrathfulJoker", "GluttonousJoker",
		"JollyJoker", "ZanyJoker", "MadJoker", "CrazyJoker", "DrollJoker",
		"SlyJoker", "WilyJoker", "CleverJoker", "DeviousJoker", "CraftyJoker",
		"HalfJoker", "JokerStencil", "FourFingers", "Mime", "CreditCard",
	}
	JokerUncommon = []string{
		"Blueprint", "Brainstorm", "Splash", "Misprint", "Hack",
		"Fibonacci", "SteelJoker", "Hiker", "Bootstraps", "ToDoList",
		"Cavendish", "Cartomancer", "Baron", "Shoot the Moon", "DNA",
	}
	JokerRare = []string{
		"Blackboard", "Invisible Joker", "Hologram", "Seance",
		"Baseball Card", "Ancient Joker", "Flash Card", "Campfire",
	}
	JokerLegendary = []string{
		"Caino", "Triboulet", "Yorick", "Chicot", "Perkeo",
	}
)

// JokerPool returns the fixed ordinal table for a joker rarity.
func JokerPool(rarity JokerRarity) []string {
	switch rarity {
	case JokerUncommonRarity:
		return JokerUncommon
	case JokerRareRarity:
		return JokerRare
	case JokerLegendaryRarity:
		return JokerLegendary
	default:
		return JokerCommon
	}
}

// JokerPoolOffset returns the cumulative length of every pool ordered
// before rarity's pool in Common, Uncommon, Rare, Legendary order. Added
// to a pool-relative index, it gives the globally-unique joker ordinal
// item.Item stores — a common "Joker" (pool index 0) and the uncommon
// "Blueprint" (pool index 0) must never collide at the same Item
// ordinal, so every joker's identity is this global index, never the
// pool-relative one.
func JokerPoolOffset(rarity JokerRarity) int {
	switch rarity {
	case JokerUncommonRarity:
		return len(JokerCommon)
	case JokerRareRarity:
		return len(JokerCommon) + len(JokerUncommon)
	case JokerLegendaryRarity:
		return len(JokerCommon) + len(JokerUncommon) + len(JokerRare)
	default:
		return 0
	}
}

// JokerGlobalOrdinal resolves a joker name to its globally-unique
// ordinal (JokerPoolOffset(rarity-of-name) + pool-relative index), or
// false if name is in none of the four pools.
func JokerGlobalOrdinal(name string) (int, bool) {
	pools := []struct {
		rarity JokerRarity
		pool   []string
	}{
		{JokerCommonRarity, JokerCommon},
		{JokerUncommonRarity, JokerUncommon},
		{JokerRareRarity, JokerRare},
		{JokerLegendaryRarity, JokerLegendary},
	}
	for _, p := range pools {
		for i, n := range p.pool {
			if n == name {
				return JokerPoolOffset(p.rarity) + i, true
			}
		}
	}
	return 0, false
}

// CannotBeEternal lists jokers excluded from the Eternal sticker roll
// (spec.md §4.3 step 4).
var CannotBeEternal = map[string]bool{
	"CreditCard": true,
}

// Tarots enumerates the 22 major-arcana tarot cards.
var Tarots = []string{
	"TheFool", "TheMagician", "TheHighPriestess", "TheEmpress", "TheEmperor",
	"TheHierophant", "TheLovers", "TheChariot", "Justice", "TheHermit",
	"TheWheelOfFortune", "Strength", "TheHangedMan", "Death", "Temperance",
	"TheDevil", "TheTower", "TheStar", "TheMoon", "TheSun",
	"Judgement", "TheWorld",
}

// Planets enumerates the celestial-pack planet cards.
var Planets = []string{
	"Pluto", "Mercury", "Uranus", "Venus", "Saturn",
	"Jupiter", "Earth", "Mars", "Neptune", "PlanetX",
	"Ceres", "Eris",
}

// Spectrals enumerates the ordinary spectral cards (TheSoul and
// BlackHole are handled as special draws in internal/rungen, not
// ordinary table entries, matching spec.md §4.3's "Soul" rule order:
// roll for Soul first, then Black Hole, then normal spectral).
var Spectrals = []string{
	"Familiar", "Grim", "Incantation", "Talisman", "Aura",
	"Wraith", "Sigil", "Ouija", "Ectoplasm", "Immolate",
	"Ankh", "DejaVu", "Hex", "Trance", "Medium",
	"Cryptid",
}

// Vouchers is the fixed 32-entry voucher table: even ordinals are base
// vouchers, odd ordinals are their upgrade (the odd ordinal's
// prerequisite is always ordinal-1, per spec.md §3's voucher
// invariant).
var Vouchers = []string{
	"Overstock", "OverstockPlus",
	"ClearanceSale", "Liquidation",
	"Hone", "GlowUp",
	"RerollSurplus", "RerollGlut",
	"CrystalBall", "OmenGlobe",
	"Telescope", "Observatory",
	"Grabber", "NachoTong",
	"Wasteful", "Recyclomancy",
	"TarotMerchant", "TarotTycoon",
	"PlanetMerchant", "PlanetTycoon",
	"SeedMoney", "MoneyTree",
	"Blank", "Antimatter",
	"MagicTrick", "Illusion",
	"Hieroglyph", "Petroglyph",
	"DirectorsCut", "Retcon",
	"PaintBrush", "Palette",
}

// VoucherOrdinal resolves a voucher name to its table ordinal.
func VoucherOrdinal(name string) (int, bool) {
	for i, n := range Vouchers {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// VoucherPrerequisite returns the ordinal that must be active before
// ordinal o can be, or (-1, false) if o has no prerequisite (o is
// even — a base voucher).
func VoucherPrerequisite(o int) (int, bool) {
	if o%2 == 1 {
		return o - 1, true
	}
	return -1, false
}

// Tags enumerates the per-ante small/big blind tags.
var Tags = []string{
	"UncommonTag", "RareTag", "NegativeTag", "FoilTag", "HolographicTag",
	"PolychromeTag", "InvestmentTag", "VoucherTag", "BossTag", "StandardTag",
	"CharmTag", "MeteorTag", "BuffoonTag", "HandyTag", "GarbageTag",
	"EtherealTag", "CouponTag", "DoubleTag", "JuggleTag", "D6Tag",
	"TopupTag", "SpeedTag", "OrbitalTag", "EconomyTag",
}

// BossNonFinisherRangeA and BossNonFinisherRangeB are the two
// half-open index ranges spec.md §3/§4.3 defines for non-finisher
// bosses ([0,3) and [8,28)); BossFinisherRange is [3,8).
var (
	BossNonFinisherRangeA = [2]int{0, 3}
	BossFinisherRange     = [2]int{3, 8}
	BossNonFinisherRangeB = [2]int{8, 28}
)

// Bosses is the fixed 28-entry boss ordering.
var Bosses = []string{
	"TheHook", "TheOx", "TheHouse", // [0,3) non-finisher
	"AmberAcorn", "VerdantLeaf", "VioletVessel", "CrimsonHeart", "CeruleanBell", // [3,8) finisher
	"TheWall", "TheWheel", "TheArm", "TheClub", "TheFish", // [8,28) non-finisher
	"ThePsychic", "TheGoad", "TheWater", "TheWindow", "TheManacle",
	"TheEye", "TheMouth", "ThePlant", "TheSerpent", "ThePillar",
	"TheNeedle", "TheHead", "TheTooth", "TheFlint", "TheMark",
}

// BossOrdinal resolves a boss name to its table ordinal.
func BossOrdinal(name string) (int, bool) {
	for i, n := range Bosses {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// IsFinisherBoss reports whether ordinal o is in the finisher range.
func IsFinisherBoss(o int) bool {
	return o >= BossFinisherRange[0] && o < BossFinisherRange[1]
}
