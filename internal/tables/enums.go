package tables

// Deck is the run's starting deck, affecting which streams are active
// (e.g. Ghost deck enables the shop spectral rate).
type Deck int

const (
	DeckRed Deck = iota
	DeckBlue
	DeckYellow
	DeckGreen
	DeckBlack
	DeckMagic
	DeckNebula
	DeckGhost
	DeckAbandoned
	DeckCheckered
	DeckZodiac
	DeckPainted
	DeckAnaglyph
	DeckPlasma
	DeckErratic
)

var deckNames = map[string]Deck{
	"Red": DeckRed, "Blue": DeckBlue, "Yellow": DeckYellow, "Green": DeckGreen,
	"Black": DeckBlack, "Magic": DeckMagic, "Nebula": DeckNebula, "Ghost": DeckGhost,
	"Abandoned": DeckAbandoned, "Checkered": DeckCheckered, "Zodiac": DeckZodiac,
	"Painted": DeckPainted, "Anaglyph": DeckAnaglyph, "Plasma": DeckPlasma,
	"Erratic": DeckErratic,
}

// ParseDeck resolves a deck's enum name. Unknown names are a
// configuration error (spec.md §7), reported by the caller.
func ParseDeck(name string) (Deck, bool) {
	d, ok := deckNames[name]
	return d, ok
}

// Stake is the run's difficulty tier, gating which sticker kinds can
// appear.
type Stake int

const (
	StakeWhite Stake = iota
	StakeRed
	StakeGreen
	StakeBlack
	StakeBlue
	StakePurple
	StakeOrange
	StakeGold
)

var stakeNames = map[string]Stake{
	"White": StakeWhite, "Red": StakeRed, "Green": StakeGreen, "Black": StakeBlack,
	"Blue": StakeBlue, "Purple": StakePurple, "Orange": StakeOrange, "Gold": StakeGold,
}

// ParseStake resolves a stake's enum name.
func ParseStake(name string) (Stake, bool) {
	s, ok := stakeNames[name]
	return s, ok
}

// AllowsEternalPerishable reports whether this stake is Black or higher
// (spec.md §8 boundary behavior: "Stake below Black must not produce
// any Eternal/Perishable stickers").
func (s Stake) AllowsEternalPerishable() bool { return s >= StakeBlack }

// AllowsRental reports whether this stake is Gold (the only stake that
// rolls Rental stickers).
func (s Stake) AllowsRental() bool { return s >= StakeGold }
