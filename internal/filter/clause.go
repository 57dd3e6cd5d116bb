// Package filter compiles a declarative filter document (spec.md §6's
// configuration surface) into the two-stage predicate §4.6 describes: a
// cheap over-approximate prefilter pass and an exhaustive scalar
// verification pass, plus the SHOULD-clause scoring and cutoff rules.
package filter

import "github.com/rawblock/seedsearch/internal/item"

// ClauseType is the closed vocabulary of clause kinds spec.md §6 lists.
type ClauseType string

const (
	ClauseJoker         ClauseType = "joker"
	ClauseSoulJoker      ClauseType = "souljoker"
	ClauseTarotCard     ClauseType = "tarotcard"
	ClausePlanetCard    ClauseType = "planetcard"
	ClauseSpectralCard  ClauseType = "spectralcard"
	ClauseSmallBlindTag ClauseType = "smallblindtag"
	ClauseBigBlindTag   ClauseType = "bigblindtag"
	ClauseVoucher       ClauseType = "voucher"
	ClausePlayingCard   ClauseType = "playingcard"
	ClauseBoss          ClauseType = "boss"
)

// Wildcard values a clause's Value may hold instead of a specific item
// name (spec.md §6).
const (
	WildcardAny          = "any"
	WildcardAnyJoker     = "anyjoker"
	WildcardAnyCommon    = "anycommon"
	WildcardAnyUncommon  = "anyuncommon"
	WildcardAnyRare      = "anyrare"
	WildcardAnyLegendary = "anylegendary"
)

// Sources narrows which slot kinds a clause's walk considers.
type Sources struct {
	ShopSlots   []int    `json:"shopSlots,omitempty"`
	PackSlots   []int    `json:"packSlots,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	RequireMega bool     `json:"requireMega,omitempty"`
}

// Clause is one compiled-from-config predicate: a target item/value to
// look for across a set of antes, with optional refinements.
type Clause struct {
	Type    ClauseType `json:"type" validate:"required,oneof=joker souljoker tarotcard planetcard spectralcard smallblindtag bigblindtag voucher playingcard boss"`
	Value   string     `json:"value" validate:"required"`
	Antes   []int      `json:"antes" validate:"required,min=1,dive,min=1"`
	Score   int        `json:"score,omitempty"`
	Min     int        `json:"min,omitempty"`

	Edition     string `json:"edition,omitempty"`
	Stickers    []string `json:"stickers,omitempty"`
	Suit        string `json:"suit,omitempty"`
	Rank        string `json:"rank,omitempty"`
	Enhancement string `json:"enhancement,omitempty"`
	Seal        string `json:"seal,omitempty"`

	Sources Sources `json:"sources,omitempty"`

	// negate is set by resolveClause during Compile, not by the document
	// itself — the document keeps must/mustNot/should as three separate
	// lists (spec.md §6); Compile flattens must+mustNot into one ordered
	// slice tagged with this bool so the cost-heuristic sort can
	// interleave them.
	negate bool
}

// costRank implements the static cost heuristic of spec.md §4.6: lower
// runs first. Unlisted combinations fall back to a mid-range default so
// an unanticipated clause shape never sorts before a cheap one.
func (c Clause) costRank() int {
	switch {
	case c.Type == ClauseSoulJoker && c.Value != WildcardAny && c.Value != WildcardAnyLegendary:
		return 1
	case c.Type == ClauseJoker && isLegendaryValue(c.Value):
		return 2
	case c.Type == ClauseVoucher:
		return 3
	case c.Type == ClauseSmallBlindTag || c.Type == ClauseBigBlindTag:
		return 6
	case c.Type == ClauseJoker && isRareValue(c.Value):
		return 8
	case c.Type == ClauseTarotCard || c.Type == ClausePlanetCard || c.Type == ClauseSpectralCard:
		if c.Value != WildcardAny {
			return 11
		}
		return 15
	case c.Type == ClauseJoker:
		return 18
	case c.Type == ClausePlayingCard:
		return 30
	default:
		return 20
	}
}

func isLegendaryValue(v string) bool { return v == WildcardAnyLegendary || legendarySet[v] }
func isRareValue(v string) bool      { return v == WildcardAnyRare || rareSet[v] }

var legendarySet = map[string]bool{}
var rareSet = map[string]bool{}

func init() {
	for _, n := range []string{"Caino", "Triboulet", "Yorick", "Chicot", "Perkeo"} {
		legendarySet[n] = true
	}
	for _, n := range []string{
		"Blackboard", "Invisible Joker", "Hologram", "Seance",
		"Baseball Card", "Ancient Joker", "Flash Card", "Campfire",
	} {
		rareSet[n] = true
	}
}

// matchesWildcard reports whether it satisfies a clause's wildcard (or
// exact-name) value. Exact-name matching against the opaque tables is
// the compiler's job (resolved once at Compile time into an ordinal);
// this only handles the wildcard family, which needs the item's runtime
// category/rarity rather than a fixed ordinal.
func matchesWildcard(value string, it item.Item, rarityOf func(item.Item) string) bool {
	switch value {
	case WildcardAny:
		return true
	case WildcardAnyJoker:
		return it.Category() == item.CategoryJoker
	case WildcardAnyCommon:
		return it.Category() == item.CategoryJoker && rarityOf(it) == "common"
	case WildcardAnyUncommon:
		return it.Category() == item.CategoryJoker && rarityOf(it) == "uncommon"
	case WildcardAnyRare:
		return it.Category() == item.CategoryJoker && rarityOf(it) == "rare"
	case WildcardAnyLegendary:
		return it.Category() == item.CategoryJoker && rarityOf(it) == "legendary"
	default:
		return false
	}
}
