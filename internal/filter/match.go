package filter

import "github.com/rawblock/seedsearch/internal/item"

// jokerRarityName classifies a joker item's globally-unique ordinal
// (tables.JokerGlobalOrdinal: pool offset + pool-relative index, as
// rungen.DrawJoker/DrawLegendaryJoker store it) back into the
// rarity-name string matchesWildcard compares against, for the
// any-rarity wildcard family.
func jokerRarityName(o int, lenCommon, lenUncommon, lenRare int) string {
	switch {
	case o < lenCommon:
		return "common"
	case o < lenCommon+lenUncommon:
		return "uncommon"
	case o < lenCommon+lenUncommon+lenRare:
		return "rare"
	default:
		return "legendary"
	}
}

// itemMatchesBase reports whether it is the clause's target item,
// ignoring edition/enhancement/seal/suit/rank refinements. Used by both
// the relaxed Stage 1 pass and as the first gate of Stage 2's exact
// check.
func itemMatchesBase(cc compiledClause, it item.Item, lenCommon, lenUncommon, lenRare int) bool {
	if it.Category() != cc.category {
		return false
	}
	if cc.isWildcard {
		return matchesWildcard(cc.Value, it, func(it item.Item) string {
			return jokerRarityName(it.Ordinal(), lenCommon, lenUncommon, lenRare)
		})
	}
	return it.Ordinal() == cc.ordinal
}

// itemMatchesExact additionally checks the clause's declared refinements
// (edition, stickers, suit, rank, enhancement, seal) — Stage 2 only.
func itemMatchesExact(cc compiledClause, it item.Item) bool {
	if cc.Edition != "" {
		if editionName(it.Edition()) != cc.Edition {
			return false
		}
	}
	for _, want := range cc.Stickers {
		if !it.HasSticker(stickerByName(want)) {
			return false
		}
	}
	if cc.Suit != "" && suitName(it.Suit()) != cc.Suit {
		return false
	}
	if cc.Rank != "" && rankName(it.Rank()) != cc.Rank {
		return false
	}
	if cc.Enhancement != "" && enhancementName(it.Enhancement()) != cc.Enhancement {
		return false
	}
	if cc.Seal != "" && sealName(it.Seal()) != cc.Seal {
		return false
	}
	return true
}

func editionName(e item.Edition) string {
	switch e {
	case item.EditionFoil:
		return "Foil"
	case item.EditionHolographic:
		return "Holographic"
	case item.EditionPolychrome:
		return "Polychrome"
	case item.EditionNegative:
		return "Negative"
	default:
		return "None"
	}
}

func stickerByName(name string) item.Sticker {
	switch name {
	case "Eternal":
		return item.StickerEternal
	case "Perishable":
		return item.StickerPerishable
	case "Rental":
		return item.StickerRental
	default:
		return 0
	}
}

func suitName(s item.Suit) string {
	switch s {
	case item.SuitHearts:
		return "Hearts"
	case item.SuitClubs:
		return "Clubs"
	case item.SuitDiamonds:
		return "Diamonds"
	default:
		return "Spades"
	}
}

func rankName(r item.Rank) string {
	names := map[item.Rank]string{
		2: "2", 3: "3", 4: "4", 5: "5", 6: "6", 7: "7", 8: "8", 9: "9", 10: "10",
		11: "Jack", 12: "Queen", 13: "King", 14: "Ace",
	}
	if n, ok := names[r]; ok {
		return n
	}
	return ""
}

func enhancementName(e item.Enhancement) string {
	switch e {
	case item.EnhancementBonus:
		return "Bonus"
	case item.EnhancementMult:
		return "Mult"
	case item.EnhancementWild:
		return "Wild"
	case item.EnhancementGlass:
		return "Glass"
	case item.EnhancementSteel:
		return "Steel"
	case item.EnhancementStone:
		return "Stone"
	case item.EnhancementGold:
		return "Gold"
	case item.EnhancementLucky:
		return "Lucky"
	default:
		return "None"
	}
}

func sealName(s item.Seal) string {
	switch s {
	case item.SealGold:
		return "Gold"
	case item.SealRed:
		return "Red"
	case item.SealBlue:
		return "Blue"
	case item.SealPurple:
		return "Purple"
	default:
		return "None"
	}
}
