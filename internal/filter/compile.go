package filter

import (
	"fmt"
	"sort"

	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/tables"
)

// Compiled is the ready-to-run form of a Document: resolved deck/stake,
// clauses split into MUST/MUST-NOT (cost-ordered) and SHOULD, and each
// clause's target pre-resolved to a category+ordinal (or marked as a
// wildcard) so the hot evaluation path never does string lookups.
type Compiled struct {
	Deck  tables.Deck
	Stake tables.Stake

	MustMustNot []compiledClause // cost-ordered, negate flag distinguishes MUST-NOT
	Should      []compiledClause
}

type compiledClause struct {
	Clause
	category    item.Category
	ordinal     int
	isWildcard  bool
}

// Compile validates and resolves a Document into a Compiled filter.
// Configuration errors (unknown enum, empty antes, unresolvable item
// name) are collected and returned together per spec.md §7's "surface
// full list of errors" policy, rather than failing on the first one.
func Compile(doc Document) (*Compiled, error) {
	var errs []string

	deck := tables.DeckRed
	if doc.Deck != "" {
		if d, ok := tables.ParseDeck(doc.Deck); ok {
			deck = d
		} else {
			errs = append(errs, fmt.Sprintf("unknown deck %q", doc.Deck))
		}
	}
	stake := tables.StakeWhite
	if doc.Stake != "" {
		if s, ok := tables.ParseStake(doc.Stake); ok {
			stake = s
		} else {
			errs = append(errs, fmt.Sprintf("unknown stake %q", doc.Stake))
		}
	}

	var mustMustNot []compiledClause
	for _, c := range doc.Must {
		cc, err := resolveClause(c, false)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		mustMustNot = append(mustMustNot, cc)
	}
	for _, c := range doc.MustNot {
		cc, err := resolveClause(c, true)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		mustMustNot = append(mustMustNot, cc)
	}
	sort.SliceStable(mustMustNot, func(i, j int) bool {
		return mustMustNot[i].costRank() < mustMustNot[j].costRank()
	})

	var should []compiledClause
	for _, c := range doc.Should {
		cc, err := resolveClause(c, false)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		should = append(should, cc)
	}

	if len(errs) > 0 {
		return nil, &ConfigError{Errors: errs}
	}

	// Boundary behavior (spec.md §8): empty SHOULD must not degenerate to
	// every accepted seed scoring 1 with no SHOULD contribution — the
	// engine duplicates MUST as SHOULD at weight 1.
	if len(should) == 0 {
		for _, c := range mustMustNot {
			if c.negate {
				continue
			}
			dup := c
			if dup.Score <= 0 {
				dup.Score = 1
			}
			should = append(should, dup)
		}
	}
	for i := range should {
		if should[i].Score <= 0 {
			should[i].Score = 1
		}
	}

	return &Compiled{Deck: deck, Stake: stake, MustMustNot: mustMustNot, Should: should}, nil
}

// ConfigError collects every configuration problem found during Compile.
type ConfigError struct {
	Errors []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("filter config: %d error(s): %v", len(e.Errors), e.Errors)
}

func resolveClause(c Clause, negate bool) (compiledClause, error) {
	c.negate = negate
	if len(c.Antes) == 0 {
		return compiledClause{}, fmt.Errorf("clause %s/%s: antes must be non-empty", c.Type, c.Value)
	}
	for _, a := range c.Antes {
		if a < 1 {
			return compiledClause{}, fmt.Errorf("clause %s/%s: ante %d must be >= 1", c.Type, c.Value, a)
		}
	}

	if isWildcardValue(c.Value) {
		cat, err := categoryForType(c.Type)
		if err != nil {
			return compiledClause{}, err
		}
		return compiledClause{Clause: c, category: cat, isWildcard: true}, nil
	}

	cat, ordinal, err := resolveTarget(c.Type, c.Value)
	if err != nil {
		return compiledClause{}, err
	}
	return compiledClause{Clause: c, category: cat, ordinal: ordinal}, nil
}

func isWildcardValue(v string) bool {
	switch v {
	case WildcardAny, WildcardAnyJoker, WildcardAnyCommon, WildcardAnyUncommon, WildcardAnyRare, WildcardAnyLegendary:
		return true
	default:
		return false
	}
}

func categoryForType(t ClauseType) (item.Category, error) {
	switch t {
	case ClauseJoker, ClauseSoulJoker:
		return item.CategoryJoker, nil
	case ClauseTarotCard:
		return item.CategoryTarot, nil
	case ClausePlanetCard:
		return item.CategoryPlanet, nil
	case ClauseSpectralCard:
		return item.CategorySpectral, nil
	case ClauseSmallBlindTag, ClauseBigBlindTag:
		return item.CategoryTag, nil
	case ClauseVoucher:
		return item.CategoryVoucher, nil
	case ClausePlayingCard:
		return item.CategoryPlayingCard, nil
	case ClauseBoss:
		return item.CategoryBoss, nil
	default:
		return 0, fmt.Errorf("unknown clause type %q", t)
	}
}

func resolveTarget(t ClauseType, value string) (item.Category, int, error) {
	switch t {
	case ClauseJoker, ClauseSoulJoker:
		if o, ok := tables.JokerGlobalOrdinal(value); ok {
			return item.CategoryJoker, o, nil
		}
	case ClauseTarotCard:
		if o := indexOf(tables.Tarots, value); o >= 0 {
			return item.CategoryTarot, o, nil
		}
	case ClausePlanetCard:
		if o := indexOf(tables.Planets, value); o >= 0 {
			return item.CategoryPlanet, o, nil
		}
	case ClauseSpectralCard:
		if value == "TheSoul" {
			return item.CategorySpectral, 100, nil
		}
		if value == "BlackHole" {
			return item.CategorySpectral, 101, nil
		}
		if o := indexOf(tables.Spectrals, value); o >= 0 {
			return item.CategorySpectral, o, nil
		}
	case ClauseSmallBlindTag, ClauseBigBlindTag:
		if o := indexOf(tables.Tags, value); o >= 0 {
			return item.CategoryTag, o, nil
		}
	case ClauseVoucher:
		if o, ok := tables.VoucherOrdinal(value); ok {
			return item.CategoryVoucher, o, nil
		}
	case ClauseBoss:
		if o, ok := tables.BossOrdinal(value); ok {
			return item.CategoryBoss, o, nil
		}
	case ClausePlayingCard:
		return item.CategoryPlayingCard, 0, nil
	}
	return 0, 0, fmt.Errorf("clause %s: unknown value %q", t, value)
}

func indexOf(pool []string, name string) int {
	for i, n := range pool {
		if n == name {
			return i
		}
	}
	return -1
}
