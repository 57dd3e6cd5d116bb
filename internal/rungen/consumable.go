package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/tables"
)

// DrawTarot, DrawPlanet, and DrawSpectral draw one ordinary card of
// their kind — a single uniform index into the fixed table, per
// spec.md §4.3. Soul and Black Hole precedence is handled by the pack
// generators in pack.go, which call these only once a slot has already
// been decided not to be a special draw.
func DrawTarot(stream *prng.Stream) item.Item {
	ordinal := prng.NextRandomInt(stream, 0, len(tables.Tarots)-1)
	return item.New(item.CategoryTarot, ordinal)
}

func DrawPlanet(stream *prng.Stream) item.Item {
	ordinal := prng.NextRandomInt(stream, 0, len(tables.Planets)-1)
	return item.New(item.CategoryPlanet, ordinal)
}

func DrawSpectral(stream *prng.Stream) item.Item {
	ordinal := prng.NextRandomInt(stream, 0, len(tables.Spectrals)-1)
	return item.New(item.CategorySpectral, ordinal)
}

// blackHoleOrdinal and soulOrdinal give the two special spectral cards
// stable ordinals just past the ordinary Spectrals table, so they can
// be represented as plain CategorySpectral items rather than needing a
// new category.
const (
	soulOrdinal      = 100
	blackHoleOrdinal = 101
)

// IsSoulCard reports whether it is the special Soul spectral card
// (ordinal soulOrdinal). The pack generators in pack.go never emit this
// card: a slot whose soul roll succeeds holds the legendary joker the
// Soul resolves into.
func IsSoulCard(it item.Item) bool {
	return it.Category() == item.CategorySpectral && it.Ordinal() == soulOrdinal
}

// IsBlackHoleCard reports whether it is the special Black Hole card.
func IsBlackHoleCard(it item.Item) bool {
	return it.Category() == item.CategorySpectral && it.Ordinal() == blackHoleOrdinal
}
