package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/tables"
)

// DrawTag draws one blind tag — small and big blind tags are drawn from
// independent streams (spec.md §4.2's per-ante Tag key) but use the same
// generator.
func DrawTag(stream *prng.Stream) item.Item {
	ordinal := prng.NextRandomInt(stream, 0, len(tables.Tags)-1)
	return item.New(item.CategoryTag, ordinal)
}
