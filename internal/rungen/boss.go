package rungen

import (
	"math/bits"

	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/runstate"
)

// nthSetBit returns the index of the k-th (0-based) set bit of mask.
func nthSetBit(mask uint32, k int) int {
	for {
		lsb := mask & -mask
		idx := bits.TrailingZeros32(mask)
		if k == 0 {
			return idx
		}
		mask &^= lsb
		k--
	}
}

// DrawBoss draws the blind boss for ante, choosing uniformly among the
// not-yet-locked bosses of the ante's kind (finisher on every 8th ante,
// per spec.md §3/§4.3 "Boss"), then locks the chosen ordinal — refilling
// the pool automatically once it is exhausted (runstate.State.LockBoss).
func DrawBoss(stream *prng.Stream, ante int, state *runstate.State) item.Item {
	finisher := ante%8 == 0
	available := state.AvailableBossMask(finisher)
	count := bits.OnesCount32(available)
	k := prng.NextRandomInt(stream, 0, count-1)
	ordinal := nthSetBit(available, k)
	state.LockBoss(ordinal)
	return item.New(item.CategoryBoss, ordinal)
}
