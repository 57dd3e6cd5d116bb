package streams

import (
	"github.com/rawblock/seedsearch/internal/pseudohash"
)

// BatchHashCache is the per-batch partial pseudohash cache from
// spec.md §3/§4.5: for every distinct stream-key length requested this
// batch, it holds one tail value (scalar, over the batch-invariant
// trailing seed characters) and one extended partial per lane (over the
// batch-varying leading characters), so that instantiating any stream
// whose key has that length costs only O(len(key)) instead of
// O(len(key)+len(seed)).
type BatchHashCache struct {
	width      int
	prefixLen  int      // B: count of batch-varying leading seed characters
	seedSuffix []byte   // seed[prefixLen:], identical across all lanes this batch
	lanePrefix [][]byte // per-lane seed[:prefixLen]

	tails    map[int]float64
	partials map[int][]float64 // keyLen -> per-lane extended partial
}

// NewBatchHashCache builds the cache for one batch. seedSuffix is the
// trailing (len(seed)-prefixLen) characters shared by every lane;
// lanePrefix[i] is lane i's own leading prefixLen characters.
func NewBatchHashCache(width, prefixLen int, seedSuffix []byte, lanePrefix [][]byte) *BatchHashCache {
	if len(lanePrefix) != width {
		panic("streams: lanePrefix length must equal width")
	}
	return &BatchHashCache{
		width:      width,
		prefixLen:  prefixLen,
		seedSuffix: seedSuffix,
		lanePrefix: lanePrefix,
		tails:      make(map[int]float64),
		partials:   make(map[int][]float64),
	}
}

// partialsFor returns (and memoizes) the per-lane partial hashes for
// stream keys of the given length.
func (c *BatchHashCache) partialsFor(keyLen int) []float64 {
	if p, ok := c.partials[keyLen]; ok {
		return p
	}
	tail, ok := c.tails[keyLen]
	if !ok {
		tail = pseudohash.SeedTail(keyLen, c.seedSuffix, c.prefixLen)
		c.tails[keyLen] = tail
	}
	out := make([]float64, c.width)
	for lane := 0; lane < c.width; lane++ {
		out[lane] = pseudohash.ExtendPrefix(tail, keyLen, c.lanePrefix[lane])
	}
	c.partials[keyLen] = out
	return out
}

// InitialStateForLane returns initial_state for stream key key on the
// given lane, using this batch's cached partial hash for len(key).
func (c *BatchHashCache) InitialStateForLane(key string, lane int) float64 {
	partials := c.partialsFor(len(key))
	return pseudohash.FinishKey(partials[lane], []byte(key))
}

// InitialStateAllLanes returns initial_state for stream key key on every
// active lane, for constructing a prng.VectorStream in one call.
func (c *BatchHashCache) InitialStateAllLanes(key string) []float64 {
	partials := c.partialsFor(len(key))
	out := make([]float64, len(partials))
	for lane, p := range partials {
		out[lane] = pseudohash.FinishKey(p, []byte(key))
	}
	return out
}

// Scalar computes initial_state directly from key and a materialized
// seed string, bypassing the batch cache. Every stream the filter
// evaluator and the search driver construct goes through this path
// (spec.md §4.5 stage 2: "creates fresh streams on demand"); the batch
// cache above is not used by the search driver.
func Scalar(key, seed string) float64 {
	return pseudohash.Full(key, seed)
}
