package filter

import (
	"sync"
	"time"
)

// Cutoff decides whether a scored result is emitted, per spec.md §4.6's
// two modes. It is safe for concurrent use — every search worker shares
// one Cutoff and calls Accept once per passing seed.
type Cutoff struct {
	mu          sync.Mutex
	fixed       int
	auto        bool
	start       time.Time
	results     int
	highWater   int
	warmupDone  bool
}

// NewFixedCutoff builds a Cutoff that emits iff total_score >= c.
func NewFixedCutoff(c int) *Cutoff {
	return &Cutoff{fixed: c}
}

// NewAutoCutoff builds a Cutoff that emits every result for the first 10
// seconds or first 10 results (whichever is later), tracking the highest
// score seen; afterward it only emits results meeting or exceeding that
// monotonically-updated high-water mark.
func NewAutoCutoff() *Cutoff {
	return &Cutoff{auto: true, start: now()}
}

// now is overridable in tests; production always uses time.Now.
var now = time.Now

// Accept reports whether a result with this score should be emitted,
// updating internal cutoff state as a side effect.
func (c *Cutoff) Accept(score int) bool {
	if !c.auto {
		return score >= c.fixed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if score > c.highWater {
		c.highWater = score
	}
	if !c.warmupDone {
		if c.results >= 10 && now().Sub(c.start) >= 10*time.Second {
			c.warmupDone = true
		} else {
			c.results++
			return true
		}
	}
	return score >= c.highWater
}
