// Package shadowverify runs the vector prefilter and the scalar verifier
// side by side over the same seeds and reports any divergence, adapted
// from the teacher's shadow-vs-production comparison runner. Dropped
// from the teacher: persistence of each comparison (no persistent state
// in this domain) and the ARI/VI clustering-similarity metrics (there is
// no clustering concept here). Kept: the core idea of running two
// judgments of the same input side by side and logging on divergence —
// repointed at Testable Property 2 ("the prefilter must never reject
// what the scalar verifier accepts") instead of production-vs-experimental
// heuristic drift.
package shadowverify

import (
	"log"

	"github.com/rawblock/seedsearch/internal/filter"
)

// Report summarizes one verification run.
type Report struct {
	TotalSeeds  int
	Divergences int
}

// Runner compares filter.EvaluatePrefilter against filter.EvaluateScalar
// for a compiled filter.
type Runner struct {
	compiled *filter.Compiled
}

// NewRunner builds a Runner bound to a compiled filter.
func NewRunner(compiled *filter.Compiled) *Runner {
	return &Runner{compiled: compiled}
}

// VerifySeed evaluates both stages for one seed. It reports true only
// when the scalar verifier accepts a seed the prefilter rejected — the
// one divergence direction that is a correctness bug (a false negative
// in the cheap stage would silently drop a seed the search should have
// found). The opposite direction (prefilter accepts, scalar rejects) is
// the expected, harmless over-approximation and is not reported as a
// divergence.
func (r *Runner) VerifySeed(seed string) bool {
	pre := filter.EvaluatePrefilter(seed, r.compiled)
	scalarMatched, _, _ := filter.EvaluateScalar(seed, r.compiled)
	if scalarMatched && !pre {
		log.Printf("[shadowverify] DIVERGENCE on seed %s: prefilter=false scalar=true", seed)
		return true
	}
	return false
}

// Run verifies every seed in seeds and returns a summary.
func (r *Runner) Run(seeds []string) Report {
	var rep Report
	for _, seed := range seeds {
		rep.TotalSeeds++
		if r.VerifySeed(seed) {
			rep.Divergences++
		}
	}
	return rep
}
