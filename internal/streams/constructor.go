package streams

import "github.com/rawblock/seedsearch/internal/prng"

// Capabilities are the "does-provide" flags spec.md §4.2 attaches to a
// stream so that filter-specific exclusions (e.g. a shop stream with
// spectrals excluded) can save draws while staying aligned with the
// reference: a draw that is suppressed because the stream does not
// provide that facet must never silently desync the RNG.
type Capabilities struct {
	Editions  bool
	Stickers  bool
	Common    bool
	Uncommon  bool
	Rare      bool
	Legendary bool
}

// Source is a live, named PRNG stream plus the capability flags that
// were decided when it was constructed.
type Source struct {
	Key   string
	Seed  string
	Caps  Capabilities
	State prng.Stream

	resamples []prng.Stream // lazily grown, index n holds resample (n+1)
}

// New constructs a scalar stream for key against a materialized seed,
// with the given capability flags. Used by both filter evaluation stages
// (EvaluatePrefilter and EvaluateScalar each construct their own
// Sources per seed) and by tests.
func New(key, seed string, caps Capabilities) *Source {
	return &Source{
		Key:   key,
		Seed:  seed,
		Caps:  caps,
		State: prng.NewActive(Scalar(key, seed)),
	}
}

// Resample returns the n-th resample stream (n >= 1), constructing it
// lazily on first use. Drawing from a resample stream never disturbs
// the main stream's state, matching spec.md §4.2's "drawing resamples
// without disturbing the main stream is required for bit-exactness."
func (s *Source) Resample(n int) *prng.Stream {
	if n < 1 {
		panic("streams: Resample index must be >= 1")
	}
	for len(s.resamples) < n {
		idx := len(s.resamples)
		key := ResampleKey(s.Key, idx+1)
		s.resamples = append(s.resamples, prng.NewActive(Scalar(key, s.Seed)))
	}
	return &s.resamples[n-1]
}
