package streams

import (
	"math"
	"testing"

	"github.com/rawblock/seedsearch/internal/pseudohash"
)

func TestKeyBuilders_Distinct(t *testing.T) {
	keys := map[string]bool{
		ShopCategoryKey(2):     true,
		ShopJokerKey(1, 2):     true,
		JokerRarityKey(2):      true,
		JokerEditionKey(2):     true,
		TarotKey(2):            true,
		PlanetKey(2):           true,
		SpectralKey(2):         true,
		VoucherKey(2):          true,
		TagKey(2):              true,
		BossKey():              true,
		ArcanaPackKey(2):       true,
		CelestialPackKey(2):    true,
		SpectralPackKey(2):     true,
		StandardPackKey(2):     true,
		BuffoonPackKey(2):      true,
		SoulJokerKey(2):        true,
	}
	if len(keys) != 16 {
		t.Fatalf("expected 16 distinct keys, got %d", len(keys))
	}
}

func TestResampleKey_Sequence(t *testing.T) {
	base := VoucherKey(1)
	if ResampleKey(base, 1) == ResampleKey(base, 2) {
		t.Error("resample keys for different n must differ")
	}
	if ResampleKey(base, 1) != base+"_resample2" {
		t.Errorf("ResampleKey(base,1) = %q, want %q", ResampleKey(base, 1), base+"_resample2")
	}
}

func TestBatchHashCache_MatchesScalarPerLane(t *testing.T) {
	seeds := []string{"A1LEEB", "A2LEEB", "B1LEEB", "B2LEEB"}
	prefixLen := 2
	seedSuffix := []byte(seeds[0][prefixLen:])
	for _, s := range seeds {
		if string(s[prefixLen:]) != string(seedSuffix) {
			t.Fatalf("test fixture error: seeds must share a trailing suffix")
		}
	}

	lanePrefixes := make([][]byte, len(seeds))
	for i, s := range seeds {
		lanePrefixes[i] = []byte(s[:prefixLen])
	}

	cache := NewBatchHashCache(len(seeds), prefixLen, seedSuffix, lanePrefixes)

	key := VoucherKey(3)
	for lane, seed := range seeds {
		got := cache.InitialStateForLane(key, lane)
		want := pseudohash.Full(key, seed)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("lane %d: cache result %v != scalar Full() %v", lane, got, want)
		}
	}
}

func TestSource_ResampleDoesNotDisturbMain(t *testing.T) {
	src := New(VoucherKey(1), "ALEEB1", Capabilities{})
	before := src.State

	_ = src.Resample(1)
	_ = src.Resample(2)

	if src.State != before {
		t.Fatalf("drawing resamples must not disturb the main stream's state")
	}
}

func TestSource_ResampleLazyAndStable(t *testing.T) {
	src := New(TagKey(1), "ALEEB1", Capabilities{})
	r1a := src.Resample(1)
	r1b := src.Resample(1)
	if r1a != r1b {
		t.Errorf("Resample(1) should return the same stream handle on repeated calls")
	}
}
