package pseudohash

import (
	"math"
	"testing"
)

func TestFull_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		key  string
		seed string
	}{
		{"short key and seed", "ar1", "A"},
		{"typical shop key", "Joker1" + "1", "ALEEB"},
		{"voucher key", "Voucher2", "1234567"},
		{"max length seed", "boss", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Full(tt.key, tt.seed)
			b := Full(tt.key, tt.seed)
			if a != b {
				t.Fatalf("Full() not deterministic: %v != %v", a, b)
			}
			if a < 0 || a >= 1 {
				t.Errorf("Full() = %v, want value in [0,1)", a)
			}
		})
	}
}

func TestFull_CacheAgreesWithWholeRecurrence(t *testing.T) {
	// Property 3: reconstructing initial_state via the cached tail must
	// produce the same f64 bit pattern as computing the full recurrence
	// from scratch, for every cached key length and batch prefix.
	seed := "ALEEB12"
	keys := []string{"boss", "Tag3", "Joker1" + "5", "Voucher1"}
	prefixLens := []int{1, 2, 3, 4}

	for _, key := range keys {
		for _, prefixLen := range prefixLens {
			if prefixLen > len(seed) {
				continue
			}
			want := Full(key, seed)

			tail := SeedTail(len(key), []byte(seed[prefixLen:]), prefixLen)
			partial := ExtendPrefix(tail, len(key), []byte(seed[:prefixLen]))
			got := FinishKey(partial, []byte(key))

			if math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("key=%q prefixLen=%d: cached-tail result %v != full recurrence %v", key, prefixLen, got, want)
			}
		}
	}
}

func TestCharValue(t *testing.T) {
	if CharValue('A') != 65.0 {
		t.Errorf("CharValue('A') = %v, want 65.0", CharValue('A'))
	}
	if CharValue('1') != 49.0 {
		t.Errorf("CharValue('1') = %v, want 49.0", CharValue('1'))
	}
}

func TestStepRange_EmptyIsIdentity(t *testing.T) {
	num := 0.42
	if got := StepRange(num, nil, 0); got != num {
		t.Errorf("StepRange with empty input should be identity, got %v want %v", got, num)
	}
}
