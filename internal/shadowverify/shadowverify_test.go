package shadowverify

import (
	"testing"

	"github.com/rawblock/seedsearch/internal/filter"
)

func TestRun_NoDivergenceOnAcceptAllFilter(t *testing.T) {
	compiled, err := filter.Compile(filter.Document{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r := NewRunner(compiled)
	rep := r.Run([]string{"ALEEB1", "ALEEB2", "WXYZ12", "111111"})
	if rep.TotalSeeds != 4 {
		t.Errorf("expected 4 seeds evaluated, got %d", rep.TotalSeeds)
	}
	if rep.Divergences != 0 {
		t.Errorf("expected no divergence for an accept-all filter, got %d", rep.Divergences)
	}
}

func TestRun_NoDivergenceOnVoucherFilter(t *testing.T) {
	compiled, err := filter.Compile(filter.Document{
		Must: []filter.Clause{{Type: filter.ClauseVoucher, Value: "Overstock", Antes: []int{1, 2, 3}}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r := NewRunner(compiled)
	rep := r.Run([]string{"ALEEB1", "ALEEB2", "WXYZ12", "111111", "SOULS1"})
	if rep.Divergences != 0 {
		t.Errorf("prefilter must never reject what the scalar verifier accepts, got %d divergence(s)", rep.Divergences)
	}
}
