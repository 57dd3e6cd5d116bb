package filter

import (
	"testing"
	"time"
)

func TestCompile_EmptyShouldDuplicatesMust(t *testing.T) {
	doc := Document{
		Must: []Clause{
			{Type: ClauseVoucher, Value: "Overstock", Antes: []int{1}},
		},
	}
	compiled, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(compiled.Should) != 1 {
		t.Fatalf("expected MUST duplicated into SHOULD, got %d should clauses", len(compiled.Should))
	}
	if compiled.Should[0].Score != 1 {
		t.Errorf("duplicated SHOULD clause must default to weight 1, got %d", compiled.Should[0].Score)
	}
}

func TestCompile_UnknownDeckIsConfigError(t *testing.T) {
	_, err := Compile(Document{Deck: "NotADeck"})
	if err == nil {
		t.Fatal("expected a config error for an unknown deck")
	}
}

func TestCompile_EmptyAntesIsConfigError(t *testing.T) {
	_, err := Compile(Document{Must: []Clause{{Type: ClauseVoucher, Value: "Overstock"}}})
	if err == nil {
		t.Fatal("expected a config error for an empty antes list")
	}
}

func TestEvaluate_EmptyMustAcceptsEveryoneAtBaseScore(t *testing.T) {
	compiled, err := Compile(Document{
		Should: []Clause{{Type: ClauseVoucher, Value: "Overstock", Antes: []int{1}, Score: 5}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	matched, score, _ := EvaluateScalar("ALEEB1", compiled)
	if !matched {
		t.Fatal("empty MUST must accept every seed")
	}
	if score < 1 {
		t.Errorf("base score must be at least 1, got %d", score)
	}
}

func TestEvaluate_DeterministicAcrossReruns(t *testing.T) {
	compiled, err := Compile(Document{
		Must: []Clause{{Type: ClauseBoss, Value: "TheHook", Antes: []int{1, 2, 3}}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m1, s1, _ := EvaluateScalar("ALEEB1", compiled)
	m2, s2, _ := EvaluateScalar("ALEEB1", compiled)
	if m1 != m2 || s1 != s2 {
		t.Fatalf("re-evaluating the same seed must be deterministic: (%v,%d) vs (%v,%d)", m1, s1, m2, s2)
	}
}

func TestPrefilter_NeverRejectsWhatScalarAccepts(t *testing.T) {
	compiled, err := Compile(Document{
		Must: []Clause{{Type: ClauseVoucher, Value: "Overstock", Antes: []int{1, 2}}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, seed := range []string{"ALEEB1", "ALEEB2", "WXYZ12", "111111"} {
		scalarMatched, _, _ := EvaluateScalar(seed, compiled)
		if scalarMatched && !EvaluatePrefilter(seed, compiled) {
			t.Errorf("seed %q: scalar accepted but prefilter rejected (false negative)", seed)
		}
	}
}

func TestCutoff_Fixed(t *testing.T) {
	c := NewFixedCutoff(10)
	if c.Accept(9) {
		t.Error("9 should not meet a fixed cutoff of 10")
	}
	if !c.Accept(10) {
		t.Error("10 should meet a fixed cutoff of 10")
	}
}

func TestCutoff_AutoWarmupThenHighWaterMark(t *testing.T) {
	base := time.Unix(0, 0)
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c := NewAutoCutoff()
	for i := 0; i < 9; i++ {
		if !c.Accept(i) {
			t.Fatalf("result %d should be accepted during warmup", i)
		}
	}
	// Still within the 10-result/10-second warmup window: 9 results seen.
	if !c.Accept(3) {
		t.Fatal("10th result during warmup should still be accepted")
	}
	now = func() time.Time { return base.Add(11 * time.Second) }
	if c.Accept(1) {
		t.Error("after warmup, a score below the high-water mark must be rejected")
	}
	if !c.Accept(9) {
		t.Error("after warmup, a score at the high-water mark must be accepted")
	}
}
