package prng

import "testing"

func TestNextRandom_Deterministic(t *testing.T) {
	s1 := NewActive(0.314159)
	s2 := NewActive(0.314159)

	for i := 0; i < 16; i++ {
		a := NextRandom(&s1)
		b := NextRandom(&s2)
		if a != b {
			t.Fatalf("draw %d diverged: %v != %v", i, a, b)
		}
		if a < 0 || a >= 1 {
			t.Errorf("draw %d = %v, want value in [0,1)", i, a)
		}
	}
}

func TestNextRandom_PanicsOnAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic drawing from an absent stream")
		}
	}()
	s := Absent()
	NextRandom(&s)
}

func TestNextRandomInt_Bounds(t *testing.T) {
	s := NewActive(0.7182818)
	for i := 0; i < 200; i++ {
		v := NextRandomInt(&s, 3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("NextRandomInt out of bounds: %d", v)
		}
	}
}

func TestNextRandomElement(t *testing.T) {
	s := NewActive(0.123456)
	items := []string{"Joker", "Tarot", "Planet", "Spectral"}
	for i := 0; i < 50; i++ {
		v := NextRandomElement(&s, items)
		found := false
		for _, it := range items {
			if it == v {
				found = true
			}
		}
		if !found {
			t.Fatalf("NextRandomElement returned %q, not a member of the slice", v)
		}
	}
}

func TestReset_RestoresInitialState(t *testing.T) {
	s := NewActive(0.55)
	NextRandom(&s)
	NextRandom(&s)
	s.Reset()
	if s.state != s.initial {
		t.Fatalf("Reset did not restore initial state")
	}
}
