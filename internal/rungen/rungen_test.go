package rungen

import (
	"testing"

	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/runstate"
	"github.com/rawblock/seedsearch/internal/streams"
	"github.com/rawblock/seedsearch/internal/tables"
)

func newStream(t *testing.T, seed, key string) *prng.Stream {
	t.Helper()
	s := prng.NewActive(streams.Scalar(key, seed))
	return &s
}

func TestRollShopCategory_Deterministic(t *testing.T) {
	s1 := newStream(t, "ALEEB1", streams.ShopCategoryKey(1))
	s2 := newStream(t, "ALEEB1", streams.ShopCategoryKey(1))
	c1 := RollShopCategory(s1, tables.DeckRed, VoucherRates{})
	c2 := RollShopCategory(s2, tables.DeckRed, VoucherRates{})
	if c1 != c2 {
		t.Fatalf("same seed/key must roll the same shop category, got %v vs %v", c1, c2)
	}
}

func TestRollShopCategory_GhostDeckEnablesSpectral(t *testing.T) {
	if tables.ShopRates[tables.ShopSpectral] != 0 {
		t.Fatalf("test assumes the Red-deck baseline spectral rate is 0")
	}
	redSawSpectral, ghostSawSpectral := false, false
	for i := 0; i < 64; i++ {
		key := streams.ShopCategoryKey(i)
		if RollShopCategory(newStream(t, "ALEEB1", key), tables.DeckRed, VoucherRates{}) == tables.ShopSpectral {
			redSawSpectral = true
		}
		if RollShopCategory(newStream(t, "ALEEB1", key), tables.DeckGhost, VoucherRates{}) == tables.ShopSpectral {
			ghostSawSpectral = true
		}
	}
	if redSawSpectral {
		t.Error("Red deck has a 0 baseline spectral rate and should never roll ShopSpectral")
	}
	if !ghostSawSpectral {
		t.Error("Ghost deck should roll ShopSpectral at least once across 64 independent draws")
	}
}

func TestDrawJoker_EditionAndStickersDeterministic(t *testing.T) {
	mk := func() JokerStreams {
		return JokerStreams{
			Rarity:  newStream(t, "ALEEB1", streams.JokerRarityKey(1)),
			Ordinal: newStream(t, "ALEEB1", streams.ShopJokerKey(1, 1)),
			Edition: newStream(t, "ALEEB1", streams.JokerEditionKey(1)),
			Eternal: newStream(t, "ALEEB1", streams.JokerStickerKey(1)),
			Rental:  newStream(t, "ALEEB1", streams.JokerStickerKey(1)+"_rental"),
		}
	}
	j1 := DrawJoker(mk(), tables.StakeGold, 1.0)
	j2 := DrawJoker(mk(), tables.StakeGold, 1.0)
	if j1 != j2 {
		t.Fatalf("DrawJoker must be deterministic for identical streams, got %v vs %v", j1, j2)
	}
}

func TestRollStickers_WhiteStakeNeverRolls(t *testing.T) {
	js := JokerStreams{
		Eternal: newStream(t, "ALEEB1", "eternal"),
		Rental:  newStream(t, "ALEEB1", "rental"),
	}
	before := *js.Eternal
	s := RollStickers(js, tables.StakeWhite, "Joker")
	if s != 0 {
		t.Errorf("White stake must never produce stickers, got %v", s)
	}
	if *js.Eternal != before {
		t.Errorf("a gated-off sticker roll must not consume its stream (RNG desync risk)")
	}
}

func TestDrawVoucher_SkipsUnsatisfiedPrerequisite(t *testing.T) {
	state := &runstate.State{}
	src := streams.New(streams.VoucherKey(1), "ALEEB1", streams.Capabilities{})
	v := DrawVoucher(src, state)
	ordinal := v.Ordinal()
	if pre, ok := tables.VoucherPrerequisite(ordinal); ok {
		if !state.IsVoucherActive(pre) {
			// DrawVoucher itself does not activate anything — this just
			// confirms the drawn ordinal's invariant would have been
			// checked had the prerequisite been inactive: a fresh state
			// has no vouchers active, so an odd ordinal could only be
			// drawn here if the candidate loop's own activation check
			// is broken.
			t.Fatalf("drew upgrade voucher %d with no active prerequisite and no resample occurred", ordinal)
		}
	}
}

func TestDrawBoss_LocksAndRefills(t *testing.T) {
	state := &runstate.State{}
	stream := newStream(t, "ALEEB1", tables.Bosses[0])
	nonFinisherCount := (tables.BossNonFinisherRangeA[1] - tables.BossNonFinisherRangeA[0]) +
		(tables.BossNonFinisherRangeB[1] - tables.BossNonFinisherRangeB[0])

	seen := map[int]bool{}
	for i := 0; i < nonFinisherCount; i++ {
		b := DrawBoss(stream, 2, state) // ante 2 is non-finisher
		seen[b.Ordinal()] = true
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one distinct boss drawn")
	}
	// Pool must have refilled to full availability after exactly
	// nonFinisherCount locks (Testable Property 8).
	if got := state.BossPoolPopcount(false); got != 0 {
		t.Errorf("boss pool should have reset to empty lock-set after a full cycle, got popcount %d", got)
	}
}

func TestGenerateArcanaPack_SoulExclusiveWithinRun(t *testing.T) {
	state := &runstate.State{}
	main := streams.New(streams.ArcanaPackKey(1), "ALEEB1", streams.Capabilities{})
	soul := streams.New(streams.SoulJokerKey(1), "ALEEB1", streams.Capabilities{})

	set := GenerateArcanaPack(main, soul, 5, 1, 0, state)
	if set.Len() != 5 {
		t.Fatalf("expected 5 slots, got %d", set.Len())
	}

	soulCount := 0
	for i := 0; i < set.Len(); i++ {
		if set.At(i).Category() == item.CategoryJoker {
			soulCount++
		}
	}
	if soulCount > 1 {
		t.Errorf("at most one Soul slot should resolve per pack, got %d", soulCount)
	}
}

func TestGenerateBuffoonPack_NoDuplicateOrShowmanRejected(t *testing.T) {
	state := &runstate.State{}
	main := streams.New(streams.BuffoonPackKey(1), "ALEEB1", streams.Capabilities{})
	js := JokerStreams{
		Rarity:  newStream(t, "ALEEB1", streams.JokerRarityKey(1)),
		Ordinal: &main.State,
		Edition: newStream(t, "ALEEB1", streams.JokerEditionKey(1)),
		Eternal: newStream(t, "ALEEB1", streams.JokerStickerKey(1)),
		Rental:  newStream(t, "ALEEB1", streams.JokerStickerKey(1)+"_rental"),
	}

	set := GenerateBuffoonPack(main, js, tables.StakeWhite, 1.0, 2, state)
	if set.Len() != 2 {
		t.Fatalf("expected 2 slots, got %d", set.Len())
	}
	if item.SameBase(set.At(0), set.At(1)) {
		t.Errorf("a buffoon pack must not contain duplicate jokers")
	}
}
