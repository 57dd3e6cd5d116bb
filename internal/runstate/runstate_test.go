package runstate

import (
	"testing"

	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/tables"
)

func TestActivateVoucher_ImplicitPredecessor(t *testing.T) {
	var s State
	observatory, ok := tables.VoucherOrdinal("Observatory")
	if !ok {
		t.Fatal("Observatory missing from voucher table")
	}
	s.ActivateVoucher(observatory)

	telescope, _ := tables.VoucherOrdinal("Telescope")
	if !s.IsVoucherActive(telescope) {
		t.Errorf("activating odd voucher %d did not activate predecessor %d", observatory, telescope)
	}
	if !s.IsVoucherActive(observatory) {
		t.Errorf("Observatory itself not active")
	}
}

func TestShowman_OverridesOwnership(t *testing.T) {
	var s State
	j := item.New(item.CategoryJoker, 5)
	s.AddOwnedJoker(j)

	if s.CanObtainJoker(j) {
		t.Fatal("expected duplicate joker to be blocked without Showman")
	}

	s.ActivateShowman()
	if !s.CanObtainJoker(j) {
		t.Errorf("Testable Property 7: after Showman activates, CanObtainJoker must return true")
	}
}

func TestSoulPack_ExclusiveConsumption(t *testing.T) {
	var s State
	if !s.MarkSoulPackConsumed(1, 0) {
		t.Fatal("first consumption of (1,0) should succeed")
	}
	if s.MarkSoulPackConsumed(1, 0) {
		t.Fatal("Testable Property 5: second consumption of the same (ante,slot) must fail")
	}
	if !s.MarkSoulPackConsumed(1, 1) {
		t.Fatal("a different slot must still be consumable")
	}
}

func TestBossPool_ResetWhenExhausted(t *testing.T) {
	var s State
	nonFinisherOrdinals := []int{0, 1, 2, 8, 9}
	for _, o := range nonFinisherOrdinals[:2] {
		s.LockBoss(o)
	}
	if s.BossPoolPopcount(false) != 2 {
		t.Fatalf("expected 2 locked non-finisher bosses, got %d", s.BossPoolPopcount(false))
	}

	// Lock every remaining non-finisher boss; the pool must reset to 0.
	full := fullMaskForRange(tables.BossNonFinisherRangeA) | fullMaskForRange(tables.BossNonFinisherRangeB)
	for o := 0; o < 32; o++ {
		if full&(1<<uint(o)) == 0 {
			continue
		}
		s.LockBoss(o)
	}
	if s.BossPoolPopcount(false) != 0 {
		t.Errorf("Testable Property 8: pool should reset to empty once fully exhausted, got popcount %d", s.BossPoolPopcount(false))
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	var s State
	s.ActivateVoucher(4)
	s.ActivateShowman()
	s.AddOwnedJoker(item.New(item.CategoryJoker, 1))
	s.MarkSoulPackConsumed(1, 0)
	s.LockBoss(0)

	s.Reset()

	if s.VoucherBitfield() != 0 || s.ShowmanActive() || s.IsSoulPackConsumed(1, 0) || s.BossPoolPopcount(false) != 0 {
		t.Fatalf("Reset did not clear all state")
	}
}
