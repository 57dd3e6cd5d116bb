// Package runstate implements the per-seed mutable bundle spec.md §3/§4.4
// calls Run State: activated vouchers, the Showman flag, owned jokers,
// consumed soul packs, and the boss-lock pool. One State is owned
// exclusively by the scalar evaluation of a single seed and is cleared
// (via Reset) at the start of each seed, the same "small mutable
// registry with explicit mutator/query methods" shape the teacher uses
// for its address watchlist and alert manager
// (internal/heuristics/address_watchlist.go, alert_system.go).
package runstate

import (
	"math/bits"

	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/tables"
)

// maxBossPoolBits covers the 28-entry boss table with headroom.
const maxBossPoolBits = 32

// State is the per-seed mutable bundle. It never allocates on the hot
// path beyond its fixed-size fields.
type State struct {
	voucherBitfield uint32
	showmanActive   bool
	ownedJokers     item.Set
	consumedSoul    uint64
	usedBossesA     uint32 // boss-lock pool for the non-finisher kind
	usedBossesB     uint32 // boss-lock pool for the finisher kind
}

// Reset clears all per-seed state for reuse across seeds within one
// worker, avoiding per-seed heap allocation.
func (s *State) Reset() {
	*s = State{}
}

// ActivateVoucher sets bit v (and, if v is odd, also bit v-1 — its
// required predecessor) per spec.md §3's voucher invariant: "activation
// activates the predecessor implicitly if the odd one comes from a tag
// upgrade."
func (s *State) ActivateVoucher(v int) {
	s.voucherBitfield |= 1 << uint(v)
	if pre, ok := tables.VoucherPrerequisite(v); ok {
		s.voucherBitfield |= 1 << uint(pre)
	}
}

// IsVoucherActive reports whether voucher ordinal v has been activated
// in this seed's run.
func (s *State) IsVoucherActive(v int) bool {
	return s.voucherBitfield&(1<<uint(v)) != 0
}

// VoucherBitfield exposes the raw bitfield, e.g. for the vectorized
// mirror the base prefilter keeps aligned across lanes (spec.md §4.4).
func (s *State) VoucherBitfield() uint32 { return s.voucherBitfield }

// ActivateShowman marks Showman as owned. Per Testable Property 7, every
// CanObtainJoker query after this returns true regardless of
// ownedJokers.
func (s *State) ActivateShowman() { s.showmanActive = true }

// ShowmanActive reports whether Showman has been activated.
func (s *State) ShowmanActive() bool { return s.showmanActive }

// CanObtainJoker reports whether j may be added to ownedJokers: true if
// Showman is active, or j is not already owned.
func (s *State) CanObtainJoker(j item.Item) bool {
	if s.showmanActive {
		return true
	}
	return !s.ownedJokers.ContainsBase(j)
}

// AddOwnedJoker records j as owned. Callers must check CanObtainJoker
// first; AddOwnedJoker itself does not re-check (it is called from
// inside a generator that has already made the ownership decision).
func (s *State) AddOwnedJoker(j item.Item) {
	if s.ownedJokers.Len() >= item.MaxSetSize {
		return // bounded tracking only; spec.md §3 caps ItemSet at 8
	}
	s.ownedJokers.Append(j)
}

// soulPackBit computes the bit index for (ante, packSlot), per spec.md
// §3: "bit (ante-1)*8 + pack_slot".
func soulPackBit(ante, packSlot int) uint {
	return uint((ante-1)*8 + packSlot)
}

// MarkSoulPackConsumed attempts to consume the soul pack at
// (ante, packSlot). It returns false if that pack was already consumed
// by an earlier clause — enforcing Testable Property 5 (soul-pack
// exclusivity: at most one clause may observe success per (ante, slot)).
func (s *State) MarkSoulPackConsumed(ante, packSlot int) bool {
	bit := soulPackBit(ante, packSlot)
	mask := uint64(1) << bit
	if s.consumedSoul&mask != 0 {
		return false
	}
	s.consumedSoul |= mask
	return true
}

// IsSoulPackConsumed reports whether (ante, packSlot) has already
// yielded its legendary to some earlier clause.
func (s *State) IsSoulPackConsumed(ante, packSlot int) bool {
	bit := soulPackBit(ante, packSlot)
	return s.consumedSoul&(uint64(1)<<bit) != 0
}

// bossPool returns the lock bitmask and full-pool mask for a finisher
// or non-finisher boss kind.
func (s *State) bossPool(finisher bool) (*uint32, uint32) {
	if finisher {
		return &s.usedBossesB, fullMaskForRange(tables.BossFinisherRange)
	}
	return &s.usedBossesA, fullMaskForRange(tables.BossNonFinisherRangeA) | fullMaskForRange(tables.BossNonFinisherRangeB)
}

func fullMaskForRange(r [2]int) uint32 {
	var m uint32
	for i := r[0]; i < r[1]; i++ {
		m |= 1 << uint(i)
	}
	return m
}

// LockBoss marks boss ordinal o as used within its kind's pool. If the
// pool is now fully locked, it resets (spec.md §4.3 "Boss": "once the
// filtered pool is empty, unlock all entries of that kind and
// refilter").
func (s *State) LockBoss(o int) {
	finisher := tables.IsFinisherBoss(o)
	pool, full := s.bossPool(finisher)
	*pool |= 1 << uint(o)
	if *pool&full == full {
		*pool = 0
	}
}

// AvailableBossMask returns the bitmask of boss ordinals of the given
// kind not yet locked this round, intersected with the kind's fixed
// index range.
func (s *State) AvailableBossMask(finisher bool) uint32 {
	pool, full := s.bossPool(finisher)
	available := full &^ *pool
	if available == 0 {
		// LockBoss already resets a fully locked pool, so this branch is
		// only a guard — refilter against the full pool.
		return full
	}
	return available
}

// BossPoolPopcount reports the number of bosses still locked in the
// given kind's pool — exposed for tests verifying Testable Property 8
// (pool reset behavior) without reaching into unexported fields.
func (s *State) BossPoolPopcount(finisher bool) int {
	pool, _ := s.bossPool(finisher)
	return bits.OnesCount32(*pool)
}
