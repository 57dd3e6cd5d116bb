package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/runstate"
	"github.com/rawblock/seedsearch/internal/streams"
	"github.com/rawblock/seedsearch/internal/tables"
)

// candidateVoucher draws one ordinal from the voucher table, rejecting
// any voucher already active this run (a voucher can only ever be
// offered once) or whose prerequisite upgrade hasn't been activated yet.
func candidateVoucher(stream *prng.Stream, state *runstate.State) (int, bool) {
	ordinal := prng.NextRandomInt(stream, 0, len(tables.Vouchers)-1)
	if state.IsVoucherActive(ordinal) {
		return 0, false
	}
	if pre, ok := tables.VoucherPrerequisite(ordinal); ok && !state.IsVoucherActive(pre) {
		return 0, false
	}
	return ordinal, true
}

// DrawVoucher draws the shop's voucher slot, resampling past any
// candidate that repeats an already-active voucher or whose upgrade
// prerequisite is not yet satisfied (spec.md §3 voucher invariant,
// §4.3 "Voucher"). It asserts if no acceptable candidate is found within
// tables.ResampleAssertBound resamples — past that point the run state
// is internally inconsistent, not merely unlucky.
func DrawVoucher(src *streams.Source, state *runstate.State) item.Item {
	if ordinal, ok := candidateVoucher(&src.State, state); ok {
		return item.New(item.CategoryVoucher, ordinal)
	}
	for n := 1; n <= tables.ResampleAssertBound; n++ {
		if ordinal, ok := candidateVoucher(src.Resample(n), state); ok {
			return item.New(item.CategoryVoucher, ordinal)
		}
	}
	panic("rungen: DrawVoucher exceeded ResampleAssertBound without an acceptable candidate")
}
