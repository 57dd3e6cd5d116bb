package prng

// MaxLanes is the widest SIMD lane count this package supports (an
// AVX-512 float64x8 register). internal/simd resolves the *active*
// width at process start; everything here is sized to the maximum so a
// VectorStream never needs to reallocate when the active width changes.
const MaxLanes = 8

// LaneMask selects which lanes of a VectorStream advance on a given
// call — spec.md §4.1's "unmasked lanes retain their prior state so
// that conditional draws preserve RNG alignment with the scalar
// reference."
type LaneMask uint8

// FullMask selects all lanes up to width.
func FullMask(width int) LaneMask {
	return LaneMask((1 << uint(width)) - 1)
}

// Has reports whether lane i is selected.
func (m LaneMask) Has(lane int) bool {
	return m&(1<<uint(lane)) != 0
}

// VectorStream holds MaxLanes independent Stream lanes laid out as a
// typed view (row = logical stream, column = lane) rather than a raw
// pointer into a float64 matrix, per spec.md §9's redesign note against
// exposing SIMD pointer arithmetic outside the kernel.
type VectorStream struct {
	lanes [MaxLanes]Stream
	width int
}

// NewVectorStream builds a VectorStream of the given active width,
// seeding each lane with its own initial_state (typically produced by
// pseudohash.FinishKey applied to each lane's partial hash).
func NewVectorStream(width int, initialStates [MaxLanes]float64) VectorStream {
	var vs VectorStream
	vs.width = width
	for i := 0; i < width; i++ {
		vs.lanes[i] = NewActive(initialStates[i])
	}
	for i := width; i < MaxLanes; i++ {
		vs.lanes[i] = Absent()
	}
	return vs
}

// Width returns the number of active lanes.
func (vs *VectorStream) Width() int { return vs.width }

// Lane returns a pointer to the scalar Stream backing lane i, for
// scalar-path reuse: a lane can be driven through the exact same
// prng.NextRandom the scalar evaluator uses.
func (vs *VectorStream) Lane(i int) *Stream {
	return &vs.lanes[i]
}

// NextRandomMasked advances every lane selected by mask by one step and
// returns all MaxLanes draws; lanes outside [0,width) or not selected by
// mask are returned as 0 and their state is left untouched.
func (vs *VectorStream) NextRandomMasked(mask LaneMask) [MaxLanes]float64 {
	var out [MaxLanes]float64
	for i := 0; i < vs.width; i++ {
		if !mask.Has(i) {
			continue
		}
		if !vs.lanes[i].IsActive() {
			continue
		}
		out[i] = NextRandom(&vs.lanes[i])
	}
	return out
}

// NextRandomIntMasked is the vector form of NextRandomInt.
func (vs *VectorStream) NextRandomIntMasked(mask LaneMask, lo, hi int) [MaxLanes]int {
	var out [MaxLanes]int
	draws := vs.NextRandomMasked(mask)
	for i := 0; i < vs.width; i++ {
		if !mask.Has(i) {
			continue
		}
		r := draws[i]
		out[i] = intFromDraw(r, lo, hi)
	}
	return out
}

func intFromDraw(r float64, lo, hi int) int {
	span := float64(hi - lo + 1)
	n := int(r * span)
	return n + lo
}
