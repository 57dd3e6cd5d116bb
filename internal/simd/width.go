// Package simd resolves the active SIMD lane width for the search
// driver once, at process start, the same way the teacher's
// internal/cuda package gates GPU-vs-CPU dispatch on a detected
// hardware capability rather than a compile-time constant. Here the
// capability is the host CPU's vector ISA; the implementation itself
// stays pure Go (portable float64 loops), and the resolved width simply
// tells internal/search and internal/prng how many lanes to use per
// batch.
package simd

import "github.com/klauspost/cpuid/v2"

// Width8 is the AVX-512 float64x8 lane count named throughout spec.md
// as the typical configuration.
const (
	Width8 = 8
	Width4 = 4
	Width1 = 1
)

// ResolveWidth inspects the host CPU and returns the widest lane count
// this process can use: 8 with AVX-512F, 4 with AVX2, otherwise 1
// (scalar fallback). It never errors — unsupported hardware degrades to
// scalar execution rather than failing the search.
func ResolveWidth() int {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		return Width8
	case cpuid.CPU.Supports(cpuid.AVX2):
		return Width4
	default:
		return Width1
	}
}

// ResolveWidthCapped is ResolveWidth clamped to at most max, for callers
// (tests, --batchSize-constrained runs) that want a specific width
// regardless of what the host supports.
func ResolveWidthCapped(max int) int {
	w := ResolveWidth()
	if w > max {
		return max
	}
	return w
}
