// Package simdops provides generic SIMD kernels for float32 and float64 slices.
// Batch evaluation and residual accumulation share one code path for both
// precisions through the function pointers held in Ops.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// AffineTo writes dst[i] = a[i]*scale + offset for i < len(a).
// dst must be at least as long as a; dst and a may alias.
func AffineTo[F Float](dst, a []F, scale, offset F) {
	dst = dst[:len(a)]
	For[F]().Scale(dst, a, scale)
	for i := range dst {
		dst[i] += offset
	}
}

// AddScaled writes dst[i] += a[i]*scale for i < len(a).
func AddScaled[F Float](dst, a []F, scale F) {
	dst = dst[:len(a)]
	for i, v := range a {
		dst[i] += v * scale
	}
}

// SumSquares returns Σ a[i]².
func SumSquares[F Float](a []F) F {
	return For[F]().DotProductUnsafe(a, a)
}
