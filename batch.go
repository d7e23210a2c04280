package linfit

import (
	"github.com/tphakala/go-linear-fit/internal/simdops"
)

// ValuesTo evaluates the line at every element of xs and writes the results
// into dst, which must hold at least len(xs) elements. It returns
// dst[:len(xs)]. dst and xs may alias.
func (c LineCoefficients) ValuesTo(dst, xs []float32) []float32 {
	dst = dst[:len(xs)]
	simdops.AffineTo(dst, xs, c.K, c.B)
	return dst
}

// SumSquaredResiduals returns Σ (yᵢ − f(xᵢ))² over the eight samples.
func (c LineCoefficients) SumSquaredResiduals(x, y *Samples) float32 {
	var r [PointCount]float32
	c.ValuesTo(r[:], x[:])
	for i := range r {
		r[i] = y[i] - r[i]
	}
	return simdops.SumSquares(r[:])
}

// ValuesTo evaluates the plane at (xs[i], ys[i]) for the first
// min(len(xs), len(ys)) points and writes the results into dst, which must
// hold that many elements. It returns the written prefix of dst.
func (c PlaneCoefficients) ValuesTo(dst, xs, ys []float32) []float32 {
	n := min(len(xs), len(ys))
	dst = dst[:n]
	simdops.AffineTo(dst, xs[:n], c.A, c.C)
	simdops.AddScaled(dst, ys[:n], c.B)
	return dst
}

// SumSquaredResiduals returns Σ (zᵢ − f(xᵢ, yᵢ))² over the eight samples.
func (c PlaneCoefficients) SumSquaredResiduals(x, y, z *Samples) float32 {
	var r [PointCount]float32
	c.ValuesTo(r[:], x[:], y[:])
	for i := range r {
		r[i] = z[i] - r[i]
	}
	return simdops.SumSquares(r[:])
}

// ValuesTo evaluates the fitted line at every element of xs.
// See LineCoefficients.ValuesTo.
func (l *Line) ValuesTo(dst, xs []float32) []float32 {
	return l.coef.ValuesTo(dst, xs)
}

// ValuesTo evaluates the fitted plane at every (xs[i], ys[i]).
// See PlaneCoefficients.ValuesTo.
func (p *Plane) ValuesTo(dst, xs, ys []float32) []float32 {
	return p.coef.ValuesTo(dst, xs, ys)
}
