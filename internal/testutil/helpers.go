// Package testutil provides reusable test helpers for the fitting packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for float32 fits.
const (
	// CoefficientTolerance is the absolute tolerance for recovered coefficients
	// of noiseless datasets with moderate magnitudes.
	CoefficientTolerance = 1e-3

	// RelativeTolerance bounds single-precision round-trip error.
	RelativeTolerance = 1e-4

	// TinyEps is a tolerance far below any singular value in the generated datasets.
	TinyEps = 1e-6
)

// LineXs is a spread of abscissae giving a well-conditioned 8x2 design matrix.
var LineXs = [8]float32{-2.8, -1.6, -0.5, 5.0, 5.4, 6.7, 10.3, 13.8}

// PlaneXs and PlaneYs give a well-conditioned 8x3 design matrix.
var (
	PlaneXs = [8]float32{-3, -1, 0, 1, 2, 4, 5, 7}
	PlaneYs = [8]float32{2, -4, 1, 6, -2, 3, -5, 0}
)

// LinePoints returns y = k*x + b evaluated at xs.
func LinePoints(xs [8]float32, k, b float32) [8]float32 {
	var ys [8]float32
	for i, x := range xs {
		ys[i] = k*x + b
	}
	return ys
}

// PlanePoints returns z = a*x + b*y + c evaluated at (xs[i], ys[i]).
func PlanePoints(xs, ys [8]float32, a, b, c float32) [8]float32 {
	var zs [8]float32
	for i := range xs {
		zs[i] = a*xs[i] + b*ys[i] + c
	}
	return zs
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within (min, max), exclusive.
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value <= minVal || value >= maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range (%f, %f)", value, minVal, maxVal)
	}
	return true
}

// AssertAllZero verifies that every value is exactly zero.
func AssertAllZero(t *testing.T, values ...float32) bool {
	t.Helper()
	for i, v := range values {
		if v != 0 {
			return assert.Fail(t, "value not zero", "values[%d]=%f", i, v)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}
