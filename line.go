package linfit

import "fmt"

// LineCoefficients is a snapshot of the line f(x) = K·x + B.
type LineCoefficients struct {
	K float32 // Slope
	B float32 // Intercept
}

// Value evaluates K·x + B.
func (c LineCoefficients) Value(x float32) float32 {
	return c.K*x + c.B
}

// String formats the line as an equation.
func (c LineCoefficients) String() string {
	return fmt.Sprintf("f(x) = %gx + %g", c.K, c.B)
}

// Line fits and evaluates f(x) = kx + b over eight samples.
//
// The zero value is an unfit line that evaluates to 0 everywhere and solves
// with the default SVD backend. A Line is not safe for concurrent use.
type Line struct {
	coef LineCoefficients
	dec  Decomposer
}

// NewLine returns an unfit Line that solves with d.
// A nil d selects the default SVD backend.
func NewLine(d Decomposer) *Line {
	return &Line{dec: d}
}

// Fit solves a·x ≈ v in the least-squares sense, treating singular values at
// or below eps as zero, and replaces the stored coefficients with the result.
// Solution component 0 becomes the intercept and component 1 the slope.
//
// On error the coefficients are reset to zero and the error matches
// ErrMatrixSizeNotMatch or ErrSvdFailed.
func (l *Line) Fit(a DesignMatrix2D, v TargetVector, eps float32) (LineCoefficients, error) {
	var x [Columns2D]float32
	if err := solveDesign(l.dec, Columns2D, a[:], v[:], eps, x[:]); err != nil {
		l.Reset()
		return LineCoefficients{}, err
	}

	l.coef = LineCoefficients{
		K: x[xIndex],
		B: x[interceptIndex],
	}
	return l.coef, nil
}

// Coefficients returns the slope k and intercept b.
func (l *Line) Coefficients() (k, b float32) {
	return l.coef.K, l.coef.B
}

// Snapshot returns a copy of the stored coefficients.
func (l *Line) Snapshot() LineCoefficients {
	return l.coef
}

// Value evaluates the fitted line at x.
func (l *Line) Value(x float32) float32 {
	return l.coef.Value(x)
}

// Reset returns the line to the unfit state.
func (l *Line) Reset() {
	l.coef = LineCoefficients{}
}
