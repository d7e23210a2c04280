package linfit

import "fmt"

// PlaneCoefficients is a snapshot of the plane f(x, y) = A·x + B·y + C.
type PlaneCoefficients struct {
	A float32
	B float32
	C float32
}

// Value evaluates A·x + B·y + C.
func (c PlaneCoefficients) Value(x, y float32) float32 {
	return c.A*x + c.B*y + c.C
}

// String formats the plane as an equation.
func (c PlaneCoefficients) String() string {
	return fmt.Sprintf("f(x, y) = %gx + %gy + %g", c.A, c.B, c.C)
}

// Plane fits and evaluates f(x, y) = ax + by + c over eight samples.
//
// The zero value is an unfit plane that evaluates to 0 everywhere and solves
// with the default SVD backend. A Plane is not safe for concurrent use.
type Plane struct {
	coef PlaneCoefficients
	dec  Decomposer
}

// NewPlane returns an unfit Plane that solves with d.
// A nil d selects the default SVD backend.
func NewPlane(d Decomposer) *Plane {
	return &Plane{dec: d}
}

// Fit solves a·x ≈ v in the least-squares sense, treating singular values at
// or below eps as zero, and replaces the stored coefficients with the result.
// Solution components 0, 1 and 2 become c, a and b respectively.
//
// On error the coefficients are reset to zero and the error matches
// ErrMatrixSizeNotMatch or ErrSvdFailed.
func (p *Plane) Fit(a DesignMatrix3D, v TargetVector, eps float32) (PlaneCoefficients, error) {
	var x [Columns3D]float32
	if err := solveDesign(p.dec, Columns3D, a[:], v[:], eps, x[:]); err != nil {
		p.Reset()
		return PlaneCoefficients{}, err
	}

	p.coef = PlaneCoefficients{
		A: x[xIndex],
		B: x[yIndex],
		C: x[interceptIndex],
	}
	return p.coef, nil
}

// Coefficients returns a, b and c.
func (p *Plane) Coefficients() (a, b, c float32) {
	return p.coef.A, p.coef.B, p.coef.C
}

// Snapshot returns a copy of the stored coefficients.
func (p *Plane) Snapshot() PlaneCoefficients {
	return p.coef
}

// Value evaluates the fitted plane at (x, y).
func (p *Plane) Value(x, y float32) float32 {
	return p.coef.Value(x, y)
}

// Reset returns the plane to the unfit state.
func (p *Plane) Reset() {
	p.coef = PlaneCoefficients{}
}
