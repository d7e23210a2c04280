package linfit

import (
	"fmt"
	"math"
)

// solveDesign solves the least-squares system a·x ≈ v for the cols-column
// design matrix a and writes x into dst, which must have cols elements.
//
// The row count is checked against the target length even though the public
// array types already fix both.
func solveDesign(dec Decomposer, cols int, a, v []float32, eps float32, dst []float32) error {
	if cols <= 0 || len(a) != cols*len(v) {
		return fmt.Errorf("%w: %d matrix elements with %d columns, %d targets",
			ErrMatrixSizeNotMatch, len(a), cols, len(v))
	}
	if len(dst) != cols {
		return fmt.Errorf("%w: %d coefficients requested for %d columns",
			ErrMatrixSizeNotMatch, len(dst), cols)
	}

	rows := len(v)
	a64 := widen(a)
	v64 := widen(v)

	decomp, err := decomposerOrDefault(dec).Decompose(rows, cols, a64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSvdFailed, err)
	}
	if decomp == nil {
		return fmt.Errorf("%w: nil decomposition", ErrSvdFailed)
	}

	x := make([]float64, cols)
	if err := decomp.Solve(x, v64, float64(eps)); err != nil {
		return fmt.Errorf("%w: %w", ErrSvdFailed, err)
	}

	// Narrow only after every component is known to fit in float32.
	for i, e := range x {
		if math.IsNaN(e) || math.Abs(e) > math.MaxFloat32 {
			return fmt.Errorf("%w: coefficient %d (%g) is not representable as float32",
				ErrSvdFailed, i, e)
		}
	}
	for i, e := range x {
		dst[i] = float32(e)
	}

	return nil
}

// widen copies s into a new float64 slice.
func widen(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, e := range s {
		out[i] = float64(e)
	}
	return out
}
