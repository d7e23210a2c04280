package linfit

import (
	"fmt"

	"github.com/tphakala/go-linear-fit/internal/svd"
)

// Decomposer factorizes a design matrix so it can be solved in the
// least-squares sense. Any linear algebra backend offering an SVD solve with
// a singular value threshold can implement it.
type Decomposer interface {
	// Decompose factorizes the row-major rows×cols matrix held in a.
	// Implementations must not retain or modify a.
	Decompose(rows, cols int, a []float64) (Decomposition, error)
}

// Decomposition is a factorized design matrix.
type Decomposition interface {
	// Solve writes into dst the x minimizing ‖A·x − b‖₂, treating singular
	// values at or below eps as zero. It returns an error when no solution
	// exists within the tolerance.
	Solve(dst, b []float64, eps float64) error
}

// SVD is the default Decomposer, backed by gonum's full singular value
// decomposition. It fails when every singular value is at or below eps.
type SVD struct{}

// Decompose implements Decomposer.
func (SVD) Decompose(rows, cols int, a []float64) (Decomposition, error) {
	f, err := svd.Factorize(rows, cols, a)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// decomposerOrDefault returns d, or SVD when d is nil.
func decomposerOrDefault(d Decomposer) Decomposer {
	if d == nil {
		return SVD{}
	}
	return d
}

// Condition2D returns the 2-norm condition number of a line design matrix.
// Large values mean the fitted coefficients are sensitive to noise in the
// samples.
func Condition2D(a *DesignMatrix2D) (float64, error) {
	return condition(Columns2D, a[:])
}

// Condition3D returns the 2-norm condition number of a plane design matrix.
func Condition3D(a *DesignMatrix3D) (float64, error) {
	return condition(Columns3D, a[:])
}

func condition(cols int, a []float32) (float64, error) {
	f, err := svd.Factorize(len(a)/cols, cols, widen(a))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSvdFailed, err)
	}
	return f.Condition(), nil
}
