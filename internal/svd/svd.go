// Package svd wraps gonum's singular value decomposition for small dense
// least-squares problems with an absolute singular value threshold.
package svd

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the decomposition.
var (
	// ErrDimensionMismatch indicates operand lengths that disagree with the factorized shape.
	ErrDimensionMismatch = errors.New("svd: dimension mismatch")

	// ErrNonFinite indicates a NaN or Inf in the input matrix, vector or solution.
	ErrNonFinite = errors.New("svd: NaN or Inf encountered")

	// ErrFactorization indicates that LAPACK did not converge.
	ErrFactorization = errors.New("svd: factorization failed")

	// ErrInvalidTolerance indicates a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("svd: tolerance must be a non-negative number")

	// ErrRankDeficient indicates that every singular value is at or below the tolerance.
	ErrRankDeficient = errors.New("svd: no singular value above tolerance")
)

// Factorization is the full SVD A = U·Σ·Vᵀ of a rows×cols matrix.
// Both U and V are computed so the factorization can solve least-squares systems.
type Factorization struct {
	rows   int
	cols   int
	svd    mat.SVD
	values []float64
}

// Factorize decomposes the row-major rows×cols matrix held in a.
// The input slice is copied and never modified.
func Factorize(rows, cols int, a []float64) (*Factorization, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid shape %dx%d", ErrDimensionMismatch, rows, cols)
	}
	if len(a) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d matrix needs %d elements, got %d",
			ErrDimensionMismatch, rows, cols, rows*cols, len(a))
	}
	if i := firstNonFinite(a); i >= 0 {
		return nil, fmt.Errorf("%w: matrix element %d", ErrNonFinite, i)
	}

	data := make([]float64, len(a))
	copy(data, a)

	f := &Factorization{rows: rows, cols: cols}
	if ok := f.svd.Factorize(mat.NewDense(rows, cols, data), mat.SVDFull); !ok {
		return nil, ErrFactorization
	}
	f.values = f.svd.Values(nil)

	return f, nil
}

// Values returns the singular values in descending order.
// The returned slice is a copy.
func (f *Factorization) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}

// Condition returns the 2-norm condition number of the factorized matrix.
func (f *Factorization) Condition() float64 {
	return f.svd.Cond()
}

// Rank returns the number of singular values strictly greater than eps.
func (f *Factorization) Rank(eps float64) int {
	rank := 0
	for _, s := range f.values {
		if s > eps {
			rank++
		}
	}
	return rank
}

// Solve writes into dst the minimum-norm x minimizing ‖A·x − b‖₂, treating
// singular values at or below eps as zero. dst must have one element per
// column and b one per row. dst is left untouched on error.
func (f *Factorization) Solve(dst, b []float64, eps float64) error {
	if eps < 0 || math.IsNaN(eps) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, eps)
	}
	if len(b) != f.rows {
		return fmt.Errorf("%w: vector has %d elements, matrix has %d rows", ErrDimensionMismatch, len(b), f.rows)
	}
	if len(dst) != f.cols {
		return fmt.Errorf("%w: solution has %d elements, matrix has %d columns", ErrDimensionMismatch, len(dst), f.cols)
	}
	if i := firstNonFinite(b); i >= 0 {
		return fmt.Errorf("%w: vector element %d", ErrNonFinite, i)
	}

	rank := f.Rank(eps)
	if rank == 0 {
		return fmt.Errorf("%w: eps=%g, largest singular value %g", ErrRankDeficient, eps, f.largest())
	}

	rhs := make([]float64, len(b))
	copy(rhs, b)

	var x mat.VecDense
	f.svd.SolveVecTo(&x, mat.NewVecDense(len(rhs), rhs), rank)

	for i := range dst {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: solution element %d", ErrNonFinite, i)
		}
	}
	for i := range dst {
		dst[i] = x.AtVec(i)
	}

	return nil
}

func (f *Factorization) largest() float64 {
	if len(f.values) == 0 {
		return 0
	}
	return f.values[0]
}

// firstNonFinite returns the index of the first NaN or Inf in s, or -1.
func firstNonFinite(s []float64) int {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
