package linfit

import "errors"

// Errors returned by Line.Fit and Plane.Fit. Both leave the fitter in the
// unfit (all-zero) state.
var (
	// ErrMatrixSizeNotMatch indicates a design matrix whose row count differs
	// from the target vector length. No decomposition is attempted.
	ErrMatrixSizeNotMatch = errors.New("linfit: matrix size not match")

	// ErrSvdFailed indicates that the decomposition could not produce a
	// solution within the tolerance. The backend cause is wrapped.
	ErrSvdFailed = errors.New("linfit: SVD solve failed")
)
