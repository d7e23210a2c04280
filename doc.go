// Package linfit computes least-squares linear models from exactly eight
// sample points: a line f(x) = kx + b and a plane f(x, y) = ax + by + c.
//
// Fits are solved through a singular value decomposition with a
// caller-supplied tolerance, which makes the solve robust to rank-deficient
// and ill-conditioned sample sets. Typical uses are sensor linearization and
// calibration curves in control loops, where sample counts are fixed and
// inputs arrive as small fixed-size arrays.
//
// # Quick Start
//
// For a one-shot fit:
//
//	x := linfit.Samples{-2.8, -1.6, -0.5, 5.0, 5.4, 6.7, 10.3, 13.8}
//	y := linfit.Samples{33.1, 21.1, 9.9, -45.2, -49.1, -61.9, -98.1, -132.99}
//	line, err := linfit.FitLine(&x, &y, linfit.DefaultEps)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.Value(5.0))
//
// To keep the fitted state across calls:
//
//	var l linfit.Line
//	a, v := linfit.BuildDesignData2D(&x, &y)
//	if _, err := l.Fit(a, v, 1e-4); err != nil {
//	    // l is back in the unfit state and evaluates to 0
//	}
//	k, b := l.Coefficients()
//
// # Solution Layout
//
// The design matrix carries a leading column of ones, so solution component
// 0 is always the constant term. Lines map components (0, 1) to (b, k);
// planes map components (0, 1, 2) to (c, a, b).
//
// # Tolerance
//
// Singular values at or below eps are treated as zero. The fit fails with
// [ErrSvdFailed] when no singular value exceeds eps, and when eps is negative
// or NaN. A tolerance that is too large can therefore reject a system that
// is solvable; one that is too small lets noise in near-degenerate samples
// dominate the coefficients.
//
// # Errors
//
// [Line.Fit] and [Plane.Fit] return errors matching [ErrMatrixSizeNotMatch]
// or [ErrSvdFailed] via errors.Is. Either way the fitter is reset to its
// unfit state, in which every evaluation returns 0.
//
// # Backends
//
// The default [SVD] backend uses gonum. Any type implementing [Decomposer]
// can be passed to [NewLine] or [NewPlane] instead.
//
// # Thread Safety
//
// [Line] and [Plane] hold mutable state and are not safe for concurrent use.
// Coefficient snapshots ([LineCoefficients], [PlaneCoefficients]) are plain
// values and may be shared freely.
package linfit
