package linfit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-linear-fit/internal/svd"
)

// recordingDecomposer returns a fixed solution and records its inputs.
type recordingDecomposer struct {
	calls    int
	rows     int
	cols     int
	eps      float64
	solution []float64
	err      error
	solveErr error
}

func (r *recordingDecomposer) Decompose(rows, cols int, _ []float64) (Decomposition, error) {
	r.calls++
	r.rows, r.cols = rows, cols
	if r.err != nil {
		return nil, r.err
	}
	return r, nil
}

func (r *recordingDecomposer) Solve(dst, _ []float64, eps float64) error {
	r.eps = eps
	if r.solveErr != nil {
		return r.solveErr
	}
	copy(dst, r.solution)
	return nil
}

// nilDecomposer reports success without producing a decomposition.
type nilDecomposer struct{}

func (nilDecomposer) Decompose(int, int, []float64) (Decomposition, error) {
	return nil, nil
}

func TestSolveDesign_SizeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		cols   int
		a, v   int
		dstLen int
	}{
		{"fewer matrix rows than targets", Columns2D, 14, 8, Columns2D},
		{"more matrix rows than targets", Columns2D, 16, 7, Columns2D},
		{"3D rows short", Columns3D, 21, 8, Columns3D},
		{"matrix not a multiple of columns", Columns3D, 25, 8, Columns3D},
		{"no columns", 0, 0, 8, 0},
		{"solution length differs", Columns2D, 16, 8, Columns3D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := &recordingDecomposer{}
			dst := make([]float32, tt.dstLen)
			for i := range dst {
				dst[i] = 9
			}

			err := solveDesign(dec, tt.cols, make([]float32, tt.a), make([]float32, tt.v), 1e-4, dst)
			require.ErrorIs(t, err, ErrMatrixSizeNotMatch)
			assert.False(t, errors.Is(err, ErrSvdFailed))
			assert.Zero(t, dec.calls, "decomposition must not be attempted")
			for _, d := range dst {
				assert.Equal(t, float32(9), d)
			}
		})
	}
}

func TestSolveDesign_PassesShapeAndEps(t *testing.T) {
	dec := &recordingDecomposer{solution: []float64{1.5, -2.5, 4}}
	dst := make([]float32, Columns3D)

	err := solveDesign(dec, Columns3D, make([]float32, 24), make([]float32, 8), 0.25, dst)
	require.NoError(t, err)

	assert.Equal(t, 1, dec.calls)
	assert.Equal(t, PointCount, dec.rows)
	assert.Equal(t, Columns3D, dec.cols)
	assert.InDelta(t, 0.25, dec.eps, 0)
	assert.Equal(t, []float32{1.5, -2.5, 4}, dst)
}

func TestSolveDesign_DecomposerErrors(t *testing.T) {
	backendErr := errors.New("backend exploded")

	tests := []struct {
		name string
		dec  *recordingDecomposer
	}{
		{"decompose", &recordingDecomposer{err: backendErr}},
		{"solve", &recordingDecomposer{solveErr: backendErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := solveDesign(tt.dec, Columns2D, make([]float32, 16), make([]float32, 8), 1e-4, make([]float32, 2))
			require.ErrorIs(t, err, ErrSvdFailed)
			require.ErrorIs(t, err, backendErr)
		})
	}
}

func TestSolveDesign_Float32Overflow(t *testing.T) {
	dec := &recordingDecomposer{solution: []float64{1, math.MaxFloat32 * 4}}
	dst := []float32{7, 7}

	err := solveDesign(dec, Columns2D, make([]float32, 16), make([]float32, 8), 1e-4, dst)
	require.ErrorIs(t, err, ErrSvdFailed)
	assert.Equal(t, []float32{7, 7}, dst)
}

func TestSolveDesign_DefaultBackendWrapsCause(t *testing.T) {
	x := Samples{}
	y := Samples{1, 1, 1, 1, 1, 1, 1, 1}
	a, v := BuildDesignData2D(&x, &y)

	err := solveDesign(nil, Columns2D, a[:], v[:], 100, make([]float32, 2))
	require.ErrorIs(t, err, ErrSvdFailed)
	require.ErrorIs(t, err, svd.ErrRankDeficient)
}

func TestLine_CustomDecomposer(t *testing.T) {
	dec := &recordingDecomposer{solution: []float64{3, -2}}
	l := NewLine(dec)

	a, v := BuildDesignData2D(&referenceX, &referenceY)
	got, err := l.Fit(a, v, 1e-4)
	require.NoError(t, err)

	assert.Equal(t, LineCoefficients{K: -2, B: 3}, got)
	assert.Equal(t, 1, dec.calls)
}

func TestPlane_CustomDecomposerFailure(t *testing.T) {
	dec := &recordingDecomposer{solution: []float64{1, 2, 3}}
	p := NewPlane(dec)
	a, v := planeDesign(1, 1, 1)

	_, err := p.Fit(a, v, 1e-4)
	require.NoError(t, err)
	assert.Equal(t, PlaneCoefficients{A: 2, B: 3, C: 1}, p.Snapshot())

	dec.solveErr = errors.New("no convergence")
	_, err = p.Fit(a, v, 1e-4)
	require.ErrorIs(t, err, ErrSvdFailed)
	assert.Equal(t, PlaneCoefficients{}, p.Snapshot())
}

func TestSVD_ImplementsDecomposer(t *testing.T) {
	var d Decomposer = SVD{}
	a, v := BuildDesignData2D(&referenceX, &referenceY)

	a64 := make([]float64, len(a))
	for i, e := range a {
		a64[i] = float64(e)
	}
	decomp, err := d.Decompose(PointCount, Columns2D, a64)
	require.NoError(t, err)

	v64 := make([]float64, len(v))
	for i, e := range v {
		v64[i] = float64(e)
	}
	x := make([]float64, Columns2D)
	require.NoError(t, decomp.Solve(x, v64, 1e-4))
	assert.InDelta(t, 5.00048, x[0], 1e-4)
	assert.InDelta(t, -10.00534, x[1], 1e-4)

	_, err = d.Decompose(PointCount, Columns2D, a64[:15])
	require.ErrorIs(t, err, svd.ErrDimensionMismatch)
}

func TestSolveDesign_NilDecomposition(t *testing.T) {
	a, v := BuildDesignData2D(&referenceX, &referenceY)
	dst := []float32{7, 7}

	var err error
	require.NotPanics(t, func() {
		err = solveDesign(nilDecomposer{}, Columns2D, a[:], v[:], 1e-4, dst)
	})
	require.ErrorIs(t, err, ErrSvdFailed)
	assert.Contains(t, err.Error(), "nil decomposition")
	assert.Equal(t, []float32{7, 7}, dst)

	l := NewLine(nilDecomposer{})
	_, err = l.Fit(a, v, 1e-4)
	require.ErrorIs(t, err, ErrSvdFailed)
	assert.Equal(t, LineCoefficients{}, l.Snapshot())
}

func TestCondition2D(t *testing.T) {
	tests := []struct {
		name string
		x    Samples
		want float64
	}{
		{"orthonormal columns", Samples{-1, 1, -1, 1, -1, 1, -1, 1}, 1},
		{"scaled x column", Samples{-10, 10, -10, 10, -10, 10, -10, 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y Samples
			a, _ := BuildDesignData2D(&tt.x, &y)
			got, err := Condition2D(&a)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCondition3D(t *testing.T) {
	x := Samples{-1, 1, -1, 1, -1, 1, -1, 1}
	y := Samples{1, 1, -1, -1, 1, 1, -1, -1}
	var z Samples
	a, _ := BuildDesignData3D(&x, &y, &z)

	got, err := Condition3D(&a)
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-9)
}

func TestCondition_NonFinite(t *testing.T) {
	x := Samples{0, 1, 2, 3, 4, 5, 6, float32(math.Inf(1))}
	var y Samples
	a, _ := BuildDesignData2D(&x, &y)

	_, err := Condition2D(&a)
	require.ErrorIs(t, err, ErrSvdFailed)
	require.ErrorIs(t, err, svd.ErrNonFinite)
}
