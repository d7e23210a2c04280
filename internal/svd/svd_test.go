package svd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orthogonalColumns is an 8x2 matrix whose columns are orthogonal with norms 2 and 4.
func orthogonalColumns() []float64 {
	a := make([]float64, 16)
	for i := range 8 {
		if i < 4 {
			a[i*2] = 1
		} else {
			a[i*2+1] = 2
		}
	}
	return a
}

func TestFactorize_Shape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		n          int
	}{
		{"zero rows", 0, 2, 0},
		{"negative cols", 8, -1, 8},
		{"short data", 8, 2, 15},
		{"long data", 8, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Factorize(tt.rows, tt.cols, make([]float64, tt.n))
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}

func TestFactorize_NonFinite(t *testing.T) {
	a := orthogonalColumns()
	a[5] = math.NaN()
	_, err := Factorize(8, 2, a)
	require.ErrorIs(t, err, ErrNonFinite)

	a[5] = math.Inf(-1)
	_, err = Factorize(8, 2, a)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestFactorize_DoesNotModifyInput(t *testing.T) {
	a := orthogonalColumns()
	want := orthogonalColumns()
	_, err := Factorize(8, 2, a)
	require.NoError(t, err)
	assert.Equal(t, want, a)
}

func TestFactorization_ValuesAndRank(t *testing.T) {
	f, err := Factorize(8, 2, orthogonalColumns())
	require.NoError(t, err)

	values := f.Values()
	require.Len(t, values, 2)
	assert.InDelta(t, 4.0, values[0], 1e-12)
	assert.InDelta(t, 2.0, values[1], 1e-12)
	assert.InDelta(t, 2.0, f.Condition(), 1e-9)

	assert.Equal(t, 2, f.Rank(0))
	assert.Equal(t, 2, f.Rank(1))
	assert.Equal(t, 1, f.Rank(3.5))
	assert.Equal(t, 0, f.Rank(100))

	// Singular values equal to eps count as zero.
	assert.Equal(t, 1, f.Rank(values[1]))
	assert.Equal(t, 0, f.Rank(values[0]))

	values[0] = -1
	assert.InDelta(t, 4.0, f.Values()[0], 1e-12, "Values must return a copy")
}

func TestFactorization_SolveExactLine(t *testing.T) {
	xs := []float64{-3, -1, 0, 2, 4, 5, 7, 11}
	a := make([]float64, 16)
	b := make([]float64, 8)
	for i, x := range xs {
		a[i*2] = 1
		a[i*2+1] = x
		b[i] = 2.5*x - 7
	}

	f, err := Factorize(8, 2, a)
	require.NoError(t, err)

	x := make([]float64, 2)
	require.NoError(t, f.Solve(x, b, 1e-9))
	assert.InDelta(t, -7.0, x[0], 1e-9)
	assert.InDelta(t, 2.5, x[1], 1e-9)
}

func TestFactorization_SolveTruncatesRank(t *testing.T) {
	// Second column is zero, so the system has rank one.
	a := make([]float64, 16)
	b := make([]float64, 8)
	for i := range 8 {
		a[i*2] = 1
		b[i] = 3
	}

	f, err := Factorize(8, 2, a)
	require.NoError(t, err)

	x := []float64{42, 42}
	require.NoError(t, f.Solve(x, b, 1e-6))
	assert.InDelta(t, 3.0, x[0], 1e-9)
	assert.InDelta(t, 0.0, x[1], 1e-9, "minimum-norm solution")
}

func TestFactorization_SolveErrors(t *testing.T) {
	f, err := Factorize(8, 2, orthogonalColumns())
	require.NoError(t, err)

	b := make([]float64, 8)
	nanB := make([]float64, 8)
	nanB[3] = math.NaN()

	tests := []struct {
		name    string
		dst     []float64
		b       []float64
		eps     float64
		wantErr error
	}{
		{"negative eps", make([]float64, 2), b, -1e-6, ErrInvalidTolerance},
		{"NaN eps", make([]float64, 2), b, math.NaN(), ErrInvalidTolerance},
		{"short vector", make([]float64, 2), make([]float64, 7), 1e-6, ErrDimensionMismatch},
		{"wrong solution length", make([]float64, 3), b, 1e-6, ErrDimensionMismatch},
		{"NaN vector", make([]float64, 2), nanB, 1e-6, ErrNonFinite},
		{"eps at largest value", make([]float64, 2), b, f.Values()[0], ErrRankDeficient},
		{"eps above largest value", make([]float64, 2), b, 1e3, ErrRankDeficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Solve(tt.dst, tt.b, tt.eps)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFactorization_SolveLeavesDstOnError(t *testing.T) {
	f, err := Factorize(8, 2, orthogonalColumns())
	require.NoError(t, err)

	dst := []float64{1, 2}
	require.Error(t, f.Solve(dst, make([]float64, 8), 10))
	assert.Equal(t, []float64{1, 2}, dst)
}

func BenchmarkFactorizeSolve_8x3(b *testing.B) {
	a := make([]float64, 24)
	v := make([]float64, 8)
	for i := range 8 {
		x, y := float64(i), float64(i*i%5)
		a[i*3], a[i*3+1], a[i*3+2] = 1, x, y
		v[i] = 0.5*x - 2*y + 1
	}
	dst := make([]float64, 3)

	for b.Loop() {
		f, err := Factorize(8, 3, a)
		if err != nil {
			b.Fatal(err)
		}
		if err := f.Solve(dst, v, 1e-9); err != nil {
			b.Fatal(err)
		}
	}
}
