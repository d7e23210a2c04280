package linfit

// Fixed problem dimensions
const (
	// PointCount is the number of samples consumed by every fit.
	PointCount = 8

	Columns2D = 2 // Design matrix columns for f(x) = kx + b: [1, x]
	Columns3D = 3 // Design matrix columns for f(x, y) = ax + by + c: [1, x, y]
)

// Tolerance defaults
const (
	// DefaultEps is the singular value threshold used by the convenience
	// functions and the commands.
	DefaultEps float32 = 1e-4
)

// Solution vector component indices
const (
	interceptIndex = 0 // Constant column, always first
	xIndex         = 1
	yIndex         = 2
)
