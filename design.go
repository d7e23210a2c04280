package linfit

// Samples holds one coordinate of the eight sample points.
type Samples [PointCount]float32

// DesignMatrix2D is the row-major 8x2 design matrix with rows [1, xᵢ].
type DesignMatrix2D [PointCount * Columns2D]float32

// DesignMatrix3D is the row-major 8x3 design matrix with rows [1, xᵢ, yᵢ].
type DesignMatrix3D [PointCount * Columns3D]float32

// TargetVector holds the dependent samples: y for lines, z for planes.
type TargetVector [PointCount]float32

// BuildDesignData2D builds the design matrix and target vector for fitting
// y = kx + b. Input values are copied as-is.
func BuildDesignData2D(x, y *Samples) (DesignMatrix2D, TargetVector) {
	var a DesignMatrix2D
	var v TargetVector
	for i := range PointCount {
		row := i * Columns2D
		a[row+interceptIndex] = 1
		a[row+xIndex] = x[i]
		v[i] = y[i]
	}
	return a, v
}

// BuildDesignData3D builds the design matrix and target vector for fitting
// z = ax + by + c. Input values are copied as-is.
func BuildDesignData3D(x, y, z *Samples) (DesignMatrix3D, TargetVector) {
	var a DesignMatrix3D
	var v TargetVector
	for i := range PointCount {
		row := i * Columns3D
		a[row+interceptIndex] = 1
		a[row+xIndex] = x[i]
		a[row+yIndex] = y[i]
		v[i] = z[i]
	}
	return a, v
}
