package linfit

// FitLine builds the design data for the eight (x, y) samples and fits
// y = kx + b with the default backend.
//
// This is a convenience function for one-shot fits. Use a Line directly to
// keep the fitted state or to substitute the decomposition backend.
func FitLine(x, y *Samples, eps float32) (LineCoefficients, error) {
	a, v := BuildDesignData2D(x, y)
	var l Line
	return l.Fit(a, v, eps)
}

// FitPlane builds the design data for the eight (x, y, z) samples and fits
// z = ax + by + c with the default backend.
func FitPlane(x, y, z *Samples, eps float32) (PlaneCoefficients, error) {
	a, v := BuildDesignData3D(x, y, z)
	var p Plane
	return p.Fit(a, v, eps)
}
