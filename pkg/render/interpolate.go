package render

// Interpolate returns one value per integer step from i0 to i1 inclusive,
// linearly blending d0 into d1. The walk may run in either direction.
// When i0 == i1 the result is the single value d0.
//
// The rasterizer uses it both down triangle edges (i = screen row) and
// across scan-lines (i = pixel column).
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}

	n := i1 - i0
	if n < 0 {
		n = -n
	}

	out := make([]float64, n+1)
	step := (d1 - d0) / float64(n)
	for k := range n {
		out[k] = d0 + step*float64(k)
	}
	out[n] = d1
	return out
}
