package util

// Gradient returns the numerical first derivative of uniformly spaced
// samples: central differences in the interior, first-order one-sided
// differences at the two ends. The result carries the units of ys per
// one step.
func Gradient(ys []float64, step float64) []float64 {
	n := len(ys)
	if n < 2 {
		panic("util: gradient requires at least two samples")
	}

	out := make([]float64, n)
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (2 * step)
	}
	out[0] = (ys[1] - ys[0]) / step
	out[n-1] = (ys[n-1] - ys[n-2]) / step
	return out
}
