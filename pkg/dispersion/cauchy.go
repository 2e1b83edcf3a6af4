package dispersion

import "math"

// CauchyEquation evaluates sum_i coeffs[i]/wl^(2i). The wavelength is in
// whatever unit the coefficients assume, conventionally micrometers.
func CauchyEquation(wl float64, coeffs []float64) float64 {
	n := 0.0
	for i, c := range coeffs {
		n += c / math.Pow(wl, 2*float64(i))
	}
	return n
}
