package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// SU-8 photoresist, Cauchy fit with the wavelength in micrometers.
var su8Coeffs = []float64{1.5525, 0.00629, 0.0004}

type su8Source struct{}

func (su8Source) Permittivity(nm float64) float64 {
	n := dispersion.CauchyEquation(nm/1000, su8Coeffs)
	return n * n
}

// NewSu8 builds the SU-8 epoxy photoresist.
func NewSu8() *dispersion.Material {
	return dispersion.New(su8Source{}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm)
}
