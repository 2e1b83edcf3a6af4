package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

type sio2Source struct{}

func (sio2Source) Permittivity(nm float64) float64 {
	x := nm * 1e-3
	a := 0.0684043 / x
	b := 0.1162414 / x
	c := 9.896161 / x
	return 1 + 0.6961663/(1-a*a) + 0.4079426/(1-b*b) + 0.8974794/(1-c*c)
}

// NewSiO2 builds fused silica from its three term Sellmeier fit.
func NewSiO2() *dispersion.Material {
	return dispersion.New(sio2Source{}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm)
}
