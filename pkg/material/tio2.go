package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Rutile, https://refractiveindex.info/?shelf=main&book=TiO2&page=Devore-o
var tio2Axes = map[string][3]float64{
	"o": {5.913, 0.2441, 0.0803},
	"e": {7.197, 0.3322, 0.0843},
}

type tio2Source struct {
	a [3]float64
}

func (s tio2Source) Permittivity(nm float64) float64 {
	x := nm * 1e-3
	return s.a[0] + s.a[1]/(x*x-s.a[2])
}

// NewTiO2 builds rutile titanium dioxide for the ordinary or
// extraordinary polarization.
func NewTiO2(axis string) (*dispersion.Material, error) {
	a, ok := tio2Axes[axis]
	if !ok {
		return nil, &ConfigError{Material: "tio2", Field: "axis", Value: axis}
	}
	return dispersion.New(tio2Source{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
