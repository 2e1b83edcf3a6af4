package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Sapphire, https://refractiveindex.info/?shelf=main&book=Al2O3&page=Malitson-o
var al2o3Axes = map[string][6]float64{
	"o": {1.4313493, 0.0726631, 0.65054713, 0.1193242, 5.3414021, 18.028251},
	"e": {1.5039759, 0.0740288, 0.55069141, 0.1216529, 6.5927379, 20.072248},
}

type al2o3Source struct {
	a [6]float64
}

func (s al2o3Source) Permittivity(nm float64) float64 {
	x := nm * 1e-3
	p := s.a[1] / x
	q := s.a[3] / x
	r := s.a[5] / x
	return 1 + s.a[0]/(1-p*p) + s.a[2]/(1-q*q) + s.a[4]/(1-r*r)
}

// NewAl2O3 builds sapphire for the ordinary or extraordinary
// polarization.
func NewAl2O3(axis string) (*dispersion.Material, error) {
	a, ok := al2o3Axes[axis]
	if !ok {
		return nil, &ConfigError{Material: "al2o3", Field: "axis", Value: axis}
	}
	return dispersion.New(al2o3Source{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
