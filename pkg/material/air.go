package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

type airSource struct{}

func (airSource) Permittivity(float64) float64 { return 1 }

// NewAir builds the trivial unity permittivity material.
func NewAir() *dispersion.Material {
	return dispersion.New(airSource{}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm)
}
