package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Flux grown KTP, biaxial: one coefficient set per principal axis.
var ktpAxes = map[string][5]float64{
	"x": {3.29100, 0.04140, 0.03978, 9.35522, 31.45571},
	"y": {3.45018, 0.04341, 0.04597, 16.98825, 39.43799},
	"z": {4.59423, 0.06206, 0.04763, 110.80672, 86.12171},
}

type ktpSource struct {
	a [5]float64
}

func (s ktpSource) Permittivity(nm float64) float64 {
	um := nm * 1e-3
	return s.a[0] + s.a[1]/(um*um-s.a[2]) + s.a[3]/(um*um-s.a[4])
}

// NewKtp builds potassium titanyl phosphate for the given principal
// axis x, y or z.
func NewKtp(axis string) (*dispersion.Material, error) {
	a, ok := ktpAxes[axis]
	if !ok {
		return nil, &ConfigError{Material: "ktp", Field: "axis", Value: axis}
	}
	return dispersion.New(ktpSource{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
