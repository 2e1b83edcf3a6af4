package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// MgO doped lithium niobate, temperature free fit.
var lnMgAxes = map[string][6]float64{
	"e": {2.2454, 0.01242, 1.3005, 0.05313, 6.8972, 331.33},
	"o": {2.4272, 0.01478, 1.4617, 0.05612, 9.6536, 371.216},
}

type lnMgSource struct {
	a [6]float64
}

func (s lnMgSource) Permittivity(nm float64) float64 {
	um := nm * 1e-3
	u2 := um * um
	return u2*(s.a[0]/(u2-s.a[1])+s.a[2]/(u2-s.a[3])+s.a[4]/(u2-s.a[5])) + 1
}

// NewLnMg builds MgO doped lithium niobate for the ordinary or
// extraordinary polarization.
func NewLnMg(axis string) (*dispersion.Material, error) {
	a, ok := lnMgAxes[axis]
	if !ok {
		return nil, &ConfigError{Material: "lnmg", Field: "axis", Value: axis}
	}
	return dispersion.New(lnMgSource{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}

// Gayer 2008, temperature and wavelength dependent Sellmeier for 5% MgO
// doped congruent LiNbO3, F = (T-24.5)(T+570.82).
type lnMgTempCoeffs struct {
	a [6]float64
	b [4]float64
}

var lnMgTempAxes = map[string]lnMgTempCoeffs{
	"e": {
		a: [6]float64{5.756, 0.0983, 0.2020, 189.32, 12.52, 1.32e-2},
		b: [4]float64{2.860e-6, 4.700e-8, 6.113e-8, 1.516e-4},
	},
	"o": {
		a: [6]float64{5.653, 0.1185, 0.2091, 89.61, 10.85, 1.97e-2},
		b: [4]float64{7.941e-7, 3.3134e-8, -4.641e-9, -2.188e-6},
	},
}

type lnMgTempSource struct {
	lnMgTempCoeffs
	f float64
}

func (s lnMgTempSource) Permittivity(nm float64) float64 {
	a, b, f := s.a, s.b, s.f
	um := nm * 1e-3
	u2 := um * um
	return a[0] + b[0]*f +
		(a[1]+b[1]*f)/(u2-(a[2]+b[2]*f)*(a[2]+b[2]*f)) +
		(a[3]+b[3]*f)/(u2-a[4]*a[4]) -
		a[5]*u2
}

// NewLnMgTemp builds MgO doped lithium niobate with the temperature
// dependent Gayer fit.
func NewLnMgTemp(axis string, temperatureC float64) (*dispersion.Material, error) {
	c, ok := lnMgTempAxes[axis]
	if !ok {
		return nil, &ConfigError{Material: "lnmgtemp", Field: "axis", Value: axis}
	}
	src := lnMgTempSource{lnMgTempCoeffs: c, f: (temperatureC - 24.5) * (temperatureC + 570.82)}
	return dispersion.New(src, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
