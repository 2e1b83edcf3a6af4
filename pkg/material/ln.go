package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Congruent lithium niobate. The Sellmeier runs over the wavelength in
// nm, unlike the other crystals here, and carries a temperature term
// F = (T-24.5)(T+570.5).
type lnCoeffs struct {
	a [4]float64
	b [3]float64
}

var lnAxes = map[string]lnCoeffs{
	"e": {
		a: [4]float64{4.582, 9.921e4, 2.109e2, 2.194e-8},
		b: [3]float64{5.2716e-2, -4.9143e-5, 2.2971e-7},
	},
	"o": {
		a: [4]float64{4.9048, 1.1775e5, 2.1802e2, 2.7153e-8},
		b: [3]float64{2.2314e-2, -2.9671e-5, 2.1429e-8},
	},
}

type lnSource struct {
	lnCoeffs
	f float64
}

func (s lnSource) Permittivity(nm float64) float64 {
	a, b, f := s.a, s.b, s.f
	return a[0] + (a[1]+b[0]*f)/(nm*nm-(a[2]+b[1]*f)*(a[2]+b[1]*f)) + b[2]*f - a[3]*nm*nm
}

func newLnSource(axis string, temperatureC float64) (lnSource, bool) {
	c, ok := lnAxes[axis]
	if !ok {
		return lnSource{}, false
	}
	return lnSource{lnCoeffs: c, f: (temperatureC - 24.5) * (temperatureC + 570.5)}, true
}

// NewLn builds congruent lithium niobate for the ordinary ("o") or
// extraordinary ("e") polarization at a crystal temperature in Celsius.
func NewLn(axis string, temperatureC float64) (*dispersion.Material, error) {
	src, ok := newLnSource(axis, temperatureC)
	if !ok {
		return nil, &ConfigError{Material: "ln", Field: "axis", Value: axis}
	}
	return dispersion.New(src, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}

// Thin film index pins at 1550 nm.
const (
	tflnNo1550 = 2.20600
	tflnNe1550 = 2.14455
)

// NewTfln builds thin film lithium niobate: the bulk LN dispersion
// shifted by a constant permittivity offset so the index at 1550 nm
// matches the thin film value for the chosen polarization.
func NewTfln(axis string, temperatureC float64) (*dispersion.Material, error) {
	base, ok := newLnSource(axis, temperatureC)
	if !ok {
		return nil, &ConfigError{Material: "tfln", Field: "axis", Value: axis}
	}

	pin := tflnNo1550
	if axis == "e" {
		pin = tflnNe1550
	}
	deps := pin*pin - base.Permittivity(1550)
	src := offsetSource{base: base, deps: deps}
	return dispersion.New(src, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}

// Anisotropic exposes one material per diagonal element of the
// permittivity tensor. Off diagonal elements are zero.
type Anisotropic struct {
	XX, YY, ZZ *dispersion.Material
}

// NewLnAni builds the congruent LN tensor: xx and yy see the
// extraordinary polarization, zz the ordinary.
func NewLnAni(temperatureC float64) (*Anisotropic, error) {
	xx, err := NewLn("e", temperatureC)
	if err != nil {
		return nil, err
	}
	yy, err := NewLn("e", temperatureC)
	if err != nil {
		return nil, err
	}
	zz, err := NewLn("o", temperatureC)
	if err != nil {
		return nil, err
	}
	return &Anisotropic{XX: xx, YY: yy, ZZ: zz}, nil
}
