package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Beta barium borate and bismuth borate share one functional form:
// eps = A0 + A1/(x^2 - A2) - A3*x^2 with x in micrometers.
type boratesSource struct {
	a [4]float64
}

func (s boratesSource) Permittivity(nm float64) float64 {
	um := nm * 1e-3
	u2 := um * um
	return s.a[0] + s.a[1]/(u2-s.a[2]) - s.a[3]*u2
}

var bboAxes = map[string][4]float64{
	"e": {2.3730, 0.0128, 0.0156, 0.0044},
	"o": {2.7405, 0.0184, 0.0179, 0.0155},
}

// BiBO is biaxial, one set per principal axis.
var biboAxes = map[string][4]float64{
	"x": {3.0722, 0.0324, 0.0315, 0.0133},
	"y": {3.1669, 0.0372, 0.0348, 0.0175},
	"z": {3.6525, 0.0511, 0.0370, 0.0226},
}

// NewBbo builds beta barium borate for the ordinary or extraordinary
// polarization.
func NewBbo(axis string) (*dispersion.Material, error) {
	a, ok := bboAxes[axis]
	if !ok {
		return nil, &ConfigError{Material: "bbo", Field: "axis", Value: axis}
	}
	return dispersion.New(boratesSource{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}

// NewBibo builds bismuth triborate for the given principal axis x, y
// or z.
func NewBibo(axis string) (*dispersion.Material, error) {
	a, ok := biboAxes[axis]
	if !ok {
		return nil, &ConfigError{Material: "bibo", Field: "axis", Value: axis}
	}
	return dispersion.New(boratesSource{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
