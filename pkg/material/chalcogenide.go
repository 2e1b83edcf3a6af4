package material

import "github.com/edp1096/toy-optics/pkg/dispersion"

// Chalcogenide glasses, Cauchy fits on the permittivity:
// eps = A0 + A1/x^2 + A2/x^4 with x in micrometers.
var chalcogenideCompounds = map[string][3]float64{
	"As2S3":        {5.41, 0.20, 0.14},
	"As2Se3":       {7.56, 1.03, 0.12},
	"GeSe4":        {5.73, 0.80, -0.18},
	"Ge10As10Se80": {5.73, 0.80, -0.18},
}

type chalcogenideSource struct {
	a [3]float64
}

func (s chalcogenideSource) Permittivity(nm float64) float64 {
	um := nm * 1e-3
	u2 := um * um
	return s.a[0] + s.a[1]/u2 + s.a[2]/(u2*u2)
}

// NewChalcogenide builds a chalcogenide glass by compound name.
func NewChalcogenide(compound string) (*dispersion.Material, error) {
	a, ok := chalcogenideCompounds[compound]
	if !ok {
		return nil, &ConfigError{Material: "chalcogenide", Field: "compound", Value: compound}
	}
	return dispersion.New(chalcogenideSource{a: a}, dispersion.DefaultMinNm, dispersion.DefaultMaxNm), nil
}
