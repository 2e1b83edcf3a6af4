package sweep

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-optics/pkg/dispersion"
)

// Result keys in GetResults.
const (
	KeyWavelength    = "WL"
	KeyIndex         = "N"
	KeyGroupIndex    = "NG"
	KeyGroupVelocity = "VG"
	KeyGVD           = "GVD"
	KeyBeta0         = "B0"
	KeyBeta1         = "B1"
	KeyBeta2         = "B2"
	KeyImpedance     = "Z"
)

// Sweep evaluates every dispersion quantity of a material over a range
// of wavelengths.
type Sweep struct {
	startNm     float64
	stopNm      float64
	numPoints   int
	pointsType  string // "DEC", "OCT", "LIN"
	wavelengths []float64
	results     map[string][]float64
}

func New(startNm, stopNm float64, nPoints int, pType string) *Sweep {
	return &Sweep{
		startNm:    startNm,
		stopNm:     stopNm,
		numPoints:  nPoints,
		pointsType: pType,
		results:    make(map[string][]float64),
	}
}

func (s *Sweep) Run(m *dispersion.Material) error {
	if m == nil {
		return fmt.Errorf("material not set")
	}
	if err := s.generateWavelengthPoints(); err != nil {
		return err
	}

	quantities := []struct {
		key  string
		eval func(float64) (float64, error)
	}{
		{KeyIndex, m.Index},
		{KeyGroupIndex, m.GroupIndex},
		{KeyGroupVelocity, m.GroupVelocity},
		{KeyGVD, m.GVD},
		{KeyBeta0, m.Beta0},
		{KeyBeta1, m.Beta1},
		{KeyBeta2, m.Beta2},
		{KeyImpedance, m.WaveImpedance},
	}

	for _, wl := range s.wavelengths {
		row := make(map[string]float64, len(quantities))
		for _, q := range quantities {
			v, err := q.eval(wl)
			if err != nil {
				return fmt.Errorf("sweep error at wl=%g: %v", wl, err)
			}
			row[q.key] = v
		}
		s.storeResult(wl, row)
	}

	return nil
}

func (s *Sweep) generateWavelengthPoints() error {
	if s.numPoints < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", s.numPoints)
	}
	if !(0 < s.startNm && s.startNm <= s.stopNm) {
		return fmt.Errorf("invalid sweep range %g-%g nm", s.startNm, s.stopNm)
	}

	s.wavelengths = make([]float64, s.numPoints)

	switch s.pointsType {
	case "DEC": // Decade
		logStart := math.Log10(s.startNm)
		logStop := math.Log10(s.stopNm)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := 0; i < s.numPoints; i++ {
			s.wavelengths[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT": // Octave
		logStart := math.Log2(s.startNm)
		logStop := math.Log2(s.stopNm)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := 0; i < s.numPoints; i++ {
			s.wavelengths[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN": // Linear
		step := (s.stopNm - s.startNm) / float64(s.numPoints-1)
		for i := 0; i < s.numPoints; i++ {
			s.wavelengths[i] = s.startNm + float64(i)*step
		}

	default:
		return fmt.Errorf("unknown sweep spacing %q", s.pointsType)
	}

	return nil
}

func (s *Sweep) storeResult(wl float64, row map[string]float64) {
	if _, exists := s.results[KeyWavelength]; !exists {
		s.results[KeyWavelength] = make([]float64, 0)
	}
	s.results[KeyWavelength] = append(s.results[KeyWavelength], wl)

	for name, value := range row {
		if _, exists := s.results[name]; !exists {
			s.results[name] = make([]float64, 0)
		}
		s.results[name] = append(s.results[name], value)
	}
}

func (s *Sweep) Wavelengths() []float64 {
	return s.wavelengths
}

func (s *Sweep) GetResults() map[string][]float64 {
	return s.results
}
