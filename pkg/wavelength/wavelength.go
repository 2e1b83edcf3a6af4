// Package wavelength normalizes wavelength inputs to canonical nanometers.
//
// Callers pass wavelengths in meters, micrometers or nanometers. The unit
// is not declared; it is inferred from magnitude against the material's
// upper validity bound, converted to nm and validated against the bounds.
package wavelength

import (
	"fmt"

	"github.com/edp1096/toy-optics/internal/consts"
)

// Unit is a wavelength unit inferred from magnitude.
type Unit int

const (
	Nanometer Unit = iota
	Micrometer
	Meter
)

func (u Unit) String() string {
	switch u {
	case Meter:
		return "m"
	case Micrometer:
		return "um"
	default:
		return "nm"
	}
}

// Factor returns the scale from u to nanometers.
func (u Unit) Factor() float64 {
	switch u {
	case Meter:
		return consts.NMPERM
	case Micrometer:
		return consts.NMPERUM
	default:
		return 1
	}
}

// RangeError reports a wavelength outside a validity window. ValueNm is
// already converted to nanometers.
type RangeError struct {
	ValueNm float64
	MinNm   float64
	MaxNm   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wavelength %g nm outside valid range [%g, %g] nm", e.ValueNm, e.MinNm, e.MaxNm)
}

// Detect infers the shared unit of a batch of wavelengths given the upper
// validity bound in nm. Every value must fit a tier for the tier to win:
// all <= maxNm*1e-9 reads as meters, else all <= maxNm*1e-3 as
// micrometers, else nanometers.
//
// The heuristic is magnitude based and cannot distinguish units whose
// magnitude regimes overlap. With bounds wider than [1e3, 1e6) nm apart
// the tiers collide; the default [300, 5000] nm window keeps them
// disjoint. NaN fits no tier, reads as nm and fails range validation.
func Detect(values []float64, maxNm float64) Unit {
	meters, microns := true, true
	for _, v := range values {
		if !(v <= maxNm*1e-9) {
			meters = false
		}
		if !(v <= maxNm*1e-3) {
			microns = false
		}
	}
	switch {
	case meters:
		return Meter
	case microns:
		return Micrometer
	default:
		return Nanometer
	}
}

// Normalize converts one wavelength to nm and validates it against
// [minNm, maxNm] inclusive. Out of range is an error, never a clamp.
// The unit comes from Detect, so single values and batches share one
// inference path.
func Normalize(value, minNm, maxNm float64) (float64, error) {
	nm := value * Detect([]float64{value}, maxNm).Factor()
	if !(nm >= minNm && nm <= maxNm) {
		return 0, &RangeError{ValueNm: nm, MinNm: minNm, MaxNm: maxNm}
	}
	return nm, nil
}

// NormalizeAll converts a batch of wavelengths sharing one inferred unit.
// The unit is chosen by examining all values jointly, so a batch is never
// converted with mixed factors. Nil or empty input is forwarded unchanged.
func NormalizeAll(values []float64, minNm, maxNm float64) ([]float64, error) {
	if len(values) == 0 {
		return values, nil
	}

	factor := Detect(values, maxNm).Factor()
	out := make([]float64, len(values))
	for i, v := range values {
		nm := v * factor
		if !(nm >= minNm && nm <= maxNm) {
			return nil, &RangeError{ValueNm: nm, MinNm: minNm, MaxNm: maxNm}
		}
		out[i] = nm
	}
	return out, nil
}
