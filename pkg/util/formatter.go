package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.3f f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatWavelength(nm float64) string {
	if math.Abs(nm) >= 1e4 {
		return fmt.Sprintf("%.4f um", nm*1e-3)
	}
	return fmt.Sprintf("%.1f nm", nm)
}

// FormatGVD prints a group velocity dispersion given in s^2/m in the
// conventional ps^2/km.
func FormatGVD(s2PerM float64) string {
	return fmt.Sprintf("%.3f ps^2/km", s2PerM*1e27)
}

func FormatIndex(n float64) string {
	return fmt.Sprintf("%.6f", n)
}
