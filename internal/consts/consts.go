package consts

import (
	"math"

	"gonum.org/v1/gonum/unit/constant"
)

const (
	LIGHTSPEED = float64(constant.LightSpeedInVacuum) // Speed of light in vacuum (m/s)
	VACUUMZ    = 120 * math.Pi                        // Free space wave impedance, 120*pi (Ohm)
	NMPERM     = 1e9                                  // Nanometers per meter
	NMPERUM    = 1e3                                  // Nanometers per micrometer
)
