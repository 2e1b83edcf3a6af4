// Package material holds the permittivity models of the bundled optical
// materials: coefficient tables, polarization axis selection and the
// constructors binding them to the dispersion engine. Tabulated
// materials loaded from CSV files and a registry for lookups by name
// live here as well.
package material

import (
	"fmt"
	"sort"

	"github.com/edp1096/toy-optics/pkg/dispersion"
)

// DefaultTemperatureC is the crystal temperature assumed when a caller
// has no better value.
const DefaultTemperatureC = 20.0

// ConfigError reports an invalid material configuration, such as an
// unknown axis, compound or table layout. Construction fails; there is
// no partially configured material.
type ConfigError struct {
	Material string
	Field    string
	Value    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("material %s: invalid %s %q", e.Material, e.Field, e.Value)
}

// offsetSource shifts a base permittivity by a constant. Thin film
// variants pin their index at a reference wavelength this way.
type offsetSource struct {
	base dispersion.Source
	deps float64
}

func (s offsetSource) Permittivity(nm float64) float64 {
	return s.base.Permittivity(nm) + s.deps
}

// Factory builds a registered material. Materials without an axis or
// temperature dependence ignore the unused arguments; chalcogenides
// take the compound name through the axis slot.
type Factory func(axis string, temperatureC float64) (*dispersion.Material, error)

var registry = map[string]Factory{
	"air":          func(string, float64) (*dispersion.Material, error) { return NewAir(), nil },
	"sio2":         func(string, float64) (*dispersion.Material, error) { return NewSiO2(), nil },
	"su8":          func(string, float64) (*dispersion.Material, error) { return NewSu8(), nil },
	"ktp":          func(axis string, _ float64) (*dispersion.Material, error) { return NewKtp(axis) },
	"ln":           NewLn,
	"tfln":         NewTfln,
	"lnmg":         func(axis string, _ float64) (*dispersion.Material, error) { return NewLnMg(axis) },
	"lnmgtemp":     NewLnMgTemp,
	"bbo":          func(axis string, _ float64) (*dispersion.Material, error) { return NewBbo(axis) },
	"bibo":         func(axis string, _ float64) (*dispersion.Material, error) { return NewBibo(axis) },
	"chalcogenide": func(axis string, _ float64) (*dispersion.Material, error) { return NewChalcogenide(axis) },
	"al2o3":        func(axis string, _ float64) (*dispersion.Material, error) { return NewAl2O3(axis) },
	"tio2":         func(axis string, _ float64) (*dispersion.Material, error) { return NewTiO2(axis) },
}

// Create builds a registered material by name.
func Create(name, axis string, temperatureC float64) (*dispersion.Material, error) {
	f, ok := registry[name]
	if !ok {
		return nil, &ConfigError{Material: name, Field: "name", Value: name}
	}
	return f(axis, temperatureC)
}

// Names lists the registered materials in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
