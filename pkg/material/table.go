package material

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/interp"

	"github.com/edp1096/toy-optics/pkg/dispersion"
)

// tableSource interpolates a measured index column over wavelength.
type tableSource struct {
	fn interp.PiecewiseLinear
}

func (s tableSource) Permittivity(nm float64) float64 {
	n := s.fn.Predict(nm)
	return n * n
}

// finite reports whether v is neither NaN nor infinite. Unparsable
// cells come out of gota as NaN.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// loadTable reads a headerless CSV of wavelength [nm] in column one and
// per mode indices in the following columns, returning the interpolated
// column and the table extent.
func loadTable(path string, mode int) (tableSource, float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return tableSource{}, 0, 0, fmt.Errorf("material table: %v", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithDelimiter(','), dataframe.HasHeader(false))
	if df.Err != nil {
		return tableSource{}, 0, 0, fmt.Errorf("material table %s: %v", path, df.Err)
	}
	if mode < 0 || df.Ncol() < mode+2 {
		return tableSource{}, 0, 0, &ConfigError{Material: "file", Field: "mode", Value: fmt.Sprint(mode)}
	}

	names := df.Names()
	wls := df.Col(names[0]).Float()
	ns := df.Col(names[mode+1]).Float()
	if len(wls) < 2 {
		return tableSource{}, 0, 0, &ConfigError{Material: "file", Field: "rows", Value: fmt.Sprint(len(wls))}
	}
	for i := range wls {
		if !finite(wls[i]) || !finite(ns[i]) {
			return tableSource{}, 0, 0, &ConfigError{Material: "file", Field: "cell", Value: fmt.Sprintf("row %d", i+1)}
		}
		if i > 0 && wls[i] <= wls[i-1] {
			return tableSource{}, 0, 0, &ConfigError{Material: "file", Field: "wavelengths", Value: "not strictly increasing"}
		}
	}
	if wls[0] <= 0 {
		return tableSource{}, 0, 0, &ConfigError{Material: "file", Field: "wavelengths", Value: "not positive"}
	}

	var src tableSource
	if err := src.fn.Fit(wls, ns); err != nil {
		return tableSource{}, 0, 0, fmt.Errorf("material table %s: %v", path, err)
	}
	return src, wls[0], wls[len(wls)-1], nil
}

// NewFile builds a material from a measured index table. The CSV has no
// header; column one is the wavelength in nm, column mode+2 the index of
// the selected mode. The validity window is the table extent.
func NewFile(path string, mode int) (*dispersion.Material, error) {
	src, lo, hi, err := loadTable(path, mode)
	if err != nil {
		return nil, err
	}
	return dispersion.New(src, lo, hi), nil
}

// waveguideSource swaps the bulk contribution out of a measured
// effective index: n = n_newbulk + (n_eff - n_bulk).
type waveguideSource struct {
	eff     tableSource
	bulk    tableSource
	newBulk *dispersion.Material
}

// Permittivity applies the tabulated index contrast on top of the
// substitute bulk. The ranges were intersected at construction, so the
// substitute can only fail here by turning non-physical inside its own
// window; that is reported as permittivity -1, which index reads
// surface as a DomainError.
func (s waveguideSource) Permittivity(nm float64) float64 {
	eps, err := s.newBulk.Permittivity(nm)
	if err != nil || eps < 0 {
		return -1
	}
	n := math.Sqrt(eps) + (s.eff.fn.Predict(nm) - s.bulk.fn.Predict(nm))
	return n * n
}

// NewFileWaveguide builds a material from a measured waveguide effective
// index table. Without a substitute bulk it is the effective index as
// tabulated. With one, the index contrast against the tabulated bulk is
// carried over onto the substitute: n = n_newbulk + (n_eff - n_bulk).
// The validity window is the intersection of all ranges involved.
func NewFileWaveguide(nEffPath, bulkPath string, mode int, newBulk *dispersion.Material) (*dispersion.Material, error) {
	eff, lo, hi, err := loadTable(nEffPath, mode)
	if err != nil {
		return nil, err
	}
	if newBulk == nil {
		return dispersion.New(eff, lo, hi), nil
	}

	bulk, blo, bhi, err := loadTable(bulkPath, 0)
	if err != nil {
		return nil, err
	}
	lo, hi = math.Max(lo, blo), math.Min(hi, bhi)
	nlo, nhi := newBulk.WavelengthRange()
	lo, hi = math.Max(lo, nlo), math.Min(hi, nhi)
	if !(lo < hi) {
		return nil, &ConfigError{Material: "filewg", Field: "range", Value: "empty intersection"}
	}

	src := waveguideSource{eff: eff, bulk: bulk, newBulk: newBulk}
	return dispersion.New(src, lo, hi), nil
}
