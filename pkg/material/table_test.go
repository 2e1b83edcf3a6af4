package material

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-optics/pkg/dispersion"
)

func writeCSV(t *testing.T, name string, rows [][]float64) string {
	t.Helper()
	var b strings.Builder
	for _, row := range rows {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(parts, ","))
		b.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// rampTable ramps mode 0 linearly from 1.5 to 1.6 over 1000-2000 nm and
// holds mode 1 at 2.
func rampTable() [][]float64 {
	rows := make([][]float64, 0, 11)
	for i := 0; i < 11; i++ {
		wl := 1000 + 100*float64(i)
		rows = append(rows, []float64{wl, 1.5 + 1e-4*(wl-1000), 2})
	}
	return rows
}

func constTable(n float64) [][]float64 {
	rows := make([][]float64, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, []float64{1000 + 250*float64(i), n})
	}
	return rows
}

func TestFileMaterialInterpolatesTable(t *testing.T) {
	path := writeCSV(t, "neff.csv", rampTable())
	m, err := NewFile(path, 0)
	require.NoError(t, err)

	lo, hi := m.WavelengthRange()
	assert.Equal(t, 1000.0, lo)
	assert.Equal(t, 2000.0, hi)

	n, err := m.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 1.555, n, 1e-12)

	n, err = m.Index(1050)
	require.NoError(t, err)
	assert.InDelta(t, 1.505, n, 1e-12)
}

func TestFileMaterialDerivatives(t *testing.T) {
	path := writeCSV(t, "neff.csv", rampTable())
	m, err := NewFile(path, 0)
	require.NoError(t, err)

	d1, err := m.IndexDeriv1(1500)
	require.NoError(t, err)
	assert.InDelta(t, 1e5, d1, 1e-2)

	ng, err := m.GroupIndex(1500)
	require.NoError(t, err)
	assert.InDelta(t, 1.4, ng, 1e-9)
}

func TestFileMaterialModeColumn(t *testing.T) {
	path := writeCSV(t, "neff.csv", rampTable())
	m, err := NewFile(path, 1)
	require.NoError(t, err)

	n, err := m.Index(1370)
	require.NoError(t, err)
	assert.Equal(t, 2.0, n)

	d1, err := m.IndexDeriv1(1500)
	require.NoError(t, err)
	assert.Zero(t, d1)
}

func TestFileMaterialRejectsBadTables(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]float64
		mode  int
		field string
	}{
		{"mode out of range", rampTable(), 5, "mode"},
		{"negative mode", rampTable(), -1, "mode"},
		{"single row", [][]float64{{1000, 1.5}}, 0, "rows"},
		{"repeated wavelength", [][]float64{{1000, 1.5}, {1000, 1.6}, {1200, 1.7}}, 0, "wavelengths"},
		{"decreasing wavelength", [][]float64{{1500, 1.5}, {1000, 1.6}}, 0, "wavelengths"},
		{"non positive wavelength", [][]float64{{0, 1.5}, {1000, 1.6}}, 0, "wavelengths"},
		{"nan cell", [][]float64{{1000, math.NaN()}, {1100, 1.6}}, 0, "cell"},
		{"inf cell", [][]float64{{1000, 1.5}, {1100, math.Inf(1)}}, 0, "cell"},
		{"inf wavelength", [][]float64{{1000, 1.5}, {math.Inf(1), 1.7}}, 0, "cell"},
	}

	for i, c := range cases {
		path := writeCSV(t, "bad.csv", c.rows)
		m, err := NewFile(path, c.mode)
		assert.Nilf(t, m, "%d) %s", i, c.name)
		var cfgErr *ConfigError
		require.ErrorAsf(t, err, &cfgErr, "%d) %s", i, c.name)
		assert.Equalf(t, c.field, cfgErr.Field, "%d) %s", i, c.name)
	}

	_, err := NewFile(filepath.Join(t.TempDir(), "missing.csv"), 0)
	assert.Error(t, err)
}

func TestFileWaveguideCarriesContrastOntoSubstituteBulk(t *testing.T) {
	effPath := writeCSV(t, "neff.csv", constTable(1.6))
	bulkPath := writeCSV(t, "nbulk.csv", constTable(1.45))

	m, err := NewFileWaveguide(effPath, bulkPath, 0, NewSiO2())
	require.NoError(t, err)

	lo, hi := m.WavelengthRange()
	assert.Equal(t, 1000.0, lo)
	assert.Equal(t, 2000.0, hi)

	// n_sio2(1550) + (1.6 - 1.45)
	n, err := m.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 1.594023621703261, n, 1e-9)
}

func TestFileWaveguideWithoutSubstituteBulk(t *testing.T) {
	effPath := writeCSV(t, "neff.csv", constTable(1.6))

	m, err := NewFileWaveguide(effPath, "", 0, nil)
	require.NoError(t, err)

	n, err := m.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, n, 1e-12)
}

func TestFileWaveguideFlagsNonPhysicalSubstituteBulk(t *testing.T) {
	effPath := writeCSV(t, "neff.csv", constTable(1.6))
	bulkPath := writeCSV(t, "nbulk.csv", constTable(1.45))

	// Physical below 1500 nm, non-physical above.
	step := dispersion.New(dispersion.SourceFunc(func(nm float64) float64 {
		if nm < 1500 {
			return 4
		}
		return -2
	}), 1000, 2000)

	m, err := NewFileWaveguide(effPath, bulkPath, 0, step)
	require.NoError(t, err)

	// sqrt(4) + (1.6 - 1.45)
	n, err := m.Index(1200)
	require.NoError(t, err)
	assert.InDelta(t, 2.15, n, 1e-12)

	_, err = m.Index(1800)
	var domErr *dispersion.DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, -1.0, domErr.Permittivity)
	assert.Equal(t, 1800.0, domErr.WavelengthNm)
}

func TestFileWaveguideRejectsDisjointRanges(t *testing.T) {
	effPath := writeCSV(t, "neff.csv", constTable(1.6))
	bulkPath := writeCSV(t, "nbulk.csv", constTable(1.45))

	farRows := [][]float64{{3000, 1.5}, {3500, 1.5}, {4000, 1.5}}
	farBulk, err := NewFile(writeCSV(t, "far.csv", farRows), 0)
	require.NoError(t, err)

	m, err := NewFileWaveguide(effPath, bulkPath, 0, farBulk)
	assert.Nil(t, m)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "filewg", cfgErr.Material)
}
