package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-optics/pkg/dispersion"
)

func TestMaterialIndexValues(t *testing.T) {
	mk := func(m *dispersion.Material, err error) *dispersion.Material {
		t.Helper()
		require.NoError(t, err)
		return m
	}

	cases := []struct {
		name string
		m    *dispersion.Material
		wlNm float64
		want float64
	}{
		{"air", NewAir(), 1550, 1},
		{"sio2 telecom", NewSiO2(), 1550, 1.444023621703261},
		{"sio2 mid ir", NewSiO2(), 3000, 1.4192465313713454},
		{"su8", NewSu8(), 1550, 1.5551874061336992},
		{"ktp x", mk(NewKtp("x")), 1550, 1.7281548555217785},
		{"ktp y", mk(NewKtp("y")), 1550, 1.7349061194074447},
		{"ktp z", mk(NewKtp("z")), 1550, 1.8157731108173114},
		{"ln o", mk(NewLn("o", 20)), 1550, 2.2112178141218513},
		{"ln e", mk(NewLn("e", 20)), 1550, 2.137918086017609},
		{"lnmg o", mk(NewLnMg("o")), 1550, 2.208166670822557},
		{"lnmg e", mk(NewLnMg("e")), 1550, 2.129929809470047},
		{"lnmgtemp o", mk(NewLnMgTemp("o", 20)), 1550, 2.208314865879188},
		{"lnmgtemp e", mk(NewLnMgTemp("e", 20)), 1550, 2.129385679881339},
		{"bbo o", mk(NewBbo("o")), 1550, 1.6465046094117248},
		{"bbo e", mk(NewBbo("e")), 1550, 1.5387630110626755},
		{"bibo x", mk(NewBibo("x")), 1550, 1.7475445259570488},
		{"bibo y", mk(NewBibo("y")), 1550, 1.7721646932298116},
		{"bibo z", mk(NewBibo("z")), 1550, 1.9025786969969865},
		{"as2s3", mk(NewChalcogenide("As2S3")), 1550, 2.3489362733155454},
		{"as2se3", mk(NewChalcogenide("As2Se3")), 1550, 2.8301077862026642},
		{"gese4", mk(NewChalcogenide("GeSe4")), 1550, 2.455972612837339},
		{"al2o3 o", mk(NewAl2O3("o")), 1550, 1.7461816250589246},
		{"al2o3 e", mk(NewAl2O3("e")), 1550, 1.7383814860324842},
		{"tio2 o", mk(NewTiO2("o")), 1550, 2.453184835765352},
		{"tio2 e", mk(NewTiO2("e")), 1550, 2.7092989567148513},
	}

	for i, c := range cases {
		n, err := c.m.Index(c.wlNm)
		require.NoErrorf(t, err, "%d) %s", i, c.name)
		assert.InDeltaf(t, c.want, n, 1e-9, "%d) %s", i, c.name)
	}
}

func TestUnknownAxisOrCompound(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*dispersion.Material, error)
	}{
		{"ktp", func() (*dispersion.Material, error) { return NewKtp("q") }},
		{"ln", func() (*dispersion.Material, error) { return NewLn("x", 20) }},
		{"tfln", func() (*dispersion.Material, error) { return NewTfln("x", 20) }},
		{"lnmg", func() (*dispersion.Material, error) { return NewLnMg("z") }},
		{"lnmgtemp", func() (*dispersion.Material, error) { return NewLnMgTemp("q", 20) }},
		{"bbo", func() (*dispersion.Material, error) { return NewBbo("x") }},
		{"bibo", func() (*dispersion.Material, error) { return NewBibo("o") }},
		{"al2o3", func() (*dispersion.Material, error) { return NewAl2O3("x") }},
		{"tio2", func() (*dispersion.Material, error) { return NewTiO2("z") }},
		{"chalcogenide", func() (*dispersion.Material, error) { return NewChalcogenide("As2S5") }},
	}

	for i, c := range cases {
		m, err := c.build()
		assert.Nilf(t, m, "%d) %s", i, c.name)
		var cfgErr *ConfigError
		require.ErrorAsf(t, err, &cfgErr, "%d) %s", i, c.name)
		assert.Equalf(t, c.name, cfgErr.Material, "%d) %s", i, c.name)
	}
}

func TestTflnPinsTelecomIndex(t *testing.T) {
	ord, err := NewTfln("o", 20)
	require.NoError(t, err)
	ext, err := NewTfln("e", 20)
	require.NoError(t, err)

	no, err := ord.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 2.20600, no, 1e-9)

	ne, err := ext.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 2.14455, ne, 1e-9)

	// The offset shifts the curve without flattening it.
	no1064, err := ord.Index(1064)
	require.NoError(t, err)
	assert.InDelta(t, 2.2269873930443818, no1064, 1e-9)

	ne1064, err := ext.Index(1064)
	require.NoError(t, err)
	assert.InDelta(t, 2.1624166927615396, ne1064, 1e-9)
}

func TestTemperatureShiftsIndex(t *testing.T) {
	cases := []struct {
		name  string
		build func(temperatureC float64) (*dispersion.Material, error)
		cold  float64
		hot   float64
	}{
		{"ln o", func(tc float64) (*dispersion.Material, error) { return NewLn("o", tc) },
			2.2112178141218513, 2.211586779996821},
		{"ln e", func(tc float64) (*dispersion.Material, error) { return NewLn("e", tc) },
			2.137918086017609, 2.1410520157918818},
		{"lnmgtemp o", func(tc float64) (*dispersion.Material, error) { return NewLnMgTemp("o", tc) },
			2.208314865879188, 2.2182746593468927},
	}

	for i, c := range cases {
		cold, err := c.build(20)
		require.NoErrorf(t, err, "%d) %s", i, c.name)
		hot, err := c.build(100)
		require.NoErrorf(t, err, "%d) %s", i, c.name)

		nc, err := cold.Index(1550)
		require.NoErrorf(t, err, "%d) %s", i, c.name)
		nh, err := hot.Index(1550)
		require.NoErrorf(t, err, "%d) %s", i, c.name)

		assert.InDeltaf(t, c.cold, nc, 1e-9, "%d) %s cold", i, c.name)
		assert.InDeltaf(t, c.hot, nh, 1e-9, "%d) %s hot", i, c.name)
		assert.NotEqualf(t, nc, nh, "%d) %s", i, c.name)
	}
}

func TestAnisotropicAxes(t *testing.T) {
	ani, err := NewLnAni(20)
	require.NoError(t, err)

	ext, err := NewLn("e", 20)
	require.NoError(t, err)
	ord, err := NewLn("o", 20)
	require.NoError(t, err)

	wantE, err := ext.Index(1550)
	require.NoError(t, err)
	wantO, err := ord.Index(1550)
	require.NoError(t, err)

	for _, m := range []*dispersion.Material{ani.XX, ani.YY} {
		n, err := m.Index(1550)
		require.NoError(t, err)
		assert.Equal(t, wantE, n)
	}
	nz, err := ani.ZZ.Index(1550)
	require.NoError(t, err)
	assert.Equal(t, wantO, nz)
}

func TestCreateRegistry(t *testing.T) {
	m, err := Create("sio2", "", 0)
	require.NoError(t, err)
	n, err := m.Index(1550)
	require.NoError(t, err)
	assert.InDelta(t, 1.444023621703261, n, 1e-9)

	m, err = Create("ln", "o", 20)
	require.NoError(t, err)
	direct, err := NewLn("o", 20)
	require.NoError(t, err)
	got, err := m.Index(1550)
	require.NoError(t, err)
	want, err := direct.Index(1550)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Axis errors surface through the registry too.
	_, err = Create("ktp", "w", 0)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "ktp", cfgErr.Material)

	_, err = Create("unobtainium", "", 0)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "unobtainium", cfgErr.Material)
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	want := []string{
		"air", "al2o3", "bbo", "bibo", "chalcogenide", "ktp", "ln",
		"lnmg", "lnmgtemp", "sio2", "su8", "tfln", "tio2",
	}
	assert.Equal(t, want, names)
}

func TestDefaultRangesCoverTelecomBand(t *testing.T) {
	for _, name := range Names() {
		axis := ""
		switch name {
		case "ktp", "bibo":
			axis = "x"
		case "ln", "tfln", "lnmg", "lnmgtemp", "bbo", "al2o3", "tio2":
			axis = "o"
		case "chalcogenide":
			axis = "As2S3"
		}
		m, err := Create(name, axis, DefaultTemperatureC)
		require.NoErrorf(t, err, "%s", name)

		min, max := m.WavelengthRange()
		assert.LessOrEqualf(t, min, 1550.0, "%s", name)
		assert.GreaterOrEqualf(t, max, 1550.0, "%s", name)

		n, err := m.Index(1550)
		require.NoErrorf(t, err, "%s", name)
		assert.Greaterf(t, n, 0.99, "%s", name)
	}
}
