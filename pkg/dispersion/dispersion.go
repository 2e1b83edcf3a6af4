// Package dispersion computes wavelength dependent optical properties of
// a material from its relative permittivity: refractive index, index
// derivatives, group index and velocity, group velocity dispersion, the
// propagation constant Taylor coefficients and wave impedance.
//
// Wavelength arguments accept meters, micrometers or nanometers; the
// unit is inferred per call from magnitude against the material bounds.
// Index derivatives come from a fixed 100 point sampling grid over the
// bounds: finite differences of the sampled index are fitted with
// piecewise linear interpolants, built on first use and cached for the
// life of the material.
package dispersion

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/edp1096/toy-optics/internal/consts"
	"github.com/edp1096/toy-optics/pkg/util"
	"github.com/edp1096/toy-optics/pkg/wavelength"
)

// Source supplies relative permittivity at a wavelength in nanometers.
// Implementations must be pure: same wavelength, same value.
type Source interface {
	Permittivity(wavelengthNm float64) float64
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(wavelengthNm float64) float64

func (f SourceFunc) Permittivity(wavelengthNm float64) float64 { return f(wavelengthNm) }

// Default validity window shared by the bulk materials.
const (
	DefaultMinNm = 300
	DefaultMaxNm = 5000
)

const gridPoints = 100

// DomainError reports a non-physical intermediate value, such as a
// negative permittivity under the square root.
type DomainError struct {
	WavelengthNm float64
	Permittivity float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("negative permittivity %g at %g nm", e.Permittivity, e.WavelengthNm)
}

type derivCache struct {
	once sync.Once
	fn   interp.PiecewiseLinear
	err  error
}

// Material binds a permittivity source to a validity window and derives
// the optical quantities from it. Safe for concurrent use once
// constructed; the lazy derivative caches synchronize their first write.
type Material struct {
	src   Source
	minNm float64
	maxNm float64

	gridNm []float64
	stepNm float64

	der1 derivCache
	der2 derivCache
}

// New builds a material over the validity window [minNm, maxNm]. The
// sampling grid covers [minNm, maxNm) with 100 points of step
// (maxNm-minNm)/100, fixed here for the life of the material. Panics on
// a nil source or a malformed window.
func New(src Source, minNm, maxNm float64) *Material {
	if src == nil {
		panic("dispersion: nil permittivity source")
	}
	if !(0 < minNm && minNm < maxNm) || math.IsInf(maxNm, 1) {
		panic(fmt.Sprintf("dispersion: invalid wavelength bounds [%g, %g]", minNm, maxNm))
	}

	m := &Material{src: src, minNm: minNm, maxNm: maxNm}
	m.stepNm = (maxNm - minNm) / gridPoints
	m.gridNm = floats.Span(make([]float64, gridPoints), minNm, maxNm-m.stepNm)
	return m
}

// WavelengthRange returns the validity window in nm.
func (m *Material) WavelengthRange() (minNm, maxNm float64) {
	return m.minNm, m.maxNm
}

// GridSpan returns the window covered by the derivative interpolants.
// Its upper edge sits one grid step below the material bound.
func (m *Material) GridSpan() (minNm, maxNm float64) {
	return m.gridNm[0], m.gridNm[gridPoints-1]
}

func (m *Material) normalize(wl float64) (float64, error) {
	return wavelength.Normalize(wl, m.minNm, m.maxNm)
}

// Permittivity returns the relative permittivity at a wavelength given
// in m, um or nm.
func (m *Material) Permittivity(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	return m.src.Permittivity(nm), nil
}

// PermittivityAll evaluates a batch of wavelengths sharing one inferred
// unit.
func (m *Material) PermittivityAll(wls []float64) ([]float64, error) {
	nms, err := wavelength.NormalizeAll(wls, m.minNm, m.maxNm)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(nms))
	for i, nm := range nms {
		out[i] = m.src.Permittivity(nm)
	}
	return out, nil
}

func (m *Material) indexAt(nm float64) (float64, error) {
	eps := m.src.Permittivity(nm)
	if eps < 0 {
		return 0, &DomainError{WavelengthNm: nm, Permittivity: eps}
	}
	return math.Sqrt(eps), nil
}

// Index returns the refractive index n = sqrt(eps).
func (m *Material) Index(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	return m.indexAt(nm)
}

// IndexAll evaluates the index over a batch of wavelengths sharing one
// inferred unit.
func (m *Material) IndexAll(wls []float64) ([]float64, error) {
	nms, err := wavelength.NormalizeAll(wls, m.minNm, m.maxNm)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(nms))
	for i, nm := range nms {
		if out[i], err = m.indexAt(nm); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (m *Material) buildDer1() {
	ns := make([]float64, gridPoints)
	for i, x := range m.gridNm {
		n, err := m.indexAt(x)
		if err != nil {
			m.der1.err = err
			return
		}
		ns[i] = n
	}
	m.der1.err = m.der1.fn.Fit(m.gridNm, util.Gradient(ns, m.stepNm))
}

func (m *Material) buildDer2() {
	m.der1.once.Do(m.buildDer1)
	if m.der1.err != nil {
		m.der2.err = m.der1.err
		return
	}

	// Resample the scaled first derivative at the grid nodes so the
	// second difference runs over 1/m values against the nm step.
	d1 := make([]float64, gridPoints)
	for i, x := range m.gridNm {
		d1[i] = m.der1.fn.Predict(x) * consts.NMPERM
	}
	m.der2.err = m.der2.fn.Fit(m.gridNm, util.Gradient(d1, m.stepNm))
}

func (m *Material) derivAt(c *derivCache, build func(), nm float64) (float64, error) {
	c.once.Do(build)
	if c.err != nil {
		return 0, c.err
	}
	if nm < m.gridNm[0] || nm > m.gridNm[gridPoints-1] {
		return 0, &wavelength.RangeError{ValueNm: nm, MinNm: m.gridNm[0], MaxNm: m.gridNm[gridPoints-1]}
	}
	return c.fn.Predict(nm) * consts.NMPERM, nil
}

// IndexDeriv1 returns dn/dlambda in 1/m. Defined on the grid span only,
// which stops one step short of the upper material bound.
func (m *Material) IndexDeriv1(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	return m.derivAt(&m.der1, m.buildDer1, nm)
}

// IndexDeriv2 returns d2n/dlambda2 in 1/m^2. Defined on the grid span
// only.
func (m *Material) IndexDeriv2(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	return m.derivAt(&m.der2, m.buildDer2, nm)
}

// GroupIndex returns n_g = n - lambda*dn/dlambda.
func (m *Material) GroupIndex(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	n, err := m.indexAt(nm)
	if err != nil {
		return 0, err
	}
	d1, err := m.derivAt(&m.der1, m.buildDer1, nm)
	if err != nil {
		return 0, err
	}
	return n - nm*1e-9*d1, nil
}

// GroupVelocity returns v_g = c/n_g in m/s.
func (m *Material) GroupVelocity(wl float64) (float64, error) {
	ng, err := m.GroupIndex(wl)
	if err != nil {
		return 0, err
	}
	return consts.LIGHTSPEED / ng, nil
}

// GVD returns the group velocity dispersion
// lambda^3/(2 pi c^2) * d2n/dlambda2 in s^2/m.
func (m *Material) GVD(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	d2, err := m.derivAt(&m.der2, m.buildDer2, nm)
	if err != nil {
		return 0, err
	}
	lm := nm * 1e-9
	return lm * lm * lm / (2 * math.Pi * consts.LIGHTSPEED * consts.LIGHTSPEED) * d2, nil
}

// Beta0 returns the propagation constant 2 pi n/lambda in rad/m.
func (m *Material) Beta0(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	n, err := m.indexAt(nm)
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * n / (nm * 1e-9), nil
}

// Beta1 returns the inverse group velocity 1/v_g in s/m.
func (m *Material) Beta1(wl float64) (float64, error) {
	vg, err := m.GroupVelocity(wl)
	if err != nil {
		return 0, err
	}
	return 1 / vg, nil
}

// Beta2 is the group velocity dispersion; identical to GVD.
func (m *Material) Beta2(wl float64) (float64, error) {
	return m.GVD(wl)
}

// WaveImpedance returns 120 pi/n in Ohm.
func (m *Material) WaveImpedance(wl float64) (float64, error) {
	nm, err := m.normalize(wl)
	if err != nil {
		return 0, err
	}
	n, err := m.indexAt(nm)
	if err != nil {
		return 0, err
	}
	return consts.VACUUMZ / n, nil
}
