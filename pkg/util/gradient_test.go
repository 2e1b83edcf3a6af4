package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientLinear(t *testing.T) {
	// y = 3 + 2x sampled at x = 0, 10, ..., 90.
	ys := make([]float64, 10)
	for i := 0; i < 10; i++ {
		ys[i] = 3 + 2*float64(i)*10
	}
	for i, g := range Gradient(ys, 10) {
		assert.InDeltaf(t, 2.0, g, 1e-12, "%d) slope", i)
	}
}

func TestGradientQuadratic(t *testing.T) {
	// y = x^2 sampled with step h: central differences are exact in the
	// interior, the one-sided ends are off by exactly h.
	const h = 10.0
	ys := make([]float64, 12)
	for i := 0; i < 12; i++ {
		x := float64(i) * h
		ys[i] = x * x
	}

	g := Gradient(ys, h)
	for i := 1; i < len(g)-1; i++ {
		x := float64(i) * h
		assert.InDeltaf(t, 2*x, g[i], 1e-9, "%d) interior", i)
	}
	assert.InDelta(t, 0+h, g[0], 1e-9, "leading edge")
	last := float64(len(g)-1) * h
	assert.InDelta(t, 2*last-h, g[len(g)-1], 1e-9, "trailing edge")
}

func TestGradientTwoSamples(t *testing.T) {
	g := Gradient([]float64{1, 3}, 2)
	assert.Equal(t, []float64{1, 1}, g)
}

func TestGradientTooShort(t *testing.T) {
	assert.Panics(t, func() { Gradient([]float64{1}, 1) })
}
