package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpectrum_MultiplySpectrum(t *testing.T) {
	a := NewSpectrum(0.5, 1.0, 2.0)
	b := NewSpectrum(2.0, 2.0, 0.5)
	assert.Equal(t, NewSpectrum(1.0, 2.0, 1.0), a.MultiplySpectrum(b))
}

func TestSpectrum_HasPositiveComponent(t *testing.T) {
	assert.True(t, NewSpectrum(0, 0, 0.1).HasPositiveComponent())
	assert.False(t, NewSpectrum(0, 0, 0).HasPositiveComponent())
	assert.False(t, AbsorbAttenuation.HasPositiveComponent())
}

func TestSpectrum_IsFinite(t *testing.T) {
	assert.True(t, NewSpectrum(1, 2, 3).IsFinite())
	assert.False(t, NewSpectrum(math.NaN(), 0, 0).IsFinite())
	assert.False(t, NewSpectrum(math.Inf(1), 0, 0).IsFinite())
	assert.False(t, AbsorbAttenuation.IsFinite())
}

func TestSpectrum_Clamp(t *testing.T) {
	s := NewSpectrum(-1, 0.5, 3)
	assert.Equal(t, NewSpectrum(0, 0.5, 1), s.Clamp(0, 1))
}
