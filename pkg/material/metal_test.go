package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yunhao-qian/light2d/pkg/core"
)

func TestMirror_Scatter_PerfectReflection(t *testing.T) {
	m := NewMirror(core.NewSpectrum(0.9, 0.9, 0.9))
	rng := rand.New(rand.NewSource(1))
	interaction := &core.SurfaceInteraction{N: core.NewVec2(0, 1)}

	m.Scatter(core.NewRay(core.NewVec2(0, 1), core.NewVec2(1, -1)), interaction, rng)

	assert.True(t, interaction.Scatters())
	assert.InDelta(t, 1.0, interaction.DOut.X, 1e-9)
	assert.InDelta(t, 1.0, interaction.DOut.Y, 1e-9)
}

func TestMetal_Scatter_AbsorbsWhenReflectedIntoSurface(t *testing.T) {
	// A grazing incoming ray with heavy fuzz can reflect back into the surface.
	m := NewMetal(core.NewSpectrum(1, 1, 1), 1.0)
	rng := rand.New(rand.NewSource(42))
	absorbedAtLeastOnce := false

	for i := 0; i < 200; i++ {
		interaction := &core.SurfaceInteraction{N: core.NewVec2(0, 1)}
		m.Scatter(core.NewRay(core.NewVec2(0, 0), core.NewVec2(1, -0.01)), interaction, rng)
		if !interaction.Scatters() {
			absorbedAtLeastOnce = true
			break
		}
	}

	assert.True(t, absorbedAtLeastOnce, "expected fuzzy metal to occasionally absorb a grazing ray")
}

func TestNewMetal_ClampsFuzz(t *testing.T) {
	assert.Equal(t, 0.0, NewMetal(core.Spectrum{}, -1).Fuzz)
	assert.Equal(t, 1.0, NewMetal(core.Spectrum{}, 2).Fuzz)
}
