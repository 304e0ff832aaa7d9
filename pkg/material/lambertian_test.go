package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/yunhao-qian/light2d/pkg/core"
)

func TestLambertian_Scatter_StaysInHemisphere(t *testing.T) {
	m := NewLambertian(core.NewSpectrum(0.5, 0.5, 0.5))
	rng := rand.New(rand.NewSource(7))
	normal := core.NewVec2(0, 1)

	for i := 0; i < 1000; i++ {
		interaction := &core.SurfaceInteraction{N: normal}
		m.Scatter(core.NewRay(core.NewVec2(0, 0), core.NewVec2(0, -1)), interaction, rng)

		assert.True(t, interaction.Scatters())
		assert.GreaterOrEqual(t, interaction.DOut.Dot(normal), -1e-9)
		assert.InDelta(t, 1.0, interaction.DOut.Length(), 1e-9)
	}
}

func TestLambertian_Scatter_Property_AlwaysInHemisphere(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "normalAngle")
		normal := core.FromAngle(angle)
		seed := rapid.Uint64().Draw(t, "seed")
		rng := rand.New(rand.NewSource(int64(seed)))

		m := NewLambertian(core.NewSpectrum(1, 1, 1))
		interaction := &core.SurfaceInteraction{N: normal}
		m.Scatter(core.Ray{}, interaction, rng)

		assert.GreaterOrEqual(t, interaction.DOut.Dot(normal), -1e-9)
	})
}
