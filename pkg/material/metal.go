package material

import (
	"math"
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Metal is a specular reflector with an optional fuzz factor: Fuzz=0
// behaves as a perfect mirror; Fuzz close to 1 perturbs the reflected
// direction by up to a quarter turn, drawn as a 1-D angular offset
// rather than a 3-D unit-sphere perturbation.
type Metal struct {
	Albedo core.Spectrum
	Fuzz   float64 // clamped to [0, 1] at construction
}

// NewMetal creates a new metal material, clamping Fuzz to [0, 1].
func NewMetal(albedo core.Spectrum, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// NewMirror creates a perfect (Fuzz=0) specular reflector.
func NewMirror(albedo core.Spectrum) *Metal {
	return NewMetal(albedo, 0)
}

// Scatter reflects the incoming direction about the normal, perturbs
// it by Fuzz, and absorbs the path if the perturbed direction would go
// back into the surface.
func (m *Metal) Scatter(rayIn core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) {
	interaction.Li = core.Spectrum{}

	incoming := rayIn.Direction.Normalize()
	normal := interaction.N.Normalize()
	reflected := reflect(incoming, normal)

	if m.Fuzz > 0 {
		reflectedAngle := math.Atan2(reflected.Y, reflected.X)
		perturbation := (rng.Float64()*2 - 1) * m.Fuzz * (math.Pi / 2)
		reflected = core.FromAngle(reflectedAngle + perturbation)
	}

	if reflected.Dot(normal) <= 0 {
		interaction.Attenuation = core.AbsorbAttenuation
		return
	}

	interaction.Attenuation = m.Albedo
	interaction.DOut = reflected
}

// reflect returns v reflected about normal n (n assumed unit length): r = v - 2*(v.n)*n
func reflect(v, n core.Vec2) core.Vec2 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
