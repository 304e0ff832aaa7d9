package material

import (
	"math"
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Lambertian is a perfectly diffuse reflector. It emits no light and
// scatters the incoming ray into a direction drawn from the
// cosine-weighted distribution around the surface normal.
//
// Because the scattered direction is drawn from the same distribution
// that weights the rendering integral (rather than uniformly), the
// cosine and probability-density factors cancel and the attenuation
// written here is simply Albedo — the importance-sampling
// simplification for a 1-D (angle, not solid-angle) cosine lobe in a
// 2-D scene.
type Lambertian struct {
	Albedo core.Spectrum
}

// NewLambertian creates a new Lambertian material with the given base color.
func NewLambertian(albedo core.Spectrum) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter writes zero emission, Albedo as attenuation, and a
// cosine-weighted scattered direction in the hemisphere of the normal.
func (l *Lambertian) Scatter(rayIn core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) {
	interaction.Li = core.Spectrum{}
	interaction.Attenuation = l.Albedo
	interaction.DOut = randomCosineDirection(interaction.N, rng)
}

// randomCosineDirection draws a unit direction in the hemisphere of
// normal, weighted by cos(theta) where theta is measured from normal.
// The local angle offset is sampled by inverse-CDF: for density
// cos(phi)/2 over phi in [-pi/2, pi/2], the CDF is (sin(phi)+1)/2, so
// phi = asin(2u - 1).
func randomCosineDirection(normal core.Vec2, rng *rand.Rand) core.Vec2 {
	normalAngle := math.Atan2(normal.Y, normal.X)
	phi := math.Asin(2*rng.Float64() - 1)
	return core.FromAngle(normalAngle + phi)
}
