// Package material contains the Material variant set: concrete
// surface behaviors that write emitted radiance, attenuation, and (for
// scattering materials) an outgoing direction into a SurfaceInteraction
// whose P and N fields have already been filled in by a shape.
package material

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Material is the interface implemented by concrete surface materials.
// Scatter is given the incoming ray and an interaction with P and N
// already set; it writes Li, Attenuation, and (if Attenuation has any
// positive component) DOut. Any randomness is drawn from rng only —
// materials must never consult a package-level or global RNG.
type Material interface {
	Scatter(rayIn core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand)
}
