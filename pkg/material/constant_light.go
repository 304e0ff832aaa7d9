package material

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// ConstantLight is a pure emitter: every hit returns the same constant
// radiance and absorbs the path. It never scatters.
type ConstantLight struct {
	Li core.Spectrum
}

// NewConstantLight creates a constant light material with the given emitted radiance.
func NewConstantLight(li core.Spectrum) *ConstantLight {
	return &ConstantLight{Li: li}
}

// Scatter writes the constant emission and the absorbing sentinel
// attenuation. DOut is not written and must not be used by the caller,
// since Attenuation has no positive component.
func (c *ConstantLight) Scatter(rayIn core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) {
	interaction.Li = c.Li
	interaction.Attenuation = core.AbsorbAttenuation
}
