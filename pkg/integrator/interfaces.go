// Package integrator estimates radiance along a ray by walking the
// scattering chain the entity graph produces.
package integrator

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Integrator estimates the radiance arriving in a pixel's world
// sub-region, averaged over the sub-region's area and over incoming
// directions, drawing any randomness it needs from the supplied
// worker-local RNG.
type Integrator interface {
	Estimate(region core.Region, rng *rand.Rand) core.Spectrum
}

// ConfigError reports an invalid integrator construction parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "integrator: invalid " + e.Field + ": " + e.Reason
}
