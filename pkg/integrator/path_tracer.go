package integrator

import (
	"math"
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/entity"
)

// scatterEpsilon offsets a scattered ray's origin off the surface to
// avoid immediate self-intersection.
const scatterEpsilon = 1e-4

// PathTracer estimates pixel radiance by stratified-sampling a pixel's
// world region with a Latin-square-like pairing of spatial cells and
// angular bins, then walking each sample's path with a fixed number of
// guaranteed bounces followed by Russian-roulette termination at a
// fixed continuation probability q.
type PathTracer struct {
	Entity           entity.Entity
	NSamples         int // samples per spatial axis; N^2 samples per pixel
	NSteps           int // guaranteed bounces before Russian roulette
	RussianRouletteQ float64

	Logger core.Logger
}

// NewPathTracer creates a path tracer, validating that nSamples is
// positive and q lies in (0, 1).
func NewPathTracer(e entity.Entity, nSamples, nSteps int, q float64) (*PathTracer, error) {
	if nSamples <= 0 {
		return nil, &ConfigError{Field: "nSamples", Reason: "must be positive"}
	}
	if nSteps < 0 {
		return nil, &ConfigError{Field: "nSteps", Reason: "must be non-negative"}
	}
	if !(q > 0 && q < 1) {
		return nil, &ConfigError{Field: "russianRouletteQ", Reason: "must lie in (0, 1)"}
	}
	return &PathTracer{
		Entity:           e,
		NSamples:         nSamples,
		NSteps:           nSteps,
		RussianRouletteQ: q,
		Logger:           core.NopLogger{},
	}, nil
}

// Estimate draws N^2 stratified samples over region and averages the
// finite ones. If none of the samples are finite, it returns the zero
// Spectrum rather than propagating NaN.
func (pt *PathTracer) Estimate(region core.Region, rng *rand.Rand) core.Spectrum {
	n := pt.NSamples
	cells := n * n

	bins := rng.Perm(cells)

	width := region.Max.X - region.Min.X
	height := region.Max.Y - region.Min.Y
	cellWidth := width / float64(n)
	cellHeight := height / float64(n)
	binWidth := 2 * math.Pi / float64(cells)

	sum := core.Spectrum{}
	finiteCount := 0

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			k := row*n + col

			ox := region.Min.X + (float64(col)+rng.Float64())*cellWidth
			oy := region.Min.Y + (float64(row)+rng.Float64())*cellHeight
			origin := core.NewVec2(ox, oy)

			bin := bins[k]
			angle := float64(bin)*binWidth + rng.Float64()*binWidth
			direction := core.FromAngle(angle)

			ray := core.NewRay(origin, direction)
			l := pt.trace(ray, rng)

			if l.IsFinite() {
				sum = sum.Add(l)
				finiteCount++
			}
		}
	}

	if finiteCount == 0 {
		return core.Spectrum{}
	}
	return sum.Divide(float64(finiteCount))
}

// trace walks a single sample's path: NSteps guaranteed bounces, then
// a Russian-roulette loop that continues only while a drawn uniform is
// below q, dividing throughput by (1-q) on each continuation.
func (pt *PathTracer) trace(ray core.Ray, rng *rand.Rand) core.Spectrum {
	l := core.Spectrum{}
	beta := core.NewSpectrum(1, 1, 1)

	for step := 0; step < pt.NSteps; step++ {
		interaction := core.SurfaceInteraction{}
		if !pt.Entity.Intersect(&ray, &interaction, rng) {
			pt.logf("  step[%d]     miss: L=%v\n", step, l)
			return l
		}
		l = l.Add(beta.MultiplySpectrum(interaction.Li))
		if !interaction.Scatters() {
			pt.logf("  step[%d] absorbed: L=%v\n", step, l)
			return l
		}
		beta = beta.MultiplySpectrum(interaction.Attenuation)
		ray = pt.spawnScattered(interaction, rng)
	}

	for step := pt.NSteps; ; step++ {
		u := rng.Float64()
		if u >= pt.RussianRouletteQ {
			pt.logf("  step[%d]  rr-stop: L=%v\n", step, l)
			return l
		}
		beta = beta.Divide(1 - pt.RussianRouletteQ)

		interaction := core.SurfaceInteraction{}
		if !pt.Entity.Intersect(&ray, &interaction, rng) {
			pt.logf("  step[%d]     miss: L=%v\n", step, l)
			return l
		}
		l = l.Add(beta.MultiplySpectrum(interaction.Li))
		if !interaction.Scatters() {
			pt.logf("  step[%d] absorbed: L=%v\n", step, l)
			return l
		}
		beta = beta.MultiplySpectrum(interaction.Attenuation)
		ray = pt.spawnScattered(interaction, rng)
	}
}

// logf writes a verbose trace line via the integrator's Logger.
func (pt *PathTracer) logf(format string, args ...interface{}) {
	if pt.Logger != nil {
		pt.Logger.Printf(format, args...)
	}
}

// spawnScattered builds the next ray from a completed interaction,
// offsetting the origin along the normal by scatterEpsilon into the
// hemisphere of the outgoing direction to avoid self-intersection.
func (pt *PathTracer) spawnScattered(interaction core.SurfaceInteraction, rng *rand.Rand) core.Ray {
	normal := interaction.N.Normalize()
	offset := normal.Multiply(scatterEpsilon)
	if interaction.DOut.Dot(normal) < 0 {
		offset = offset.Negate()
	}
	origin := interaction.P.Add(offset)
	return core.NewRay(origin, interaction.DOut)
}
