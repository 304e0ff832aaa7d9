package core

import (
	"fmt"
	"math"
)

// Spectrum is a fixed-length 3-channel radiance/attenuation value
// (semantically R, G, B) in linear light. All arithmetic is
// component-wise. A Spectrum may legitimately hold non-finite values
// produced by degenerate samples; callers that accumulate samples are
// responsible for rejecting them (see integrator.PathTracer.Estimate).
type Spectrum struct {
	R, G, B float64
}

// NewSpectrum creates a new Spectrum
func NewSpectrum(r, g, b float64) Spectrum {
	return Spectrum{R: r, G: g, B: b}
}

func (s Spectrum) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", s.R, s.G, s.B)
}

// Add returns the component-wise sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum{s.R + other.R, s.G + other.G, s.B + other.B}
}

// Multiply returns the spectrum scaled by a scalar
func (s Spectrum) Multiply(scalar float64) Spectrum {
	return Spectrum{s.R * scalar, s.G * scalar, s.B * scalar}
}

// MultiplySpectrum returns the component-wise (Hadamard) product of two spectra
func (s Spectrum) MultiplySpectrum(other Spectrum) Spectrum {
	return Spectrum{s.R * other.R, s.G * other.G, s.B * other.B}
}

// Divide returns the spectrum divided by a scalar
func (s Spectrum) Divide(scalar float64) Spectrum {
	return Spectrum{s.R / scalar, s.G / scalar, s.B / scalar}
}

// IsFinite reports whether every channel is a finite float.
func (s Spectrum) IsFinite() bool {
	return !math.IsInf(s.R, 0) && !math.IsNaN(s.R) &&
		!math.IsInf(s.G, 0) && !math.IsNaN(s.G) &&
		!math.IsInf(s.B, 0) && !math.IsNaN(s.B)
}

// HasPositiveComponent reports whether at least one channel is strictly positive.
// Materials signal "absorb, do not scatter" by returning an attenuation
// with no positive component (see AbsorbAttenuation).
func (s Spectrum) HasPositiveComponent() bool {
	return s.R > 0 || s.G > 0 || s.B > 0
}

// Clamp returns a spectrum with each channel clamped to [lo, hi].
func (s Spectrum) Clamp(lo, hi float64) Spectrum {
	clamp := func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return Spectrum{clamp(s.R), clamp(s.G), clamp(s.B)}
}

// GammaCorrect applies pixel^(1/gamma) to each channel.
func (s Spectrum) GammaCorrect(gamma float64) Spectrum {
	invGamma := 1.0 / gamma
	return Spectrum{
		R: math.Pow(s.R, invGamma),
		G: math.Pow(s.G, invGamma),
		B: math.Pow(s.B, invGamma),
	}
}

// AbsorbAttenuation is the sentinel attenuation value with no positive
// component. Materials that never scatter (pure emitters) write this
// into SurfaceInteraction.Attenuation to tell the integrator to stop.
var AbsorbAttenuation = Spectrum{R: math.Inf(-1), G: math.Inf(-1), B: math.Inf(-1)}
