// Package noise provides deterministic multi-octave gradient and cellular
// noise sampled at 2D or 3D coordinates. Every sampler is a thin, stateless
// wrapper: for a fixed seed and coordinate the returned value is bit-stable
// across threads and runs, and reads never take a lock, matching the
// reference engine's FastNoiseLite usage ("thread-safe for reads - no mutex
// needed").
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Gradient wraps OpenSimplex2-style gradient noise with fractional Brownian
// motion (fBm) octaving, mirroring worldgen.NoiseGenerator from the teacher
// but extended to 3D and to configurable lacunarity/gain.
type Gradient struct {
	n    opensimplex.Noise
	seed int64
}

// NewGradient builds a gradient noise sampler for the given seed.
func NewGradient(seed int64) *Gradient {
	return &Gradient{n: opensimplex.New(seed), seed: seed}
}

// Seed returns the seed this sampler was constructed with.
func (g *Gradient) Seed() int64 { return g.seed }

// Eval2 samples raw 2D noise in [-1, 1].
func (g *Gradient) Eval2(x, z float64) float64 {
	return g.n.Eval2(x, z)
}

// Eval3 samples raw 3D noise in [-1, 1].
func (g *Gradient) Eval3(x, y, z float64) float64 {
	return g.n.Eval3(x, y, z)
}

// FBmParams configures fractional Brownian motion octaving.
type FBmParams struct {
	Octaves     int
	Frequency   float64
	Lacunarity  float64 // default 2.0
	Gain        float64 // persistence, default 0.5
}

// DefaultFBmParams returns fBm params for the given octave count and
// frequency, with the default lacunarity 2.0 and gain 0.5.
func DefaultFBmParams(octaves int, frequency float64) FBmParams {
	return FBmParams{Octaves: octaves, Frequency: frequency, Lacunarity: 2.0, Gain: 0.5}
}

// FBm2 samples fractional-Brownian-motion octaved noise at (x, z). The
// result stays within [-1, 1] by construction (each octave's maximum
// contribution is normalized out).
func (g *Gradient) FBm2(x, z float64, p FBmParams) float64 {
	octaves, lacunarity, gain := normalizeFBmParams(p)

	var total, norm, amplitude float64 = 0, 0, 1
	freq := p.Frequency
	for i := 0; i < octaves; i++ {
		total += g.n.Eval2(x*freq, z*freq) * amplitude
		norm += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// FBm3 is the 3D counterpart of FBm2, used by the cave tunnel fields.
func (g *Gradient) FBm3(x, y, z float64, p FBmParams) float64 {
	octaves, lacunarity, gain := normalizeFBmParams(p)

	var total, norm, amplitude float64 = 0, 0, 1
	freq := p.Frequency
	for i := 0; i < octaves; i++ {
		total += g.n.Eval3(x*freq, y*freq, z*freq) * amplitude
		norm += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

func normalizeFBmParams(p FBmParams) (octaves int, lacunarity, gain float64) {
	octaves = p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	lacunarity = p.Lacunarity
	if lacunarity <= 0 {
		lacunarity = 2.0
	}
	gain = p.Gain
	if gain <= 0 {
		gain = 0.5
	}
	return
}

// ToUnit maps a [-1, 1] noise value to [0, 1].
func ToUnit(v float64) float64 {
	return (v + 1) / 2
}
