// Package falloff implements the family of normalized weight curves used by
// the influence engine to blend biomes with distance, ported from the
// reference engine's BiomeFalloff system (biome_falloff.h).
package falloff

import "math"

// Type selects a falloff curve family.
type Type int

const (
	Smooth Type = iota
	Linear
	VerySmooth
	Sharp
	Cosine
	Polynomial2
	Polynomial3
	Polynomial4
	InverseSquare
	Sigmoid
	Smoothstep
	Smootherstep
	Gaussian
	Hyperbolic
)

// String renders a Type the way the reference engine's
// getFalloffTypeName did, for logging/config round-tripping.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case Smooth:
		return "smooth"
	case VerySmooth:
		return "very_smooth"
	case Sharp:
		return "sharp"
	case Cosine:
		return "cosine"
	case Polynomial2:
		return "polynomial_2"
	case Polynomial3:
		return "polynomial_3"
	case Polynomial4:
		return "polynomial_4"
	case InverseSquare:
		return "inverse_square"
	case Sigmoid:
		return "sigmoid"
	case Smoothstep:
		return "smoothstep"
	case Smootherstep:
		return "smootherstep"
	case Gaussian:
		return "gaussian"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// ParseType maps a config string to a Type, defaulting to Smooth for an
// unrecognized name exactly as getFalloffTypeByName did.
func ParseType(name string) Type {
	switch name {
	case "linear":
		return Linear
	case "smooth":
		return Smooth
	case "very_smooth":
		return VerySmooth
	case "sharp":
		return Sharp
	case "cosine":
		return Cosine
	case "polynomial_2", "quadratic":
		return Polynomial2
	case "polynomial_3", "cubic":
		return Polynomial3
	case "polynomial_4", "quartic":
		return Polynomial4
	case "inverse_square":
		return InverseSquare
	case "sigmoid":
		return Sigmoid
	case "smoothstep":
		return Smoothstep
	case "smootherstep":
		return Smootherstep
	case "gaussian":
		return Gaussian
	case "hyperbolic", "tanh":
		return Hyperbolic
	default:
		return Smooth
	}
}

// Config is a biome's falloff shape, matching §4.6 of the spec field for
// field (and BiomeFalloffConfig in the original).
type Config struct {
	Type               Type    `yaml:"type"`
	Sharpness          float64 `yaml:"sharpness"`
	BlendDistance      float64 `yaml:"blend_distance"`
	SearchRadius       float64 `yaml:"search_radius"`
	ExponentialFactor  float64 `yaml:"exponential_factor"`
	InfluenceMultiplier float64 `yaml:"influence_multiplier"`
	EdgeSoftness       float64 `yaml:"edge_softness"`
}

// Default returns the §4.6 table defaults.
func Default() Config {
	return Config{
		Type:                Smooth,
		Sharpness:           1.0,
		BlendDistance:       15,
		SearchRadius:        25,
		ExponentialFactor:   -3.0,
		InfluenceMultiplier: 1.0,
		EdgeSoftness:        1.0,
	}
}

// applyDefaults fills zero-valued fields with the spec defaults; a biome
// file only needs to override the fields it cares about.
func (c Config) applyDefaults() Config {
	d := Default()
	if c.Sharpness == 0 {
		c.Sharpness = d.Sharpness
	}
	if c.BlendDistance == 0 {
		c.BlendDistance = d.BlendDistance
	}
	if c.SearchRadius == 0 {
		c.SearchRadius = d.SearchRadius
	}
	if c.ExponentialFactor == 0 {
		c.ExponentialFactor = d.ExponentialFactor
	}
	if c.InfluenceMultiplier == 0 {
		c.InfluenceMultiplier = d.InfluenceMultiplier
	}
	if c.EdgeSoftness == 0 {
		c.EdgeSoftness = d.EdgeSoftness
	}
	return c
}

// Weight computes the biome's influence weight at raw distance d (before
// normalization across competing centers), following the §4.6 procedure.
func Weight(d float64, cfg Config, rarityWeight float64) float64 {
	cfg = cfg.applyDefaults()

	if d >= cfg.SearchRadius {
		return 0
	}

	n := d / cfg.SearchRadius
	n = clamp01(n)

	if cfg.EdgeSoftness != 1 {
		n = math.Pow(n, cfg.EdgeSoftness)
	}

	w := curve(cfg.Type, n, cfg)

	if cfg.Type != Sharp && cfg.Sharpness != 1 {
		w = math.Pow(w, cfg.Sharpness)
	}

	w *= cfg.InfluenceMultiplier
	w *= rarityWeight / 50.0

	return math.Max(0, w)
}

func curve(t Type, n float64, cfg Config) float64 {
	switch t {
	case Linear:
		return 1 - n
	case Smooth:
		return math.Exp(cfg.ExponentialFactor * n * n)
	case VerySmooth:
		return math.Sqrt(math.Exp(cfg.ExponentialFactor * n * n))
	case Sharp:
		return math.Pow(1-n, cfg.Sharpness*2.0)
	case Cosine:
		return (1 + math.Cos(n*math.Pi)) / 2
	case Polynomial2:
		t := 1 - n
		return t * t
	case Polynomial3:
		t := 1 - n
		return t * t * t
	case Polynomial4:
		t := 1 - n
		return t * t * t * t
	case InverseSquare:
		return 1 / (1 + 2*n*n)
	case Sigmoid:
		return sigmoid(n, 10.0)
	case Smoothstep:
		t := 1 - n
		return t * t * (3 - 2*t)
	case Smootherstep:
		t := 1 - n
		return t * t * t * (t*(t*6-15) + 10)
	case Gaussian:
		return math.Exp(-(n * n) / (2 * 0.35 * 0.35))
	case Hyperbolic:
		return (1 - math.Tanh(5*(n-0.5))) / 2
	default:
		return math.Exp(cfg.ExponentialFactor * n * n)
	}
}

// sigmoid computes a logistic curve normalized so f(0)=1, f(1)=0 exactly,
// matching calculateSigmoidFalloff's renormalization in the original.
func sigmoid(n, steepness float64) float64 {
	at := func(x float64) float64 {
		return 1 / (1 + math.Exp(steepness*(x-0.5)))
	}
	v0, v1 := at(0), at(1)
	if v0 == v1 {
		return 0
	}
	return (at(n) - v1) / (v0 - v1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
