// Package climate computes the temperature and moisture scalar fields (C2)
// that drive biome selection, following the reference engine's BiomeMap
// noise stack (biome_map.cpp).
package climate

import (
	"math"

	"github.com/Natfii/voxelbiome/internal/noise"
)

// Field samples deterministic temperature/moisture scalars in [0,100] (once
// mapped into a catalog's range) from two independently-seeded pairs of
// gradient noise sources: a massive-scale base and a subtle local
// variation, blended 90/10 so biome boundaries stay broad and stable.
type Field struct {
	temperatureBase      *noise.Gradient
	temperatureVariation *noise.Gradient
	moistureBase         *noise.Gradient
	moistureVariation    *noise.Gradient

	temperatureBias float64 // [-1,1], from world config
	moistureBias    float64 // [-1,1], from world config
}

const (
	temperatureBaseFreq      = 0.00008
	temperatureVariationFreq = 0.003
	moistureBaseFreq         = 0.0001
	moistureVariationFreq    = 0.004

	temperatureBaseOctaves      = 3
	temperatureVariationOctaves = 2
	moistureBaseOctaves         = 3
	moistureVariationOctaves    = 2
)

// New builds a Field seeded from the world seed. Offsets mirror the
// reference engine's seed+100/seed+1000/seed+1100 scheme so each noise
// source is independent but reproducible from a single world seed.
func New(seed int64, temperatureBias, moistureBias float64) *Field {
	return &Field{
		temperatureBase:      noise.NewGradient(seed),
		temperatureVariation: noise.NewGradient(seed + 1000),
		moistureBase:         noise.NewGradient(seed + 100),
		moistureVariation:    noise.NewGradient(seed + 1100),
		temperatureBias:      clamp(temperatureBias, -1, 1),
		moistureBias:         clamp(moistureBias, -1, 1),
	}
}

// TemperatureAt returns a temperature scalar mapped into [tmin,tmax].
func (f *Field) TemperatureAt(worldX, worldZ float64, tmin, tmax int) float64 {
	base := f.temperatureBase.FBm2(worldX, worldZ, noise.FBmParams{
		Octaves: temperatureBaseOctaves, Frequency: temperatureBaseFreq, Lacunarity: 2.0, Gain: 0.5,
	})
	variation := f.temperatureVariation.FBm2(worldX, worldZ, noise.FBmParams{
		Octaves: temperatureVariationOctaves, Frequency: temperatureVariationFreq, Lacunarity: 2.0, Gain: 0.5,
	})

	combined := base*0.90 + variation*0.10

	distanceFromOrigin := math.Sqrt(worldX*worldX + worldZ*worldZ)
	distanceScale1 := math.Sin(distanceFromOrigin*0.0002) * 0.15
	distanceScale2 := math.Sin(distanceFromOrigin*0.0005) * 0.08
	distanceInfluence := distanceScale1 + distanceScale2

	combined = combined * (1.0 + distanceInfluence*0.5)
	combined = clamp(combined, -1, 1)

	combined = clamp(combined+f.temperatureBias, -1, 1)

	return mapNoiseToRange(combined, float64(tmin), float64(tmax))
}

// MoistureAt returns a moisture scalar mapped into [mmin,mmax].
func (f *Field) MoistureAt(worldX, worldZ float64, mmin, mmax int) float64 {
	base := f.moistureBase.FBm2(worldX, worldZ, noise.FBmParams{
		Octaves: moistureBaseOctaves, Frequency: moistureBaseFreq, Lacunarity: 2.0, Gain: 0.5,
	})
	variation := f.moistureVariation.FBm2(worldX, worldZ, noise.FBmParams{
		Octaves: moistureVariationOctaves, Frequency: moistureVariationFreq, Lacunarity: 2.0, Gain: 0.5,
	})

	combined := base*0.90 + variation*0.10
	combined = clamp(combined+f.moistureBias, -1, 1)

	return mapNoiseToRange(combined, float64(mmin), float64(mmax))
}

// mapNoiseToRange affine-maps a value in [-1,1] to [min,max].
func mapNoiseToRange(n, min, max float64) float64 {
	return (n+1)/2*(max-min) + min
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
