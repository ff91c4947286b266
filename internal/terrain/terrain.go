// Package terrain computes per-block surface height (C8), combining a
// biome's climate-driven properties with fBm terrain noise, age-controlled
// roughness, and mountain-range size scaling — ported from the reference
// engine's BiomeMap::getTerrainHeightAt.
package terrain

import (
	"math"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/climate"
	"github.com/Natfii/voxelbiome/internal/noise"
	"github.com/Natfii/voxelbiome/internal/worldcache"
)

// BaseHeight is the terrain's neutral Y level before any biome/noise
// modifier is applied.
const BaseHeight = 64

// SnowLine is the Y level above which snow begins to appear on peaks.
const SnowLine = 95

// SnowTransition is how many blocks the snow/no-snow boundary blends over.
const SnowTransition = 5

// mountainThreshold: a biome counts as "mountainous" once its
// HeightMultiplier exceeds this.
const mountainThreshold = 1.5

// mountainSampleRadius and mountainSampleCount drive the ring-sampling used
// to scale a mountain biome's height by how large its range is.
const (
	mountainSampleRadius = 500.0
	mountainSampleCount  = 8
)

// biomeQuantize and heightQuantize set the two cache tiers' coordinate
// resolution, matching the reference engine's 4-block and 2-block
// quantization respectively.
const (
	biomeQuantize  = 4.0
	heightQuantize = 2.0
)

// Engine computes terrain heights for one world.
type Engine struct {
	catalog *biome.Catalog
	climate *climate.Field
	terrain *noise.Gradient

	ageBias float64

	biomeCache  *worldcache.Cache[*biome.Descriptor]
	heightCache *worldcache.Cache[int]
}

// New builds a terrain Engine. ageBias is the world-level "flatter vs. more
// mountainous" slider in [-1,1]. biomeCacheSize and heightCacheSize size the
// two cache tiers; a non-positive value falls back to worldcache's default.
func New(seed int64, catalog *biome.Catalog, climateField *climate.Field, ageBias float64, biomeCacheSize, heightCacheSize int) *Engine {
	return &Engine{
		catalog:     catalog,
		climate:     climateField,
		terrain:     noise.NewGradient(seed + 200),
		ageBias:     clamp(ageBias, -1, 1),
		biomeCache:  worldcache.New[*biome.Descriptor](biomeCacheSize),
		heightCache: worldcache.New[int](heightCacheSize),
	}
}

// BiomeAt returns the dominant biome at (worldX, worldZ), cached at 4-block
// resolution.
func (e *Engine) BiomeAt(worldX, worldZ float64) *biome.Descriptor {
	qx, qz := quantize(worldX, biomeQuantize), quantize(worldZ, biomeQuantize)
	key := worldcache.PackXZ(qx, qz)
	return e.biomeCache.GetOrCompute(key, func() *biome.Descriptor {
		tmin, tmax := e.catalog.TemperatureRange()
		mmin, mmax := e.catalog.MoistureRange()
		t := int(math.Round(e.climate.TemperatureAt(worldX, worldZ, tmin, tmax)))
		m := int(math.Round(e.climate.MoistureAt(worldX, worldZ, mmin, mmax)))
		return biome.Select(e.catalog, t, m)
	})
}

// HeightAt returns the terrain surface height at (worldX, worldZ), cached
// at 2-block resolution.
func (e *Engine) HeightAt(worldX, worldZ float64) int {
	qx, qz := quantize(worldX, heightQuantize), quantize(worldZ, heightQuantize)
	key := worldcache.PackXZ(qx, qz)
	return e.heightCache.GetOrCompute(key, func() int {
		return e.computeHeight(worldX, worldZ)
	})
}

func (e *Engine) computeHeight(worldX, worldZ float64) int {
	d := e.BiomeAt(worldX, worldZ)
	if d == nil {
		return BaseHeight
	}

	n := e.terrain.FBm2(worldX, worldZ, noise.FBmParams{
		Octaves: nonZeroOr(d.TerrainOctaves, 5), Frequency: 0.015,
		Lacunarity: nonZeroOrF(d.TerrainLacunarity, 2.0), Gain: nonZeroOrF(d.TerrainGain, 0.5),
	})

	ageNormalized := float64(d.Age) / 100.0
	ageNormalized = clamp(ageNormalized-e.ageBias, 0, 1)

	heightVariation := 30.0 - ageNormalized*25.0

	heightMultiplier := d.HeightMultiplier
	if heightMultiplier == 0 {
		heightMultiplier = 1.0
	}
	if heightMultiplier > mountainThreshold {
		heightMultiplier *= e.mountainSizeScaling(worldX, worldZ)
	}

	heightVariation *= heightMultiplier

	return BaseHeight + int(n*heightVariation)
}

// mountainSizeScaling samples 8 points in a ring to judge how large the
// surrounding mountain range is: the factor is 0.5x when no ring sample is
// mountainous and rises to 2.0x when all of them are.
func (e *Engine) mountainSizeScaling(worldX, worldZ float64) float64 {
	mountainCount := 0
	for i := 0; i < mountainSampleCount; i++ {
		angle := (float64(i) / float64(mountainSampleCount)) * 2 * math.Pi
		sampleX := worldX + math.Cos(angle)*mountainSampleRadius
		sampleZ := worldZ + math.Sin(angle)*mountainSampleRadius

		sampleBiome := e.BiomeAt(sampleX, sampleZ)
		if sampleBiome != nil && sampleBiome.HeightMultiplier > mountainThreshold {
			mountainCount++
		}
	}

	density := float64(mountainCount) / float64(mountainSampleCount)
	return 0.5 + density*1.5
}

// altitudeDropPerBlock is how many degrees colder a point gets per block of
// elevation above SnowLine.
const altitudeDropPerBlock = 0.06

// TemperatureAltitudeModifier returns how many degrees colder a point gets
// purely from elevation above SnowLine (0 at or below SnowLine), for
// callers blending a biome's base temperature with height.
func TemperatureAltitudeModifier(y int) float64 {
	return math.Max(0, float64(y-SnowLine)*altitudeDropPerBlock)
}

// snowTemperatureThreshold is the altitude-adjusted temperature below which
// a surface block should render snow.
const snowTemperatureThreshold = 15

// ShouldApplySnow reports whether a surface block at height y, whose
// biome's raw temperature is temperature, should render snow: the
// altitude-adjusted temperature must fall below snowTemperatureThreshold.
func ShouldApplySnow(temperature float64, y int) bool {
	return temperature-TemperatureAltitudeModifier(y) < snowTemperatureThreshold
}

func quantize(v, step float64) int32 {
	return int32(math.Floor(v / step))
}

func nonZeroOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func nonZeroOrF(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
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
