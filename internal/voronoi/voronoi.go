// Package voronoi scatters biome center points across the world on a
// jittered grid (C5), giving biomes identifiable centers and coherent
// regions instead of pure per-block noise selection. Ported from the
// reference engine's BiomeVoronoi.
package voronoi

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/noise"
	"github.com/Natfii/voxelbiome/internal/worldcache"
)

// CenterSpacing is the grid cell size; each cell owns exactly one jittered
// center. 400 blocks yields medium, exploration-friendly biomes.
const CenterSpacing = 400.0

// jitterFraction bounds how far a center can drift from its grid cell's
// corner, as a fraction of CenterSpacing.
const jitterFraction = 0.3

// distortionFraction scales the domain-warp applied to query positions
// before distance computation, preventing visibly geometric cell boundaries.
const distortionFraction = 0.15

// jitterFrequency is the jitter noise's sample-space scaling, matching the
// original constructor's m_jitterNoise.SetFrequency(0.001f): neighboring
// grid cells (CenterSpacing apart) then fall close together in noise space
// and get correlated-but-distinct jitter, rather than effectively
// independent jitter per cell.
const jitterFrequency = 0.001

// Center is a single biome center point.
type Center struct {
	X, Z        float64
	Biome       *biome.Descriptor
	Temperature float64
	Moisture    float64
	ID          uint64
}

// Field generates and caches Voronoi centers for one world.
type Field struct {
	catalog *biome.Catalog

	temperatureNoise *noise.Gradient
	moistureNoise    *noise.Gradient
	distortionX      *noise.Gradient
	distortionZ      *noise.Gradient
	jitterNoise      *noise.Gradient

	cache   *worldcache.Cache[[]Center]
	nextID  uint64
}

// New builds a Field. Generated centers are held in a worldcache.Cache
// capped at cacheSize entries (a non-positive cacheSize falls back to
// worldcache's default); once the cap is reached the oldest 20% of cells are
// evicted, and an evicted cell is regenerated on its next access with the
// same position and biome but a new ID.
func New(seed int64, catalog *biome.Catalog, cacheSize int) *Field {
	return &Field{
		catalog:          catalog,
		temperatureNoise: noise.NewGradient(seed),
		moistureNoise:    noise.NewGradient(seed + 100),
		distortionX:      noise.NewGradient(seed + 1000),
		distortionZ:      noise.NewGradient(seed + 1100),
		jitterNoise:      noise.NewGradient(seed + 2000),
		cache:            worldcache.New[[]Center](cacheSize),
	}
}

func gridKey(gridX, gridZ int32) uint64 {
	return worldcache.PackXZ(gridX, gridZ)
}

// centerForCell returns the (single) center owned by a grid cell,
// generating and caching it on first access. A center's position and biome
// depend only on the seed and the cell, so repeated queries agree regardless
// of call order; only its ID is assigned at generation time.
func (f *Field) centerForCell(gridX, gridZ int32) Center {
	key := gridKey(gridX, gridZ)
	centers := f.cache.GetOrCompute(key, func() []Center {
		baseX := float64(gridX) * CenterSpacing
		baseZ := float64(gridZ) * CenterSpacing

		jitterRange := CenterSpacing * jitterFraction
		jitterX := f.jitterNoise.Eval2(baseX*jitterFrequency, baseZ*jitterFrequency) * jitterRange
		jitterZ := f.jitterNoise.Eval2(baseX*jitterFrequency+1000, baseZ*jitterFrequency+1000) * jitterRange

		cx, cz := baseX+jitterX, baseZ+jitterZ

		temperature := (f.temperatureNoise.FBm2(cx, cz, noise.FBmParams{Octaves: 4, Frequency: 0.0005, Lacunarity: 2.0, Gain: 0.5}) + 1.0) * 50.0
		moisture := (f.moistureNoise.FBm2(cx, cz, noise.FBmParams{Octaves: 4, Frequency: 0.0006, Lacunarity: 2.0, Gain: 0.5}) + 1.0) * 50.0

		d := f.selectBiomeForCenter(temperature, moisture)

		return []Center{{
			X: cx, Z: cz,
			Biome:       d,
			Temperature: temperature,
			Moisture:    moisture,
			ID:          nextCenterID(&f.nextID),
		}}
	})
	return centers[0]
}

func nextCenterID(counter *uint64) uint64 {
	return atomic.AddUint64(counter, 1) - 1
}

// selectBiomeForCenter picks a biome for a center point by closest climate
// match weighted by rarity, independent of the per-block selector in
// package biome — the original keeps these two selection paths distinct so
// center assignment stays stable even if per-block tie-breaking changes.
func (f *Field) selectBiomeForCenter(temperature, moisture float64) *biome.Descriptor {
	all := f.catalog.All()
	if len(all) == 0 {
		return nil
	}

	var best *biome.Descriptor
	bestDist := math.MaxFloat64

	for _, d := range all {
		tempDist := temperature - float64(d.Temperature)
		moistDist := moisture - float64(d.Moisture)
		totalDist := math.Sqrt(tempDist*tempDist + moistDist*moistDist)

		rarity := float64(d.RarityWeight)
		if rarity <= 0 {
			rarity = 50
		}
		weighted := totalDist / (rarity / 50.0)

		if weighted < bestDist {
			bestDist = weighted
			best = d
		}
	}
	return best
}

// CentersInRegion returns every center whose position falls within
// [minX,maxX] x [minZ,maxZ], generating any grid cells that overlap the
// region first.
func (f *Field) CentersInRegion(minX, maxX, minZ, maxZ float64) []Center {
	minGridX := int32(math.Floor(minX / CenterSpacing))
	maxGridX := int32(math.Ceil(maxX / CenterSpacing))
	minGridZ := int32(math.Floor(minZ / CenterSpacing))
	maxGridZ := int32(math.Ceil(maxZ / CenterSpacing))

	var out []Center
	for gz := minGridZ; gz <= maxGridZ; gz++ {
		for gx := minGridX; gx <= maxGridX; gx++ {
			c := f.centerForCell(gx, gz)
			if c.X >= minX && c.X <= maxX && c.Z >= minZ && c.Z <= maxZ {
				out = append(out, c)
			}
		}
	}
	return out
}

// distortedPosition domain-warps a query position before distance
// computation, breaking up the geometric regularity a plain grid-based
// Voronoi tessellation would otherwise show.
func (f *Field) distortedPosition(worldX, worldZ float64) (x, z float64) {
	strength := CenterSpacing * distortionFraction
	offsetX := f.distortionX.FBm2(worldX, worldZ, noise.FBmParams{Octaves: 3, Frequency: 0.002, Lacunarity: 2.0, Gain: 0.5}) * strength
	offsetZ := f.distortionZ.FBm2(worldX, worldZ, noise.FBmParams{Octaves: 3, Frequency: 0.002, Lacunarity: 2.0, Gain: 0.5}) * strength
	return worldX + offsetX, worldZ + offsetZ
}

// CenterDistance pairs a center with its distance from a (distorted) query
// position.
type CenterDistance struct {
	Center   Center
	Distance float64
}

// NearestCenters returns up to maxCenters centers nearest to (worldX,
// worldZ), sorted ascending by distance, after applying domain distortion
// to the query position.
func (f *Field) NearestCenters(worldX, worldZ float64, maxCenters int) []CenterDistance {
	dx, dz := f.distortedPosition(worldX, worldZ)

	searchRadius := CenterSpacing * 2.0
	nearby := f.CentersInRegion(dx-searchRadius, dx+searchRadius, dz-searchRadius, dz+searchRadius)

	out := make([]CenterDistance, 0, len(nearby))
	for _, c := range nearby {
		ddx := dx - c.X
		ddz := dz - c.Z
		out = append(out, CenterDistance{Center: c, Distance: math.Sqrt(ddx*ddx + ddz*ddz)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	if len(out) > maxCenters {
		out = out[:maxCenters]
	}
	return out
}

// Weight computes the classic Voronoi cell weight at a sample distance,
// given the distance to the nearest center and the blend radius: 1.0 right
// at the center, smoothly decaying to ~0 across the blend zone.
func Weight(distance, minDistance, blendRadius float64) float64 {
	if distance <= 0 {
		return 1.0
	}
	if blendRadius <= 0 {
		return 0
	}
	blendFactor := (distance - minDistance) / blendRadius
	if blendFactor < 0 {
		blendFactor = 0
	}
	if blendFactor > 1 {
		blendFactor = 1
	}
	const falloffStrength = 3.0
	return math.Exp(-falloffStrength * blendFactor * blendFactor)
}
