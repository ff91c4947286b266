// Package influence blends the nearest Voronoi centers into a normalized
// set of per-biome weights (C7), the basis for smooth terrain and block
// transitions between biomes.
package influence

import (
	"math"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/falloff"
	"github.com/Natfii/voxelbiome/internal/voronoi"
)

// NearestCount is how many Voronoi centers a query considers, per C7.
const NearestCount = 4

// Weighted is one biome's normalized share of influence at a point.
type Weighted struct {
	Biome  *biome.Descriptor
	Weight float64 // sums to ~1 across a result set
}

// At computes the blended biome influences at (worldX, worldZ): the
// nearest NearestCount centers each contribute a falloff weight from their
// biome's configured curve, normalized so the weights sum to 1. If every
// nearby center is beyond its own search radius, the single nearest center
// wins outright with weight 1.
func At(field *voronoi.Field, worldX, worldZ float64) []Weighted {
	nearest := field.NearestCenters(worldX, worldZ, NearestCount)
	if len(nearest) == 0 {
		return nil
	}

	weights := make([]Weighted, 0, len(nearest))
	total := 0.0

	for _, cd := range nearest {
		d := cd.Center.Biome
		if d == nil {
			continue
		}
		cfg := d.EffectiveFalloff()
		w := falloff.Weight(cd.Distance, cfg, float64(rarityOrDefault(d)))
		if w <= 0 {
			continue
		}
		weights = append(weights, Weighted{Biome: d, Weight: w})
		total += w
	}

	if total <= 0 {
		// Every candidate was beyond its search radius: fall back to the
		// single nearest center with full weight.
		nearestBiome := nearest[0].Center.Biome
		if nearestBiome == nil {
			return nil
		}
		return []Weighted{{Biome: nearestBiome, Weight: 1.0}}
	}

	for i := range weights {
		weights[i].Weight /= total
	}
	return weights
}

// hotBiomePenaltyScale sets how fast a warm biome's influence fades as the
// altitude-driven temperature drop grows: a biome's own configured
// temperature sets its penalty rate, so hot biomes (deserts, savannas) lose
// weight quickly with elevation while cold biomes (taiga, mountain) barely
// change.
const hotBiomePenaltyScale = 1.0 / 10000.0

// At3D is the altitude-aware counterpart of At: the same blend, with every
// weight additionally scaled down for biomes whose configured temperature
// doesn't tolerate the altitude-driven temperature drop at worldY, then
// renormalized. A drop of 0 (at or below the snow line) leaves every weight
// unchanged.
func At3D(field *voronoi.Field, worldX, worldY, worldZ float64, altitudeTempDrop func(d *biome.Descriptor, y float64) float64) []Weighted {
	base := At(field, worldX, worldZ)
	if len(base) == 0 || altitudeTempDrop == nil {
		return base
	}

	scaled := make([]Weighted, len(base))
	total := 0.0
	for i, w := range base {
		drop := altitudeTempDrop(w.Biome, worldY)
		factor := math.Max(0, 1-drop*float64(w.Biome.Temperature)*hotBiomePenaltyScale)
		scaled[i] = Weighted{Biome: w.Biome, Weight: w.Weight * factor}
		total += scaled[i].Weight
	}
	if total <= 0 {
		return base
	}
	for i := range scaled {
		scaled[i].Weight /= total
	}
	return scaled
}

func rarityOrDefault(d *biome.Descriptor) int {
	if d.RarityWeight <= 0 {
		return 50
	}
	return d.RarityWeight
}

// Dominant returns the single highest-weighted biome from a blend, or nil
// if the blend is empty.
func Dominant(weights []Weighted) *biome.Descriptor {
	if len(weights) == 0 {
		return nil
	}
	best := weights[0]
	for _, w := range weights[1:] {
		if w.Weight > best.Weight {
			best = w
		}
	}
	return best.Biome
}

// SumWeights reports how close a blend's weights sum to 1, useful for
// tests and debug introspection; a healthy blend is within 1e-3 of 1.0.
func SumWeights(weights []Weighted) float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w.Weight
	}
	return sum
}
