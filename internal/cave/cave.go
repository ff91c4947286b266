// Package cave computes the 3D underground density field (C9): winding
// tunnels, a secondary crossing tunnel network, sparse chambers, and
// surface-entrance blending, combined via minimum so passages connect.
// Ported from the reference engine's BiomeMap::getCaveDensityAt.
package cave

import (
	"math"

	"github.com/Natfii/voxelbiome/internal/noise"
)

const (
	primaryTunnelRadius   = 0.12
	secondaryTunnelRadius = 0.10
	chamberThreshold      = 0.25 // fraction of volume that can be a chamber
	entranceDepthBand     = 15.0
	entranceTransition    = 8.0
	entranceChance        = 0.85 // fraction of surface area WITHOUT an entrance

	undergroundBiomeMinY      = -200.0
	undergroundBiomeMaxY      = 200.0
	undergroundBiomeThreshold = 0.6

	chamberFreq          = 0.03  // caveNoise in the original: controls chamber size
	undergroundFieldFreq = 0.006 // undergroundChamberNoise: 3x coarser than surface biomes
)

// Field samples cave density and underground-biome placement for one
// world.
type Field struct {
	tunnelNoise    *noise.Gradient
	chamberNoise   *noise.Cellular
	chamberField   *noise.Cellular // undergroundChamberNoise in the original

	terrainFn func(worldX, worldZ float64) int
}

// New builds a cave Field. terrainHeight supplies the surface height used
// to blend cave entrances near ground level (normally terrain.Engine.HeightAt).
func New(seed int64, terrainHeight func(worldX, worldZ float64) int) *Field {
	return &Field{
		tunnelNoise:  noise.NewGradient(seed + 350),
		chamberNoise: noise.NewCellular(seed + 300),
		chamberField: noise.NewCellular(seed + 400),
		terrainFn:    terrainHeight,
	}
}

// DensityAt returns the cave density at a world position: < 0.45 reads as
// open air (a cave), >= 0.45 reads as solid rock.
func (f *Field) DensityAt(worldX, worldY, worldZ float64) float64 {
	tunnelNoise := f.tunnelNoise.FBm3(worldX, worldY, worldZ, noise.FBmParams{
		Octaves: 4, Frequency: 0.025, Lacunarity: 2.0, Gain: 0.5,
	})
	tunnelDensity := math.Min(1.0, math.Abs(tunnelNoise)/primaryTunnelRadius)

	tunnelNoise2 := f.tunnelNoise.FBm3(worldX*0.7+1000, worldY*1.3, worldZ*0.7, noise.FBmParams{
		Octaves: 4, Frequency: 0.025, Lacunarity: 2.0, Gain: 0.5,
	})
	tunnelDensity2 := math.Min(1.0, math.Abs(tunnelNoise2)/secondaryTunnelRadius)

	chamberRaw := f.chamberNoise.Eval3(worldX*chamberFreq, worldY*0.5*chamberFreq, worldZ*chamberFreq, noise.Distance)
	chamberDensity := noise.ToUnit3(chamberRaw)
	if chamberDensity < chamberThreshold {
		chamberDensity = 0.0
	} else {
		chamberDensity = 1.0
	}

	combined := math.Min(math.Min(tunnelDensity, tunnelDensity2), chamberDensity)

	if f.terrainFn != nil {
		terrainHeight := f.terrainFn(worldX, worldZ)
		depthBelowSurface := float64(terrainHeight) - worldY

		if depthBelowSurface >= 0 && depthBelowSurface < entranceDepthBand {
			entranceRaw := f.chamberField.Eval3(worldX*0.05*undergroundFieldFreq, 0, worldZ*0.05*undergroundFieldFreq, noise.Distance)
			entranceRoll := noise.ToUnit3(entranceRaw)

			if entranceRoll > entranceChance {
				transitionDepth := math.Min(1.0, depthBelowSurface/entranceTransition)
				combined = combined * (0.3 + 0.7*transitionDepth)
			} else {
				surfaceProximity := 1.0 - depthBelowSurface/entranceDepthBand
				combined = combined + surfaceProximity*(1.0-combined)
			}
		}
	}

	return combined
}

// IsUndergroundBiomeAt reports whether a large underground-biome chamber
// occupies this position, used to give deep caves their own biome pockets
// distinct from the surface biome directly above.
func (f *Field) IsUndergroundBiomeAt(worldX, worldY, worldZ float64) bool {
	if worldY < undergroundBiomeMinY || worldY > undergroundBiomeMaxY {
		return false
	}

	raw := f.chamberField.Eval3(worldX*undergroundFieldFreq, worldY*0.3*undergroundFieldFreq, worldZ*undergroundFieldFreq, noise.Distance2)
	value := noise.ToUnit3(raw)

	return value > undergroundBiomeThreshold
}
