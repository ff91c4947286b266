// Package core wires the climate, Voronoi, influence, terrain, cave, and
// tree subsystems behind a single world handle, matching the shape of the
// reference engine's BiomeMap facade: one object a caller constructs once
// and queries repeatedly.
package core

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/cave"
	"github.com/Natfii/voxelbiome/internal/climate"
	"github.com/Natfii/voxelbiome/internal/config"
	"github.com/Natfii/voxelbiome/internal/influence"
	"github.com/Natfii/voxelbiome/internal/terrain"
	"github.com/Natfii/voxelbiome/internal/trees"
	"github.com/Natfii/voxelbiome/internal/voronoi"
)

// Biases bundles the three world-level sliders that nudge generation away
// from raw noise output, each in [-1, 1].
type Biases struct {
	Temperature float64
	Moisture    float64
	Age         float64
}

// Core is a fully initialized world handle. Every query method is safe for
// concurrent use.
type Core struct {
	seed    int64
	biases  Biases
	catalog *biome.Catalog

	climate   *climate.Field
	voronoi   *voronoi.Field
	terrain   *terrain.Engine
	caveField *cave.Field
}

// Init loads the biome catalog from catalogDir and builds a Core over it.
// It refuses to construct a world over an empty or unloadable catalog, per
// the catalog's fatal-failure contract.
func Init(seed int64, biases Biases, catalogDir string) (*Core, error) {
	return InitWithCacheSizes(seed, biases, catalogDir, 0, 0, 0)
}

// InitWithCacheSizes is Init with explicit cache capacities for the
// Voronoi-center, biome-lookup, and height-lookup caches; a non-positive
// size falls back to worldcache's default for that cache.
func InitWithCacheSizes(seed int64, biases Biases, catalogDir string, voronoiCacheSize, biomeCacheSize, heightCacheSize int) (*Core, error) {
	catalog, err := biome.Load(catalogDir)
	if err != nil {
		return nil, fmt.Errorf("core: init: %w", err)
	}

	log.Printf("core: loaded %d biomes from %s", catalog.Count(), catalogDir)

	for _, d := range catalog.All() {
		d.TreeTemplates = trees.GenerateTemplates(seed, d)
	}

	climateField := climate.New(seed, biases.Temperature, biases.Moisture)
	voronoiField := voronoi.New(seed, catalog, voronoiCacheSize)
	terrainEngine := terrain.New(seed, catalog, climateField, biases.Age, biomeCacheSize, heightCacheSize)

	c := &Core{
		seed:    seed,
		biases:  biases,
		catalog: catalog,
		climate: climateField,
		voronoi: voronoiField,
		terrain: terrainEngine,
	}
	c.caveField = cave.New(seed, c.HeightAt)

	return c, nil
}

// FromConfig builds a Core from a loaded configuration, wiring its cache
// sizes through.
func FromConfig(cfg *config.Config) (*Core, error) {
	return InitWithCacheSizes(
		cfg.World.Seed,
		Biases{Temperature: cfg.World.TemperatureBias, Moisture: cfg.World.MoistureBias, Age: cfg.World.AgeBias},
		cfg.World.CatalogDir,
		cfg.Cache.VoronoiCenters,
		cfg.Cache.BiomeLookups,
		cfg.Cache.HeightLookups,
	)
}

// Catalog exposes the read-only biome catalog this world was built from.
func (c *Core) Catalog() *biome.Catalog { return c.catalog }

// BiomeAt returns the dominant biome at a surface position.
func (c *Core) BiomeAt(worldX, worldZ float64) *biome.Descriptor {
	return c.terrain.BiomeAt(worldX, worldZ)
}

// TemperatureAt returns the climate temperature at a surface position, in
// [0, 100].
func (c *Core) TemperatureAt(worldX, worldZ float64) float64 {
	tmin, tmax := c.catalog.TemperatureRange()
	return c.climate.TemperatureAt(worldX, worldZ, tmin, tmax)
}

// MoistureAt returns the climate moisture at a surface position, in
// [0, 100].
func (c *Core) MoistureAt(worldX, worldZ float64) float64 {
	mmin, mmax := c.catalog.MoistureRange()
	return c.climate.MoistureAt(worldX, worldZ, mmin, mmax)
}

// HeightAt returns the world-space surface Y at (worldX, worldZ).
func (c *Core) HeightAt(worldX, worldZ float64) int {
	return c.terrain.HeightAt(worldX, worldZ)
}

// InfluencesAt returns the normalized per-biome blend weights at a surface
// position.
func (c *Core) InfluencesAt(worldX, worldZ float64) []influence.Weighted {
	return influence.At(c.voronoi, worldX, worldZ)
}

// Influences3DAt is InfluencesAt additionally modulated by altitude, via
// TemperatureAltitudeModifier.
func (c *Core) Influences3DAt(worldX, worldY, worldZ float64) []influence.Weighted {
	return influence.At3D(c.voronoi, worldX, worldY, worldZ, func(d *biome.Descriptor, y float64) float64 {
		return terrain.TemperatureAltitudeModifier(int(y))
	})
}

// CaveDensityAt returns the combined cave density at a position, in
// [0, 1]; values below 0.45 mean air.
func (c *Core) CaveDensityAt(worldX, worldY, worldZ float64) float64 {
	return c.caveField.DensityAt(worldX, worldY, worldZ)
}

// IsUndergroundBiomeAt reports whether an underground biome pocket occupies
// this position.
func (c *Core) IsUndergroundBiomeAt(worldX, worldY, worldZ float64) bool {
	return c.caveField.IsUndergroundBiomeAt(worldX, worldY, worldZ)
}

// TemperatureAltitudeModifier returns the non-negative altitude-driven
// temperature falloff at a world-space Y.
func (c *Core) TemperatureAltitudeModifier(y int) float64 {
	return terrain.TemperatureAltitudeModifier(y)
}

// ShouldApplySnow reports whether the surface block at (worldX, worldY,
// worldZ) should render snow: the altitude-adjusted temperature at that
// position must fall below the snow threshold.
func (c *Core) ShouldApplySnow(worldX, worldY, worldZ float64) bool {
	return terrain.ShouldApplySnow(c.TemperatureAt(worldX, worldZ), int(worldY))
}

// GenerateTreeTemplates regenerates the tree template set for a single
// biome. Init already calls this once per biome at startup; exposed for
// callers that hot-reload a single biome definition.
func (c *Core) GenerateTreeTemplates(d *biome.Descriptor) []biome.TreeTemplate {
	templates := trees.GenerateTemplates(c.seed, d)
	d.TreeTemplates = templates
	return templates
}

// PlaceTree picks one of d's templates at random and attempts to place it
// rooted at (x, y, z), returning false without writing anything if the
// template doesn't fit.
func (c *Core) PlaceTree(w trees.World, x, y, z int, d *biome.Descriptor) bool {
	if len(d.TreeTemplates) == 0 {
		return false
	}
	rng := rand.New(rand.NewSource(c.seed ^ int64(x)<<32 ^ int64(z)))
	tmpl := d.TreeTemplates[rng.Intn(len(d.TreeTemplates))]
	return trees.PlaceTree(w, x, y, z, tmpl)
}
