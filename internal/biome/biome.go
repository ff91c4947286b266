// Package biome defines the biome descriptor (§3) and the read-only catalog
// that owns the loaded set of biomes (C3), plus the dominant-biome selector
// (C4).
package biome

import "github.com/Natfii/voxelbiome/internal/falloff"

// SpawnLocation mirrors the original's BiomeSpawnLocation tagged enum.
type SpawnLocation int

const (
	Underground SpawnLocation = iota
	AboveGround
	Both
)

// ParseSpawnLocation parses a config string, defaulting to AboveGround.
func ParseSpawnLocation(s string) SpawnLocation {
	switch s {
	case "underground", "Underground":
		return Underground
	case "both", "Both":
		return Both
	default:
		return AboveGround
	}
}

// OreSpawnRate is an opaque per-biome ore multiplier, carried through for a
// downstream block/ore registry to interpret; the core never reads it.
type OreSpawnRate struct {
	Ore        string  `yaml:"ore"`
	Multiplier float64 `yaml:"multiplier"`
}

// Descriptor is a single loaded biome, carrying every field §3 names an
// implementer must keep.
type Descriptor struct {
	// Identity
	Name  string `yaml:"name"`
	Index int    `yaml:"-"` // assigned by the catalog at load time

	// Climate
	Temperature    int `yaml:"temperature"`
	Moisture       int `yaml:"moisture"`
	TemperatureMin int `yaml:"temperature_min"`
	TemperatureMax int `yaml:"temperature_max"`

	// Terrain shape
	Age                int     `yaml:"age"`
	Activity           int     `yaml:"activity"`
	HeightMultiplier   float64 `yaml:"height_multiplier"`
	BaseHeightOffset   int     `yaml:"base_height_offset"`
	TerrainOctaves     int     `yaml:"terrain_octaves"`
	TerrainLacunarity  float64 `yaml:"terrain_lacunarity"`
	TerrainGain        float64 `yaml:"terrain_gain"`
	TerrainRoughness   int     `yaml:"terrain_roughness"` // -1 sentinel: use age

	// Spawning
	SpawnLocation SpawnLocation `yaml:"-"`
	SpawnLocStr   string        `yaml:"spawn_location"`
	RarityWeight  int           `yaml:"rarity_weight"`

	// Vegetation
	TreesSpawn         bool `yaml:"trees_spawn"`
	TreeDensity        int  `yaml:"tree_density"`
	VegetationDensity  int  `yaml:"vegetation_density"`

	// Block handles (opaque to the core, consumed by the block registry)
	PrimarySurfaceBlock int `yaml:"primary_surface_block"`
	PrimaryStoneBlock   int `yaml:"primary_stone_block"`
	PrimaryLogBlock     int `yaml:"primary_log_block"`
	PrimaryLeavesBlock  int `yaml:"primary_leaves_block"`

	OreSpawnRates []OreSpawnRate `yaml:"ore_spawn_rates"`

	// Influence blending
	FalloffPreset string         `yaml:"falloff_preset"`
	Falloff       falloff.Config `yaml:"falloff"`

	// Tree templates, generated once at startup by the trees package (C10),
	// not loaded from file.
	TreeTemplates []TreeTemplate `yaml:"-"`
}

// TreeTemplate is defined here (rather than in package trees) so biome can
// hold it without an import cycle; package trees builds values of this
// type.
type TreeTemplate struct {
	Name   string
	Height int
	Blocks []TreeBlock
}

// TreeBlock is one voxel of a tree template, relative to the tree's base.
type TreeBlock struct {
	DX, DY, DZ int
	BlockID    int
}

// EffectiveTemperatureRange returns (min, max), applying the §3 "defaults to
// center ± 10" rule when TemperatureMin/Max are the -1 sentinel.
func (d Descriptor) EffectiveTemperatureRange() (min, max int) {
	min = d.TemperatureMin
	if min < 0 {
		min = d.Temperature - 10
		if min < 0 {
			min = 0
		}
	}
	max = d.TemperatureMax
	if max < 0 {
		max = d.Temperature + 10
		if max > 100 {
			max = 100
		}
	}
	return
}

// EffectiveFalloff resolves the biome's falloff configuration: a
// FalloffPreset naming a known preset wins; otherwise the explicit Falloff
// config is returned, whose zero fields falloff.Weight fills with the
// package defaults.
func (d Descriptor) EffectiveFalloff() falloff.Config {
	if d.FalloffPreset != "" {
		if cfg, ok := falloff.Presets[d.FalloffPreset]; ok {
			return cfg
		}
	}
	return d.Falloff
}
