package biome

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Natfii/voxelbiome/internal/falloff"
)

// ErrEmptyCatalog is returned by Load when no valid biome file was found in
// the directory — per §7, this is fatal, and the caller must refuse to
// initialize the world.
var ErrEmptyCatalog = errors.New("biome: catalog is empty after load")

// rawFile mirrors the on-disk YAML shape; required keys are validated after
// unmarshal since yaml.v3 doesn't enforce presence on its own.
type rawFile struct {
	Name           string  `yaml:"name"`
	Temperature    *int    `yaml:"temperature"`
	Moisture       *int    `yaml:"moisture"`
	Age            *int    `yaml:"age"`
	Activity       *int    `yaml:"activity"`
	TemperatureMin int     `yaml:"temperature_min"`
	TemperatureMax int     `yaml:"temperature_max"`

	SpawnLocation string `yaml:"spawn_location"`
	RarityWeight  int    `yaml:"rarity_weight"`

	HeightMultiplier  float64 `yaml:"height_multiplier"`
	BaseHeightOffset  int     `yaml:"base_height_offset"`
	TerrainOctaves    int     `yaml:"terrain_octaves"`
	TerrainLacunarity float64 `yaml:"terrain_lacunarity"`
	TerrainGain       float64 `yaml:"terrain_gain"`
	TerrainRoughness  int     `yaml:"terrain_roughness"`

	TreesSpawn        *bool `yaml:"trees_spawn"`
	TreeDensity       int   `yaml:"tree_density"`
	VegetationDensity int   `yaml:"vegetation_density"`

	PrimarySurfaceBlock int `yaml:"primary_surface_block"`
	PrimaryStoneBlock   int `yaml:"primary_stone_block"`
	PrimaryLogBlock     int `yaml:"primary_log_block"`
	PrimaryLeavesBlock  int `yaml:"primary_leaves_block"`

	OreSpawnRates []OreSpawnRate `yaml:"ore_spawn_rates"`

	FalloffPreset string         `yaml:"falloff_preset"`
	Falloff       falloff.Config `yaml:"falloff"`
}

// Catalog is the read-only, in-memory biome registry (C3). Safe for
// concurrent reads from many goroutines once Load returns successfully; it
// is never mutated afterwards.
type Catalog struct {
	byIndex []*Descriptor
	byName  map[string]*Descriptor
}

// Count returns the number of loaded biomes.
func (c *Catalog) Count() int { return len(c.byIndex) }

// All returns every loaded biome, in load order.
func (c *Catalog) All() []*Descriptor { return c.byIndex }

// GetByName looks up a biome by its normalized name, case-insensitively.
func (c *Catalog) GetByName(name string) (*Descriptor, bool) {
	d, ok := c.byName[normalizeName(name)]
	return d, ok
}

// GetByIndex looks up a biome by its load-order index.
func (c *Catalog) GetByIndex(i int) (*Descriptor, bool) {
	if i < 0 || i >= len(c.byIndex) {
		return nil, false
	}
	return c.byIndex[i], true
}

// InRange returns every biome whose climate ranges intersect
// [tmin,tmax] x [mmin,mmax].
func (c *Catalog) InRange(tmin, tmax, mmin, mmax int) []*Descriptor {
	var out []*Descriptor
	for _, d := range c.byIndex {
		dtmin, dtmax := d.EffectiveTemperatureRange()
		if dtmax < tmin || dtmin > tmax {
			continue
		}
		if d.Moisture+10 < mmin || d.Moisture-10 > mmax {
			continue
		}
		out = append(out, d)
	}
	return out
}

// TemperatureRange returns the [min,max] span of Temperature across every
// loaded biome, used to affine-map climate noise (§4.2).
func (c *Catalog) TemperatureRange() (min, max int) {
	return spanOf(c.byIndex, func(d *Descriptor) int { return d.Temperature })
}

// MoistureRange is the moisture counterpart of TemperatureRange.
func (c *Catalog) MoistureRange() (min, max int) {
	return spanOf(c.byIndex, func(d *Descriptor) int { return d.Moisture })
}

func spanOf(ds []*Descriptor, field func(*Descriptor) int) (min, max int) {
	if len(ds) == 0 {
		return 0, 100
	}
	min, max = field(ds[0]), field(ds[0])
	for _, d := range ds[1:] {
		v := field(d)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

// Load reads every *.yaml/*.yml file in dir as a biome descriptor. A
// malformed single file is logged and skipped (BiomeFileError policy); the
// whole catalog only fails if nothing valid was found.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("biome: reading catalog dir %q: %w", dir, err)
	}

	cat := &Catalog{byName: make(map[string]*Descriptor)}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names) // deterministic load order across platforms

	for _, name := range names {
		path := filepath.Join(dir, name)
		d, err := loadOne(path)
		if err != nil {
			log.Printf("biome: skipping %s: %v", path, err)
			continue
		}
		key := normalizeName(d.Name)
		if _, exists := cat.byName[key]; exists {
			log.Printf("biome: skipping %s: name collision on %q", path, key)
			continue
		}
		d.Name = key
		d.Index = len(cat.byIndex)
		cat.byIndex = append(cat.byIndex, d)
		cat.byName[key] = d
	}

	if len(cat.byIndex) == 0 {
		return nil, ErrEmptyCatalog
	}
	return cat, nil
}

func loadOne(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	if raw.Name == "" {
		return nil, errors.New("missing required field: name")
	}
	if raw.Temperature == nil || raw.Moisture == nil || raw.Age == nil || raw.Activity == nil {
		return nil, errors.New("missing required field: temperature, moisture, age, or activity")
	}

	d := &Descriptor{
		Name:                normalizeName(raw.Name),
		Temperature:         clampInt(*raw.Temperature, 0, 100),
		Moisture:            clampInt(*raw.Moisture, 0, 100),
		TemperatureMin:      raw.TemperatureMin,
		TemperatureMax:      raw.TemperatureMax,
		Age:                 clampInt(*raw.Age, 0, 100),
		Activity:            clampInt(*raw.Activity, 0, 100),
		SpawnLocStr:         raw.SpawnLocation,
		SpawnLocation:       ParseSpawnLocation(raw.SpawnLocation),
		RarityWeight:        clampInt(orDefault(raw.RarityWeight, 50), 1, 100),
		HeightMultiplier:    orDefaultF(raw.HeightMultiplier, 1.0),
		BaseHeightOffset:    raw.BaseHeightOffset,
		TerrainOctaves:      clampInt(orDefault(raw.TerrainOctaves, 5), 1, 16),
		TerrainLacunarity:   orDefaultF(raw.TerrainLacunarity, 2.0),
		TerrainGain:         orDefaultF(raw.TerrainGain, 0.5),
		TerrainRoughness:    raw.TerrainRoughness,
		TreesSpawn:          raw.TreesSpawn == nil || *raw.TreesSpawn,
		TreeDensity:         clampInt(orDefault(raw.TreeDensity, 50), 0, 100),
		VegetationDensity:   clampInt(orDefault(raw.VegetationDensity, 50), 0, 100),
		PrimarySurfaceBlock: orDefault(raw.PrimarySurfaceBlock, 3),
		PrimaryStoneBlock:   orDefault(raw.PrimaryStoneBlock, 1),
		PrimaryLogBlock:     raw.PrimaryLogBlock,
		PrimaryLeavesBlock:  raw.PrimaryLeavesBlock,
		OreSpawnRates:       raw.OreSpawnRates,
		FalloffPreset:       raw.FalloffPreset,
		Falloff:             raw.Falloff,
	}
	if raw.TemperatureMin == 0 {
		d.TemperatureMin = -1
	}
	if raw.TemperatureMax == 0 {
		d.TemperatureMax = -1
	}

	tmin, tmax := d.EffectiveTemperatureRange()
	if tmin > d.Temperature || d.Temperature > tmax {
		return nil, fmt.Errorf("temperature %d outside [%d,%d]", d.Temperature, tmin, tmax)
	}

	return d, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultF(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var nameCaser = cases.Lower(language.Und)

// normalizeName lowercases and replaces whitespace/hyphens with underscores,
// per §3: "normalized to lowercase with underscores".
func normalizeName(name string) string {
	name = nameCaser.String(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	return strings.Join(strings.Fields(name), "_")
}
