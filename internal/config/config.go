package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	World  WorldConfig  `yaml:"world"`
	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
	Dev    DevConfig    `yaml:"dev"`
}

// WorldConfig seeds generation and biases it away from raw noise output.
// Biases are each clamped to [-1, 1] after load.
type WorldConfig struct {
	Seed            int64   `yaml:"seed"`
	TemperatureBias float64 `yaml:"temperature_bias"`
	MoistureBias    float64 `yaml:"moisture_bias"`
	AgeBias         float64 `yaml:"age_bias"`
	CatalogDir      string  `yaml:"catalog_dir"`
}

// CacheConfig sizes the bounded caches backing the voronoi and terrain
// engines. A zero value falls back to Default()'s size at Load time.
type CacheConfig struct {
	VoronoiCenters int `yaml:"voronoi_centers"`
	BiomeLookups   int `yaml:"biome_lookups"`
	HeightLookups  int `yaml:"height_lookups"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DevConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.World.TemperatureBias = clamp(cfg.World.TemperatureBias, -1, 1)
	cfg.World.MoistureBias = clamp(cfg.World.MoistureBias, -1, 1)
	cfg.World.AgeBias = clamp(cfg.World.AgeBias, -1, 1)

	def := Default()
	if cfg.World.CatalogDir == "" {
		cfg.World.CatalogDir = def.World.CatalogDir
	}
	if cfg.Cache.VoronoiCenters == 0 {
		cfg.Cache.VoronoiCenters = def.Cache.VoronoiCenters
	}
	if cfg.Cache.BiomeLookups == 0 {
		cfg.Cache.BiomeLookups = def.Cache.BiomeLookups
	}
	if cfg.Cache.HeightLookups == 0 {
		cfg.Cache.HeightLookups = def.Cache.HeightLookups
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = def.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}

	return cfg, nil
}

func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:            12345,
			TemperatureBias: 0,
			MoistureBias:    0,
			AgeBias:         0,
			CatalogDir:      "assets/biomes",
		},
		Cache: CacheConfig{
			VoronoiCenters: 20_000,
			BiomeLookups:   100_000,
			HeightLookups:  100_000,
		},
		Server: ServerConfig{
			Port: 8089,
			Host: "127.0.0.1",
		},
		Dev: DevConfig{
			Enabled: false,
		},
	}
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
