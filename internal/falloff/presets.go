package falloff

// Named presets ported from the original engine's predefined
// BiomeFalloffConfig constants, so a biome file can reference one by name
// (e.g. falloff_preset: mountain) instead of spelling out every field.

// PresetNatural suits common biomes (forests, plains): smooth, wide
// transitions.
var PresetNatural = Config{
	Type:                Smootherstep,
	Sharpness:           1.0,
	BlendDistance:       18,
	SearchRadius:        28,
	ExponentialFactor:   -3.0,
	InfluenceMultiplier: 1.0,
	EdgeSoftness:        1.2,
}

// PresetMountain gives mountain biomes gentler, wider falloff so ranges
// read as prominent rather than sharply bounded.
var PresetMountain = Config{
	Type:                Gaussian,
	Sharpness:           0.7,
	BlendDistance:       25,
	SearchRadius:        40,
	ExponentialFactor:   -2.5,
	InfluenceMultiplier: 1.2,
	EdgeSoftness:        1.5,
}

// PresetDesert gives desert biomes sharper, narrower boundaries.
var PresetDesert = Config{
	Type:                Polynomial3,
	Sharpness:           1.5,
	BlendDistance:       12,
	SearchRadius:        20,
	ExponentialFactor:   -4.0,
	InfluenceMultiplier: 1.0,
	EdgeSoftness:        0.8,
}

// PresetOcean gives water biomes very smooth, very wide transitions.
var PresetOcean = Config{
	Type:                Cosine,
	Sharpness:           0.8,
	BlendDistance:       30,
	SearchRadius:        50,
	ExponentialFactor:   -2.0,
	InfluenceMultiplier: 1.3,
	EdgeSoftness:        2.0,
}

// PresetRare suits uncommon/special biomes: moderately sharp, narrow
// transitions so rarity reads as geographically contained.
var PresetRare = Config{
	Type:                Sigmoid,
	Sharpness:           1.2,
	BlendDistance:       10,
	SearchRadius:        18,
	ExponentialFactor:   -3.5,
	InfluenceMultiplier: 0.7,
	EdgeSoftness:        0.9,
}

// PresetCave suits underground biomes: sharp, contained transitions.
var PresetCave = Config{
	Type:                InverseSquare,
	Sharpness:           1.8,
	BlendDistance:       8,
	SearchRadius:        15,
	ExponentialFactor:   -5.0,
	InfluenceMultiplier: 0.9,
	EdgeSoftness:        0.7,
}

// Presets maps a config-file preset name to its Config, for YAML
// falloff_preset: <name> fields.
var Presets = map[string]Config{
	"natural":  PresetNatural,
	"mountain": PresetMountain,
	"desert":   PresetDesert,
	"ocean":    PresetOcean,
	"rare":     PresetRare,
	"cave":     PresetCave,
}
