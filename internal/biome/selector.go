package biome

// Tolerance is the Manhattan-distance slack, per §4.4: a biome whose
// temperature and moisture differences from the sample point sum to at most
// Tolerance is eligible, and within 1 on both axes short-circuits the
// search entirely.
const Tolerance = 12

// Select implements C4: the dominant-biome selection at a climate point,
// following the original's selectDominantBiome five-step procedure —
// Manhattan distance, perfect-match early exit, max-weight-within-tolerance
// (§4.4 step 3: `proximity = 1 - dist/(2*Tolerance)`, `weight = proximity *
// (rarity_weight/50)`), and a catalog-wide fallback when nothing qualifies.
func Select(cat *Catalog, temperature, moisture int) *Descriptor {
	var best *Descriptor
	bestWeight := -1.0

	for _, d := range cat.byIndex {
		dt := abs(temperature - d.Temperature)
		dm := abs(moisture - d.Moisture)

		if dt <= 1 && dm <= 1 {
			return d // perfect match, stop searching immediately
		}

		dist := dt + dm
		if dist > Tolerance {
			continue
		}

		weight := weightFor(d, dist)
		if best == nil || weight > bestWeight {
			best = d
			bestWeight = weight
		}
	}

	if best != nil {
		return best
	}

	return closest(cat, temperature, moisture)
}

// weightFor computes §4.4 step 3's proximity weight for a biome already
// known to be within Tolerance of the sample point.
func weightFor(d *Descriptor, dist int) float64 {
	proximity := 1.0 - float64(dist)/(2.0*float64(Tolerance))
	return proximity * (float64(d.RarityWeight) / 50.0)
}

// closest falls back to the catalog-wide nearest biome by Manhattan
// distance, ignoring Tolerance, so Select always returns a non-nil biome
// for a non-empty catalog.
func closest(cat *Catalog, temperature, moisture int) *Descriptor {
	var best *Descriptor
	bestDist := -1
	for _, d := range cat.byIndex {
		dist := abs(temperature-d.Temperature) + abs(moisture-d.Moisture)
		if best == nil || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
