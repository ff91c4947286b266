package biome

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()
	writeBiomeFile(t, dir, "plains.yaml", `
name: Plains
temperature: 50
moisture: 40
age: 20
activity: 10
`)
	writeBiomeFile(t, dir, "desert.yaml", `
name: Desert
temperature: 85
moisture: 10
age: 40
activity: 5
`)
	writeBiomeFile(t, dir, "tundra.yaml", `
name: Tundra
temperature: 5
moisture: 30
age: 60
activity: 2
`)
	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func TestSelectPerfectMatch(t *testing.T) {
	cat := testCatalog(t)
	got := Select(cat, 50, 40)
	if got.Name != "plains" {
		t.Errorf("Select(50,40) = %s, want plains", got.Name)
	}
}

func TestSelectWithinToleranceButNotPerfect(t *testing.T) {
	cat := testCatalog(t)
	got := Select(cat, 53, 45)
	if got.Name != "plains" {
		t.Errorf("Select(53,45) = %s, want plains (nearest within tolerance)", got.Name)
	}
}

func TestSelectFallsBackBeyondTolerance(t *testing.T) {
	cat := testCatalog(t)
	// (65, 25): distance to plains = 15+15=30, desert = 20+15=35, tundra = 60+5=65.
	// None within Tolerance=12, so Select must fall back to the closest overall: plains.
	got := Select(cat, 65, 25)
	if got.Name != "plains" {
		t.Errorf("Select(65,25) = %s, want plains (fallback to closest)", got.Name)
	}
}

func TestSelectNeverReturnsNilForNonEmptyCatalog(t *testing.T) {
	cat := testCatalog(t)
	for _, point := range [][2]int{{0, 0}, {100, 100}, {50, 0}, {0, 100}} {
		if got := Select(cat, point[0], point[1]); got == nil {
			t.Errorf("Select(%d,%d) = nil, want a biome", point[0], point[1])
		}
	}
}

func TestSelectPrefersHigherRarityWeightWithinTolerance(t *testing.T) {
	dir := t.TempDir()
	writeBiomeFile(t, dir, "common.yaml", `
name: Common
temperature: 50
moisture: 40
age: 20
activity: 10
rarity_weight: 20
`)
	writeBiomeFile(t, dir, "rare.yaml", `
name: Rare
temperature: 54
moisture: 44
age: 20
activity: 10
rarity_weight: 90
`)
	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// At (52,42), both biomes sit at Manhattan distance 4 (common:
	// |52-50|+|42-40|=4, rare: |52-54|+|42-44|=4), so they'd tie on raw
	// distance, but rare's much higher rarity_weight must win on weight.
	got := Select(cat, 52, 42)
	if got.Name != "rare" {
		t.Errorf("Select(52,42) = %s, want rare (higher rarity_weight wins on weight at equal distance)", got.Name)
	}
}
