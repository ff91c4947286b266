package terrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/climate"
)

func testCatalog(t *testing.T) *biome.Catalog {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	write("plains.yaml", "name: Plains\ntemperature: 50\nmoisture: 40\nage: 70\nactivity: 10\nheight_multiplier: 1.0\n")
	write("mountain.yaml", "name: Mountain\ntemperature: 30\nmoisture: 50\nage: 10\nactivity: 80\nheight_multiplier: 2.0\n")

	cat, err := biome.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func newEngine(t *testing.T, seed int64, ageBias float64) *Engine {
	t.Helper()
	cat := testCatalog(t)
	cf := climate.New(seed, 0, 0)
	return New(seed, cat, cf, ageBias, 0, 0)
}

func TestHeightAtDeterministic(t *testing.T) {
	e1 := newEngine(t, 12345, 0)
	e2 := newEngine(t, 12345, 0)
	for _, pt := range [][2]float64{{0, 0}, {1000, -500}, {-2000, 2000}} {
		if e1.HeightAt(pt[0], pt[1]) != e2.HeightAt(pt[0], pt[1]) {
			t.Errorf("HeightAt(%v) not deterministic", pt)
		}
	}
}

func TestHeightAtUsesCache(t *testing.T) {
	e := newEngine(t, 7, 0)
	h1 := e.HeightAt(128, 256)
	h2 := e.HeightAt(128, 256)
	if h1 != h2 {
		t.Errorf("cached HeightAt changed between calls: %d vs %d", h1, h2)
	}
	if e.heightCache.Len() == 0 {
		t.Error("expected heightCache to have an entry after HeightAt")
	}
}

func TestMountainSizeScalingBounds(t *testing.T) {
	e := newEngine(t, 1, 0)
	scaling := e.mountainSizeScaling(0, 0)
	if scaling < 0.5 || scaling > 2.0 {
		t.Errorf("mountainSizeScaling = %f, want in [0.5, 2.0]", scaling)
	}
}

func TestAgeBiasIncreasesVariationTowardZero(t *testing.T) {
	flatter := newEngine(t, 55, -1) // subtracting ageBias=-1 pushes ageNormalized toward 1 -> less variation
	rougher := newEngine(t, 55, 1)  // subtracting ageBias=1 pushes ageNormalized toward 0 -> more variation

	flatSpread, roughSpread := 0, 0
	prevFlat, prevRough := flatter.HeightAt(0, 0), rougher.HeightAt(0, 0)
	for i := 1; i < 30; i++ {
		x := float64(i * 40)
		hf := flatter.HeightAt(x, 0)
		hr := rougher.HeightAt(x, 0)
		flatSpread += absInt(hf - prevFlat)
		roughSpread += absInt(hr - prevRough)
		prevFlat, prevRough = hf, hr
	}
	if roughSpread < flatSpread {
		t.Errorf("ageBias=1 should produce more height variation than ageBias=-1: flat=%d rough=%d", flatSpread, roughSpread)
	}
}

func TestTemperatureAltitudeModifierNonNegative(t *testing.T) {
	if TemperatureAltitudeModifier(0) != 0 {
		t.Error("expected no modifier at or below snow line")
	}
	if TemperatureAltitudeModifier(SnowLine) != 0 {
		t.Error("expected no modifier at the snow line")
	}
	if got := TemperatureAltitudeModifier(SnowLine + 100); got <= 0 {
		t.Errorf("expected a positive cooling drop above the snow line, got %v", got)
	}
	if got := TemperatureAltitudeModifier(SnowLine + 100); got != 6 {
		t.Errorf("drop at 100 blocks above the snow line = %v, want 6 (100*0.06)", got)
	}
}

func TestShouldApplySnowAboveLineColdOnly(t *testing.T) {
	if !ShouldApplySnow(10, SnowLine+1) {
		t.Error("expected snow above snow line at cold temperature")
	}
	if ShouldApplySnow(90, SnowLine+1) {
		t.Error("expected no snow above snow line at hot temperature")
	}
	if !ShouldApplySnow(14.9, 0) {
		t.Error("expected snow at sea level whenever raw temperature already falls below the threshold")
	}
	if ShouldApplySnow(20, 0) {
		t.Error("expected no snow at sea level with a temperature well above the threshold")
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
