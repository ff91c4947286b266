package influence

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Natfii/voxelbiome/internal/biome"
	"github.com/Natfii/voxelbiome/internal/voronoi"
)

func testCatalog(t *testing.T) *biome.Catalog {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	write("plains.yaml", "name: Plains\ntemperature: 50\nmoisture: 40\nage: 20\nactivity: 10\nfalloff_preset: natural\n")
	write("desert.yaml", "name: Desert\ntemperature: 85\nmoisture: 10\nage: 40\nactivity: 5\nfalloff_preset: desert\n")
	write("mountain.yaml", "name: Mountain\ntemperature: 30\nmoisture: 50\nage: 80\nactivity: 60\nfalloff_preset: mountain\n")
	write("ocean.yaml", "name: Ocean\ntemperature: 55\nmoisture: 95\nage: 5\nactivity: 0\nfalloff_preset: ocean\n")

	cat, err := biome.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func TestAtNormalizesToOne(t *testing.T) {
	cat := testCatalog(t)
	field := voronoi.New(12345, cat, 0)

	for _, pt := range [][2]float64{{0, 0}, {500, 500}, {-1200, 800}, {3000, -3000}} {
		weights := At(field, pt[0], pt[1])
		if len(weights) == 0 {
			t.Fatalf("At(%v) returned no weights", pt)
		}
		sum := SumWeights(weights)
		if math.Abs(sum-1.0) > 1e-3 {
			t.Errorf("At(%v) weights sum to %f, want ~1.0", pt, sum)
		}
		for _, w := range weights {
			if w.Weight < 0 {
				t.Errorf("At(%v) has negative weight %f for %s", pt, w.Weight, w.Biome.Name)
			}
		}
	}
}

func TestAtDeterminism(t *testing.T) {
	cat := testCatalog(t)
	f1 := voronoi.New(42, cat, 0)
	f2 := voronoi.New(42, cat, 0)

	w1 := At(f1, 777, -333)
	w2 := At(f2, 777, -333)

	if len(w1) != len(w2) {
		t.Fatalf("different result lengths: %d vs %d", len(w1), len(w2))
	}
	for i := range w1 {
		if w1[i].Biome.Name != w2[i].Biome.Name || w1[i].Weight != w2[i].Weight {
			t.Errorf("mismatch at %d: %+v vs %+v", i, w1[i], w2[i])
		}
	}
}

func TestDominantPicksHighestWeight(t *testing.T) {
	weights := []Weighted{
		{Biome: &biome.Descriptor{Name: "a"}, Weight: 0.2},
		{Biome: &biome.Descriptor{Name: "b"}, Weight: 0.7},
		{Biome: &biome.Descriptor{Name: "c"}, Weight: 0.1},
	}
	got := Dominant(weights)
	if got == nil || got.Name != "b" {
		t.Errorf("Dominant() = %v, want b", got)
	}
}

func TestDominantEmptyIsNil(t *testing.T) {
	if Dominant(nil) != nil {
		t.Error("Dominant(nil) should be nil")
	}
}

func TestAt3DAltitudeRenormalizes(t *testing.T) {
	cat := testCatalog(t)
	field := voronoi.New(9, cat, 0)

	flat := func(d *biome.Descriptor, y float64) float64 { return 1.0 }
	weights := At3D(field, 100, 64, 100, flat)
	if len(weights) == 0 {
		t.Fatal("expected non-empty blend")
	}
	sum := SumWeights(weights)
	if math.Abs(sum-1.0) > 1e-3 {
		t.Errorf("At3D weights sum to %f, want ~1.0", sum)
	}
}
