package climate

import "testing"

func TestTemperatureWithinRange(t *testing.T) {
	f := New(12345, 0, 0)
	for _, pt := range [][2]float64{{0, 0}, {1000, -1000}, {-5000, 5000}, {123456, -654321}} {
		v := f.TemperatureAt(pt[0], pt[1], 0, 100)
		if v < 0 || v > 100 {
			t.Errorf("TemperatureAt(%v) = %f, want in [0,100]", pt, v)
		}
	}
}

func TestMoistureWithinRange(t *testing.T) {
	f := New(12345, 0, 0)
	for _, pt := range [][2]float64{{0, 0}, {1000, -1000}, {-5000, 5000}} {
		v := f.MoistureAt(pt[0], pt[1], 0, 100)
		if v < 0 || v > 100 {
			t.Errorf("MoistureAt(%v) = %f, want in [0,100]", pt, v)
		}
	}
}

func TestClimateDeterminism(t *testing.T) {
	f1 := New(999, 0.1, -0.2)
	f2 := New(999, 0.1, -0.2)
	for _, pt := range [][2]float64{{50, 50}, {-200, 300}} {
		if f1.TemperatureAt(pt[0], pt[1], 0, 100) != f2.TemperatureAt(pt[0], pt[1], 0, 100) {
			t.Errorf("temperature not deterministic at %v", pt)
		}
		if f1.MoistureAt(pt[0], pt[1], 0, 100) != f2.MoistureAt(pt[0], pt[1], 0, 100) {
			t.Errorf("moisture not deterministic at %v", pt)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	f1 := New(1, 0, 0)
	f2 := New(2, 0, 0)
	differences := 0
	for x := 0; x < 20; x++ {
		for z := 0; z < 20; z++ {
			wx, wz := float64(x*500), float64(z*500)
			if f1.TemperatureAt(wx, wz, 0, 100) != f2.TemperatureAt(wx, wz, 0, 100) {
				differences++
			}
		}
	}
	if differences == 0 {
		t.Error("expected different seeds to produce different temperature fields")
	}
}

func TestBiasShiftsTemperature(t *testing.T) {
	cold := New(42, -1, 0)
	hot := New(42, 1, 0)
	coldSum, hotSum := 0.0, 0.0
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			wx, wz := float64(x*700), float64(z*700)
			coldSum += cold.TemperatureAt(wx, wz, 0, 100)
			hotSum += hot.TemperatureAt(wx, wz, 0, 100)
		}
	}
	if hotSum <= coldSum {
		t.Errorf("positive temperature bias should raise average temperature: cold=%f hot=%f", coldSum, hotSum)
	}
}

func TestMapNoiseToRange(t *testing.T) {
	if got := mapNoiseToRange(-1, 10, 90); got != 10 {
		t.Errorf("mapNoiseToRange(-1,10,90) = %f, want 10", got)
	}
	if got := mapNoiseToRange(1, 10, 90); got != 90 {
		t.Errorf("mapNoiseToRange(1,10,90) = %f, want 90", got)
	}
	if got := mapNoiseToRange(0, 10, 90); got != 50 {
		t.Errorf("mapNoiseToRange(0,10,90) = %f, want 50", got)
	}
}
