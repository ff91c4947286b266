package noise

import "testing"

func TestGradientEval2Range(t *testing.T) {
	g := NewGradient(12345)
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			v := g.Eval2(float64(x), float64(z))
			if v < -1.001 || v > 1.001 {
				t.Fatalf("Eval2(%d,%d) = %f out of [-1,1]", x, z, v)
			}
		}
	}
}

func TestGradientFBm2Range(t *testing.T) {
	g := NewGradient(12345)
	p := DefaultFBmParams(5, 0.015)
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			v := g.FBm2(float64(x)*13.1, float64(z)*7.7, p)
			if v < -1.001 || v > 1.001 {
				t.Fatalf("FBm2(%d,%d) = %f out of [-1,1]", x, z, v)
			}
		}
	}
}

func TestGradientDeterminism(t *testing.T) {
	a := NewGradient(999)
	b := NewGradient(999)
	p := DefaultFBmParams(4, 0.02)

	for i := 0; i < 20; i++ {
		x, z := float64(i)*37.0-500, float64(i)*11.0-500
		if a.FBm2(x, z, p) != b.FBm2(x, z, p) {
			t.Fatalf("same seed produced different FBm2 values at (%f,%f)", x, z)
		}
		if a.FBm3(x, 5, z, p) != b.FBm3(x, 5, z, p) {
			t.Fatalf("same seed produced different FBm3 values at (%f,%f)", x, z)
		}
	}
}

func TestCellularDistanceOrdering(t *testing.T) {
	c := NewCellular(42)
	for i := 0; i < 30; i++ {
		x, z := float64(i)*3.3, float64(i)*1.7
		d1 := c.Eval2(x, z, Distance)
		d2 := c.Eval2(x, z, Distance2)
		if d2 < d1 {
			t.Fatalf("distance-to-second (%f) < distance-to-nearest (%f) at (%f,%f)", d2, d1, x, z)
		}
	}
}

func TestCellularDeterminism(t *testing.T) {
	a := NewCellular(7)
	b := NewCellular(7)
	for i := 0; i < 20; i++ {
		x, y, z := float64(i)*2.5, float64(i)*0.9, float64(i)*4.4
		if a.Eval3(x, y, z, Distance) != b.Eval3(x, y, z, Distance) {
			t.Fatalf("same seed produced different cellular values at (%f,%f,%f)", x, y, z)
		}
	}
}

func TestToUnitBounds(t *testing.T) {
	c := NewCellular(1)
	for i := 0; i < 100; i++ {
		x, z := float64(i)*0.37, float64(i)*1.91
		v := ToUnit2(c.Eval2(x, z, Distance))
		if v < 0 || v > 1 {
			t.Fatalf("ToUnit2 out of range: %f", v)
		}
	}
}
