package falloff

import "testing"

var allTypes = []Type{
	Linear, Smooth, VerySmooth, Sharp, Cosine, Polynomial2, Polynomial3,
	Polynomial4, InverseSquare, Sigmoid, Smoothstep, Smootherstep, Gaussian,
	Hyperbolic,
}

func TestWeightEndpoints(t *testing.T) {
	cfg := Default()
	rarity := 50.0 // rarity/50 == 1, influence_multiplier == 1

	for _, typ := range allTypes {
		cfg.Type = typ
		w0 := Weight(0, cfg, rarity)
		if w0 < 0.95 {
			t.Errorf("%s: weight at d=0 = %f, want >= 0.95", typ, w0)
		}
		wEdge := Weight(cfg.SearchRadius, cfg, rarity)
		if wEdge != 0 {
			t.Errorf("%s: weight at d=search_radius = %f, want 0", typ, wEdge)
		}
		wBeyond := Weight(cfg.SearchRadius+1, cfg, rarity)
		if wBeyond != 0 {
			t.Errorf("%s: weight beyond search_radius = %f, want 0", typ, wBeyond)
		}
	}
}

func TestWeightMonotonicity(t *testing.T) {
	cfg := Default()
	rarity := 50.0

	nonIncreasing := map[Type]bool{
		Linear: true, Smooth: true, VerySmooth: true, Sharp: true,
		Cosine: true, Polynomial2: true, Polynomial3: true, Polynomial4: true,
		InverseSquare: true, Smoothstep: true, Smootherstep: true, Gaussian: true,
	}

	for typ, check := range nonIncreasing {
		if !check {
			continue
		}
		cfg.Type = typ
		prev := Weight(0, cfg, rarity)
		for i := 1; i <= 10; i++ {
			d := cfg.SearchRadius * float64(i) / 10
			cur := Weight(d, cfg, rarity)
			if cur > prev+1e-9 {
				t.Errorf("%s: weight increased from %f to %f at step %d", typ, prev, cur, i)
			}
			prev = cur
		}
	}
}

func TestSigmoidAndHyperbolicStrictlyDecreasing(t *testing.T) {
	cfg := Default()
	rarity := 50.0

	for _, typ := range []Type{Sigmoid, Hyperbolic} {
		cfg.Type = typ
		prev := Weight(1e-6*cfg.SearchRadius, cfg, rarity)
		for i := 1; i < 10; i++ {
			d := cfg.SearchRadius * float64(i) / 10
			cur := Weight(d, cfg, rarity)
			if cur >= prev {
				t.Errorf("%s: not strictly decreasing at step %d (%f >= %f)", typ, i, cur, prev)
			}
			prev = cur
		}
	}
}

func TestRarityAndMultiplierScaling(t *testing.T) {
	cfg := Default()
	low := Weight(0, cfg, 25)  // half rarity
	high := Weight(0, cfg, 50) // full rarity
	if low >= high {
		t.Errorf("lower rarity weight should reduce influence: low=%f high=%f", low, high)
	}

	cfg.InfluenceMultiplier = 2.0
	boosted := Weight(0, cfg, 50)
	if boosted <= high {
		t.Errorf("influence_multiplier=2 should roughly double weight: boosted=%f base=%f", boosted, high)
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range allTypes {
		name := typ.String()
		if name == "unknown" {
			t.Fatalf("%v stringified to unknown", typ)
		}
		if ParseType(name) != typ {
			t.Errorf("ParseType(%q) = %v, want %v", name, ParseType(name), typ)
		}
	}
	if ParseType("not-a-real-type") != Smooth {
		t.Error("ParseType of unrecognized name should default to Smooth")
	}
}

func TestPresetsCoverNamedSet(t *testing.T) {
	for _, name := range []string{"natural", "mountain", "desert", "ocean", "rare", "cave"} {
		if _, ok := Presets[name]; !ok {
			t.Errorf("missing preset %q", name)
		}
	}
}
