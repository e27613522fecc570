package domain

import (
	"math"
	"testing"
)

func TestSeparation(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 190, 180}, // exactly opposite
		{10, 70, 60},
		{10, 95, 85},
		{350, 10, 20}, // across the seam
		{0, 0, 0},
		{0, 359, 1},
		{90, 270, 180},
	}
	for _, tc := range cases {
		if got := Separation(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		// Separation is symmetric.
		if got := Separation(tc.b, tc.a); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestClassifyAspect(t *testing.T) {
	cases := []struct {
		sep      float64
		wantKind AspectKind
		wantOK   bool
	}{
		{180, Opposition, true},
		{176, Opposition, true}, // within 5° orb
		{60, Sextile, true},
		{85, "", false}, // outside orb of 90
		{86, Square, true},
		{0, Conjunction, true},
		{4.9, Conjunction, true},
		{122, Trine, true},
		{30, "", false},
		{45, "", false},
	}
	for _, tc := range cases {
		kind, ok := ClassifyAspect(tc.sep, DefaultOrb)
		if ok != tc.wantOK || kind != tc.wantKind {
			t.Errorf("ClassifyAspect(%v) = (%q, %v), want (%q, %v)", tc.sep, kind, ok, tc.wantKind, tc.wantOK)
		}
	}
}

func TestValidateOrb(t *testing.T) {
	if err := ValidateOrb(5); err != nil {
		t.Fatalf("default orb rejected: %v", err)
	}
	if err := ValidateOrb(14.9); err != nil {
		t.Fatalf("orb 14.9 rejected: %v", err)
	}
	for _, bad := range []float64{0, -1, 15, 30} {
		if err := ValidateOrb(bad); err == nil {
			t.Errorf("ValidateOrb(%v) accepted, want error", bad)
		}
	}
}

func TestDetectAspects_Scenarios(t *testing.T) {
	positions := []BodyPosition{
		{Body: Sun, Longitude: 10},
		{Body: Moon, Longitude: 190}, // opposition with Sun
		{Body: Mercury, Longitude: 70},
		{Body: Venus, Longitude: 95}, // 85° from Sun: no aspect
	}

	aspects := DetectAspects(positions, DefaultOrb)

	want := map[[2]CelestialBody]AspectKind{
		{Sun, Moon}:        Opposition,  // 180
		{Sun, Mercury}:     Sextile,     // 60
		{Moon, Mercury}:    Trine,       // 120
		{Moon, Venus}:      Square,      // 95 → within orb of 90
		{Mercury, Venus}:   "",          // 25: nothing
		{Sun, Venus}:       "",          // 85: outside orb
	}
	for _, a := range aspects {
		kind, known := want[[2]CelestialBody{a.First, a.Second}]
		if !known || kind == "" {
			t.Errorf("unexpected aspect %s-%s %q (sep %.1f)", a.First.Name(), a.Second.Name(), a.Kind, a.Separation)
			continue
		}
		if a.Kind != kind {
			t.Errorf("aspect %s-%s = %q, want %q", a.First.Name(), a.Second.Name(), a.Kind, kind)
		}
	}
	if len(aspects) != 4 {
		t.Fatalf("got %d aspects, want 4: %+v", len(aspects), aspects)
	}
}

// Canonical ordering: for every emitted pair the first body precedes the
// second in enumeration order, so (A,B) and (B,A) can never both appear.
func TestDetectAspects_CanonicalPairs(t *testing.T) {
	positions := make([]BodyPosition, len(Bodies))
	for i, b := range Bodies {
		positions[i] = BodyPosition{Body: b, Longitude: float64(i * 36)}
	}

	seen := map[[2]CelestialBody]bool{}
	for _, a := range DetectAspects(positions, DefaultOrb) {
		if a.First >= a.Second {
			t.Fatalf("non-canonical pair %s-%s", a.First.Name(), a.Second.Name())
		}
		key := [2]CelestialBody{a.First, a.Second}
		if seen[key] {
			t.Fatalf("duplicate pair %s-%s", a.First.Name(), a.Second.Name())
		}
		seen[key] = true
	}
}

func TestDetectAspects_SkipsErroredBodies(t *testing.T) {
	positions := []BodyPosition{
		{Body: Sun, Longitude: 10},
		{Body: Moon, Err: "CALCULATION_ERROR"},
		{Body: Mercury, Longitude: 190},
	}

	aspects := DetectAspects(positions, DefaultOrb)
	if len(aspects) != 1 {
		t.Fatalf("got %d aspects, want 1", len(aspects))
	}
	if aspects[0].First != Sun || aspects[0].Second != Mercury || aspects[0].Kind != Opposition {
		t.Fatalf("unexpected aspect %+v", aspects[0])
	}
}
