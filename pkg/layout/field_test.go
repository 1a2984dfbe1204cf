package layout

import (
	"fmt"
	"math"
	"testing"
)

const tol = 1e-3

func almost(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGalaxiesEmpty(t *testing.T) {
	res := Galaxies(nil, 50)
	if len(res.Positions) != 0 {
		t.Errorf("expected empty positions, got %d", len(res.Positions))
	}
	if res.BoundingRadius != 0 {
		t.Errorf("expected bounding radius 0, got %v", res.BoundingRadius)
	}
}

func TestGalaxiesSingle(t *testing.T) {
	res := Galaxies([]string{"milky-way"}, 50)
	pos, ok := res.Positions["milky-way"]
	if !ok {
		t.Fatal("missing position for single galaxy")
	}
	if pos != (Position{}) {
		t.Errorf("single galaxy should sit at origin, got %+v", pos)
	}
	if res.BoundingRadius != 0 {
		t.Errorf("expected bounding radius 0, got %v", res.BoundingRadius)
	}
}

func TestGalaxiesMirrorPair(t *testing.T) {
	res := Galaxies([]string{"a", "b"}, 100)

	if got := res.Positions["a"]; !almost(got.X, -50) || got.Y != 0 || got.Z != 0 {
		t.Errorf("first galaxy: want (-50,0,0), got %+v", got)
	}
	if got := res.Positions["b"]; !almost(got.X, 50) || got.Y != 0 || got.Z != 0 {
		t.Errorf("second galaxy: want (50,0,0), got %+v", got)
	}
	if !almost(res.BoundingRadius, 50) {
		t.Errorf("bounding radius: want 50, got %v", res.BoundingRadius)
	}
}

func TestGalaxiesTriangle(t *testing.T) {
	const spacing = 50.0
	ids := []string{"a", "b", "c"}
	res := Galaxies(ids, spacing)

	// Every pair must be exactly one side length apart.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if d := dist(res.Positions[ids[i]], res.Positions[ids[j]]); !almost(d, spacing) {
				t.Errorf("side %s-%s: want %v, got %v", ids[i], ids[j], spacing, d)
			}
		}
	}

	// Apex points north.
	if apex := res.Positions["a"]; apex.Z >= 0 || apex.X != 0 {
		t.Errorf("apex should sit north of origin on the z axis, got %+v", apex)
	}

	// Bounding radius equals the circumradius.
	want := math.Sqrt(3) / 2 * spacing * 2 / 3
	if !almost(res.BoundingRadius, want) {
		t.Errorf("bounding radius: want %v, got %v", want, res.BoundingRadius)
	}

	assertCentroidAtOrigin(t, res)
}

func TestGalaxiesDiamond(t *testing.T) {
	const spacing = 50.0
	ids := []string{"n", "w", "e", "s"}
	res := Galaxies(ids, spacing)

	want := spacing / math.Sqrt2
	for _, id := range ids {
		if d := res.Positions[id].DistanceFromOrigin(); !almost(d, want) {
			t.Errorf("galaxy %s: want distance %v from origin, got %v", id, want, d)
		}
	}
	if !almost(res.BoundingRadius, want) {
		t.Errorf("bounding radius: want %v, got %v", want, res.BoundingRadius)
	}

	// Adjacent vertices are one side length apart.
	if d := dist(res.Positions["n"], res.Positions["w"]); !almost(d, spacing) {
		t.Errorf("side n-w: want %v, got %v", spacing, d)
	}

	assertCentroidAtOrigin(t, res)
}

func TestGalaxiesRing(t *testing.T) {
	const spacing = 50.0
	for _, count := range []int{5, 8, 20, 100} {
		ids := make([]string, count)
		for i := range ids {
			ids[i] = fmt.Sprintf("g%d", i)
		}
		res := Galaxies(ids, spacing)

		wantRadius := float64(count) * spacing / (2 * math.Pi)
		if !almost(res.BoundingRadius, wantRadius) {
			t.Errorf("count %d: bounding radius want %v, got %v", count, wantRadius, res.BoundingRadius)
		}
		for _, id := range ids {
			if d := res.Positions[id].DistanceFromOrigin(); !almost(d, wantRadius) {
				t.Errorf("count %d: galaxy %s off the ring: %v != %v", count, id, d, wantRadius)
			}
		}
	}
}

func TestGalaxiesDeterministic(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g"}
	first := Galaxies(ids, 42)
	second := Galaxies(ids, 42)

	for _, id := range ids {
		if first.Positions[id] != second.Positions[id] {
			t.Errorf("galaxy %s moved between identical calls: %+v vs %+v",
				id, first.Positions[id], second.Positions[id])
		}
	}
	if first.BoundingRadius != second.BoundingRadius {
		t.Errorf("bounding radius changed between identical calls")
	}
}

func TestGalaxiesSwappingIDsSwapsSlots(t *testing.T) {
	a := Galaxies([]string{"x", "y"}, 50)
	b := Galaxies([]string{"y", "x"}, 50)

	if a.Positions["x"] != b.Positions["y"] || a.Positions["y"] != b.Positions["x"] {
		t.Error("swapping two IDs should swap their slots only")
	}
}

func TestGalaxiesClampsBadSpacing(t *testing.T) {
	for _, spacing := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		res := Galaxies([]string{"a", "b"}, spacing)
		if !almost(res.BoundingRadius, DefaultGalaxySpacing/2) {
			t.Errorf("spacing %v: want fallback to default, got bounding radius %v",
				spacing, res.BoundingRadius)
		}
	}
}

func TestCameraDistance(t *testing.T) {
	want := (50.0 + 8.0) / math.Tan(75.0/2*math.Pi/180) * 1.3
	if got := CameraDistance(50, 8); !almost(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	// Larger fields need a farther camera.
	if CameraDistance(100, 8) <= CameraDistance(50, 8) {
		t.Error("camera distance should grow with bounding radius")
	}
}

func TestValidSpacing(t *testing.T) {
	if ValidSpacing(16, 16) {
		t.Error("spacing equal to diameter must be rejected")
	}
	if !ValidSpacing(16.01, 16) {
		t.Error("spacing above diameter must be accepted")
	}
}

func TestValidRingSpacing(t *testing.T) {
	tests := []struct {
		count    int
		spacing  float64
		diameter float64
		want     bool
	}{
		{20, 30, 44, false}, // chord ~29.88 < 44
		{100, 50, 44, true}, // chord ~49.99 > 44
		{4, 1, 1000, true},  // below ring threshold, always valid
		{0, 0, 0, true},
	}
	for _, tt := range tests {
		if got := ValidRingSpacing(tt.count, tt.spacing, tt.diameter); got != tt.want {
			t.Errorf("ValidRingSpacing(%d, %v, %v) = %v, want %v",
				tt.count, tt.spacing, tt.diameter, got, tt.want)
		}
	}
}

func dist(a, b Position) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func assertCentroidAtOrigin(t *testing.T, res Result) {
	t.Helper()
	var cx, cy, cz float64
	for _, p := range res.Positions {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(res.Positions))
	if math.Abs(cx/n) > 0.01 || math.Abs(cy/n) > 0.01 || math.Abs(cz/n) > 0.01 {
		t.Errorf("centroid should sit at origin, got (%v, %v, %v)", cx/n, cy/n, cz/n)
	}
}
