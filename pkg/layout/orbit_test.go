package layout

import (
	"math"
	"testing"
)

// assertNoOverlap checks the separation invariant: for every index-adjacent
// pair, the orbit gap covers both radii plus the minimum separation.
func assertNoOverlap(t *testing.T, planets []PlanetSizeInfo, spacing float64) {
	t.Helper()
	for i := 0; i+1 < len(planets); i++ {
		curr, next := planets[i], planets[i+1]
		gap := DynamicOrbitRadius(next.Index, spacing) - DynamicOrbitRadius(curr.Index, spacing)
		need := curr.Radius + next.Radius + MinSeparation
		if gap < need-tol {
			t.Errorf("pair %d-%d: gap %v below required %v (spacing %v)",
				curr.Index, next.Index, gap, need, spacing)
		}
	}
}

func TestSafeSpacing(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, OrbitIncrement},
		{1, OrbitIncrement},
		{2, OrbitIncrement},
		{8, OrbitIncrement},
		{12, OrbitIncrement * 1.5},
		{16, OrbitIncrement * 2},
		{80, OrbitIncrement * 10},
	}
	for _, tt := range tests {
		if got := SafeSpacing(tt.count); !almost(got, tt.want) {
			t.Errorf("SafeSpacing(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestOrbitRadiusFixedSpacing(t *testing.T) {
	if got := OrbitRadius(0); !almost(got, BaseOrbitRadius) {
		t.Errorf("innermost orbit: want %v, got %v", BaseOrbitRadius, got)
	}
	if got := OrbitRadius(3); !almost(got, BaseOrbitRadius+3*OrbitIncrement) {
		t.Errorf("orbit 3: want %v, got %v", BaseOrbitRadius+3*OrbitIncrement, got)
	}
	// Negative indices clamp to the base orbit instead of going inside the star.
	if got := OrbitRadius(-2); !almost(got, BaseOrbitRadius) {
		t.Errorf("negative index should clamp to base orbit, got %v", got)
	}
}

func TestDynamicSpacingThreeEqualPlanets(t *testing.T) {
	planets := []PlanetSizeInfo{
		{Index: 0, Radius: 1.0},
		{Index: 1, Radius: 1.0},
		{Index: 2, Radius: 1.0},
	}

	spacing := DynamicSpacing(planets, 0, 0)

	// Consecutive orbit gaps must cover 1.0 + 1.0 + 2.0.
	for i := 0; i < 2; i++ {
		gap := DynamicOrbitRadius(i+1, spacing) - DynamicOrbitRadius(i, spacing)
		if gap < 4.0-tol {
			t.Errorf("gap between orbits %d and %d is %v, want >= 4.0", i, i+1, gap)
		}
	}
}

func TestDynamicSpacingNoOverlapInvariant(t *testing.T) {
	cases := [][]PlanetSizeInfo{
		{{0, 0.5}, {1, 0.5}},
		{{0, 2.0}, {1, 2.0}, {2, 2.0}, {3, 2.0}},
		{{0, 0.5}, {1, 1.8}, {2, 0.6}, {3, 2.0}, {4, 1.1}},
		// Non-contiguous indices are tolerated.
		{{0, 1.0}, {3, 1.5}, {7, 2.0}},
		{{2, 0.9}, {5, 1.4}},
	}
	for _, planets := range cases {
		spacing := DynamicSpacing(planets, 0, 0)
		assertNoOverlap(t, planets, spacing)
	}
}

func TestDynamicSpacingRespectsBaseSpacing(t *testing.T) {
	planets := []PlanetSizeInfo{{0, 0.5}, {1, 0.5}}
	if got := DynamicSpacing(planets, 12, 0); !almost(got, 12) {
		t.Errorf("a generous base spacing should be kept, got %v", got)
	}
}

func TestDynamicSpacingShrinksToViewport(t *testing.T) {
	planets := []PlanetSizeInfo{
		{Index: 0, Radius: 1.0},
		{Index: 1, Radius: 1.0},
		{Index: 2, Radius: 1.0},
		{Index: 3, Radius: 1.0},
	}

	// Base spacing of 20 would push the outer orbit past the viewport;
	// spacing should shrink until the outermost surface touches it.
	spacing := DynamicSpacing(planets, 20, 40)
	if spacing >= 20 {
		t.Errorf("spacing should shrink under viewport pressure, got %v", spacing)
	}
	if !FitsViewport(planets, spacing, 40) {
		t.Errorf("layout should fit viewport 40 with spacing %v", spacing)
	}
	assertNoOverlap(t, planets, spacing)
}

func TestDynamicSpacingOverlapBeatsViewport(t *testing.T) {
	planets := []PlanetSizeInfo{
		{Index: 0, Radius: 1.0},
		{Index: 1, Radius: 1.0},
		{Index: 2, Radius: 1.0},
		{Index: 3, Radius: 1.0},
	}

	// A viewport this tight cannot be honored without overlap. The
	// separation invariant must win and the viewport bound is exceeded.
	spacing := DynamicSpacing(planets, 0, 10)
	assertNoOverlap(t, planets, spacing)

	if FitsViewport(planets, spacing, 10) {
		t.Error("expected the viewport bound to be exceeded in the conflict case")
	}
	if min := MinimumSpacing(planets); spacing < min-tol {
		t.Errorf("spacing %v fell below the overlap minimum %v", spacing, min)
	}
}

func TestMinimumSpacingSparseIndices(t *testing.T) {
	// Seven empty slots between the pair: the per-slot requirement shrinks.
	planets := []PlanetSizeInfo{{0, 2.0}, {8, 2.0}}
	want := (2.0 + 2.0 + MinSeparation) / 8
	if got := MinimumSpacing(planets); !almost(got, want) {
		t.Errorf("MinimumSpacing = %v, want %v", got, want)
	}
}

func TestMinimumSpacingDegenerateInput(t *testing.T) {
	if got := MinimumSpacing(nil); got != 0 {
		t.Errorf("no planets need no spacing, got %v", got)
	}
	if got := MinimumSpacing([]PlanetSizeInfo{{0, 1.0}}); got != 0 {
		t.Errorf("single planet needs no spacing, got %v", got)
	}
	// Duplicate indices cannot be separated by spacing; the pair is skipped.
	if got := MinimumSpacing([]PlanetSizeInfo{{1, 1.0}, {1, 1.0}}); got != 0 {
		t.Errorf("duplicate indices should be skipped, got %v", got)
	}
}

func TestDynamicSpacingClampsMalformedSizes(t *testing.T) {
	planets := []PlanetSizeInfo{
		{Index: -3, Radius: math.NaN()},
		{Index: 1, Radius: -5},
		{Index: 2, Radius: math.Inf(1)},
	}
	spacing := DynamicSpacing(planets, 0, 0)
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing <= 0 {
		t.Errorf("malformed sizes must clamp, not poison the result: %v", spacing)
	}
}

func TestDynamicSpacingDeterministic(t *testing.T) {
	planets := []PlanetSizeInfo{{0, 0.7}, {1, 1.3}, {2, 1.9}}
	if DynamicSpacing(planets, 5, 60) != DynamicSpacing(planets, 5, 60) {
		t.Error("identical inputs must produce identical spacing")
	}
}
