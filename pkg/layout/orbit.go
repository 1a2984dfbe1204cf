package layout

import "math"

// Orbital spacing constants for planets within one solar system.
const (
	// BaseOrbitRadius is the radius of the innermost orbit, measured from
	// the system's central star.
	BaseOrbitRadius = 4.0

	// OrbitIncrement is the default radius step between adjacent orbits.
	// It is pre-sized so two maximum-size planets on fixed spacing cannot
	// touch.
	OrbitIncrement = 3.0

	// AdaptiveSpacingThreshold is the planet count above which spacing
	// grows linearly with density.
	AdaptiveSpacingThreshold = 8

	// MinSeparation is the minimum visual gap required between the
	// surfaces of two adjacent planets.
	MinSeparation = 2.0
)

// minPlanetRadius is the clamp floor for malformed planet radii.
const minPlanetRadius = 1e-6

// PlanetSizeInfo describes one planet's orbital slot and visual radius.
// Indices need not be contiguous; gaps between slot indices are fine.
type PlanetSizeInfo struct {
	Index  int
	Radius float64
}

// clamped returns the info with a non-negative index and a positive,
// finite radius.
func (p PlanetSizeInfo) clamped() PlanetSizeInfo {
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Radius <= 0 || math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) {
		p.Radius = minPlanetRadius
	}
	return p
}

// OrbitRadius returns the fixed-spacing orbit radius for a slot index.
func OrbitRadius(index int) float64 {
	return DynamicOrbitRadius(index, OrbitIncrement)
}

// DynamicOrbitRadius maps a slot index and a chosen spacing to an orbit
// radius.
func DynamicOrbitRadius(index int, spacing float64) float64 {
	if index < 0 {
		index = 0
	}
	return BaseOrbitRadius + float64(index)*spacing
}

// SafeSpacing returns the density-adaptive orbit spacing for a planet
// count. Below the adaptive threshold the spacing stays at OrbitIncrement;
// past it the spacing scales linearly so dense systems spread out instead
// of crowding. Individual planet sizes are not considered; use
// DynamicSpacing when sizes are known.
func SafeSpacing(planetCount int) float64 {
	if planetCount <= 1 {
		return OrbitIncrement
	}
	density := float64(planetCount) / AdaptiveSpacingThreshold
	if density < 1 {
		density = 1
	}
	return OrbitIncrement * density
}

// MinimumSpacing returns the smallest spacing that keeps every
// index-adjacent pair of planets at least MinSeparation apart, accounting
// for their visual radii. Adjacency follows array order, so callers must
// sort by index first. Pairs with non-increasing indices are skipped.
func MinimumSpacing(planets []PlanetSizeInfo) float64 {
	var required float64
	for i := 0; i+1 < len(planets); i++ {
		curr := planets[i].clamped()
		next := planets[i+1].clamped()

		slots := next.Index - curr.Index
		if slots <= 0 {
			continue
		}
		need := (curr.Radius + next.Radius + MinSeparation) / float64(slots)
		if need > required {
			required = need
		}
	}
	return required
}

// DynamicSpacing computes the orbit spacing for a solar system from the
// planets' sizes. baseSpacing and viewportRadius are optional; pass zero to
// disable either.
//
// The result starts from the density-adaptive spacing (or baseSpacing if
// larger) and is raised until every index-adjacent pair satisfies the
// separation invariant. If viewportRadius is positive and the outermost
// orbit overflows it, the spacing shrinks to fit, but never below the
// separation minimum: when framing and overlap avoidance conflict, overlap
// avoidance wins and the viewport bound is exceeded. Use FitsViewport to
// detect that case.
//
// Invariant: for all index-adjacent pairs, the gap between the orbits the
// returned spacing produces is at least the sum of the pair's radii plus
// MinSeparation.
func DynamicSpacing(planets []PlanetSizeInfo, baseSpacing, viewportRadius float64) float64 {
	spacing := SafeSpacing(len(planets))
	if baseSpacing > spacing && !math.IsInf(baseSpacing, 1) {
		spacing = baseSpacing
	}

	min := MinimumSpacing(planets)
	if min > spacing {
		spacing = min
	}

	if viewportRadius > 0 && !FitsViewport(planets, spacing, viewportRadius) {
		if fit, ok := fitSpacing(planets, viewportRadius); ok {
			spacing = math.Max(fit, min)
		}
	}

	return spacing
}

// FitsViewport reports whether the outermost planet, laid out with the
// given spacing, stays inside the viewport radius.
func FitsViewport(planets []PlanetSizeInfo, spacing, viewportRadius float64) bool {
	if len(planets) == 0 {
		return true
	}
	outer := planets[len(planets)-1].clamped()
	return DynamicOrbitRadius(outer.Index, spacing)+outer.Radius <= viewportRadius
}

// fitSpacing solves for the spacing that puts the outermost planet's
// surface exactly on the viewport radius. Reports false when the outermost
// planet sits on the base orbit, where spacing has no effect.
func fitSpacing(planets []PlanetSizeInfo, viewportRadius float64) (float64, bool) {
	if len(planets) == 0 {
		return 0, false
	}
	outer := planets[len(planets)-1].clamped()
	if outer.Index == 0 {
		return 0, false
	}
	return (viewportRadius - BaseOrbitRadius - outer.Radius) / float64(outer.Index), true
}
