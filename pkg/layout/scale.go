package layout

import "math"

// Render-size constants shared by the size resolvers.
const (
	// MinPlanetSize and MaxPlanetSize bound a planet's render radius.
	MinPlanetSize = 0.5
	MaxPlanetSize = 2.0

	// MoonMultiplier is the radius gained per moon a planet carries.
	MoonMultiplier = 0.15

	// MoonSizeRatio sizes moons relative to the smallest planet.
	MoonSizeRatio = 0.5

	// GalaxyMaxRadius and GalaxyMinRadius bound a galaxy's render radius
	// in the top-level scene.
	GalaxyMaxRadius = 8.0
	GalaxyMinRadius = 2.0

	// MaxSizeThreshold is the galaxy count at or below which galaxies
	// render at full size; MinSizeThreshold is the count at or above
	// which they render at minimum size.
	MaxSizeThreshold = 2
	MinSizeThreshold = 50

	// SmoothingFactor eases the logarithmic interpolation between the
	// two thresholds so size changes stay gradual near the low end.
	SmoothingFactor = 0.8

	// RadiusRatio fixes a galaxy's inner (core) radius relative to its
	// outer radius.
	RadiusRatio = 0.2
)

// PlanetSize resolves a planet's render radius from its moon count. The
// radius grows with each moon and clamps at MaxPlanetSize so crowded
// planets cannot dominate the system view. Negative counts clamp to zero.
func PlanetSize(moonCount int) float64 {
	if moonCount < 0 {
		moonCount = 0
	}
	size := MinPlanetSize + float64(moonCount)*MoonMultiplier
	return math.Min(MaxPlanetSize, size)
}

// MoonSize returns the fixed render radius for moons. Moons are uniform;
// no per-moon attribute affects their size.
func MoonSize() float64 {
	return MinPlanetSize * MoonSizeRatio
}

// ScaleBounds is the render scale of one galaxy: MaxRadius is the disc
// radius, MinRadius the core radius. MinRadius is always
// RadiusRatio * MaxRadius.
type ScaleBounds struct {
	MinRadius float64 `json:"min_radius" bson:"min_radius"`
	MaxRadius float64 `json:"max_radius" bson:"max_radius"`
}

// GalaxyScale resolves galaxy render scale from the total galaxy count.
//
// Few galaxies (count <= MaxSizeThreshold) fill the canvas at
// GalaxyMaxRadius; many (count >= MinSizeThreshold) shrink to
// GalaxyMinRadius to avoid clutter. Between the thresholds the radius
// follows a smoothed logarithmic interpolation, which keeps the size
// monotonically non-increasing with no jumps at either boundary.
func GalaxyScale(galaxyCount int) ScaleBounds {
	if galaxyCount < 0 {
		galaxyCount = 0
	}

	var max float64
	switch {
	case galaxyCount <= MaxSizeThreshold:
		max = GalaxyMaxRadius
	case galaxyCount >= MinSizeThreshold:
		max = GalaxyMinRadius
	default:
		t := (math.Log(float64(galaxyCount)) - math.Log(MaxSizeThreshold)) /
			(math.Log(MinSizeThreshold) - math.Log(MaxSizeThreshold))
		t = math.Pow(t, SmoothingFactor)
		max = GalaxyMaxRadius + t*(GalaxyMinRadius-GalaxyMaxRadius)
	}

	return boundsFor(max)
}

// GalaxyScaleWithOverride is GalaxyScale with a manual radius override. A
// positive, finite override bypasses the count-based formula entirely;
// anything else falls back to it.
func GalaxyScaleWithOverride(galaxyCount int, override float64) ScaleBounds {
	if override > 0 && !math.IsInf(override, 0) && !math.IsNaN(override) {
		return boundsFor(override)
	}
	return GalaxyScale(galaxyCount)
}

func boundsFor(max float64) ScaleBounds {
	return ScaleBounds{MinRadius: max * RadiusRatio, MaxRadius: max}
}
