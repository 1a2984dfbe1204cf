package layout

import "math"

// DefaultGalaxySpacing is the default center-to-center distance between
// neighbouring galaxies in the top-level scene.
const DefaultGalaxySpacing = 50.0

// cameraFOV is the vertical field of view of the scene camera, in degrees.
const cameraFOV = 75.0

// cameraMargin pads the recommended camera distance so the outermost
// galaxy is not flush against the viewport edge.
const cameraMargin = 1.3

// Galaxies positions the given galaxy IDs in the top-level scene.
//
// The placement pattern is keyed purely by len(ids):
//
//	0  empty
//	1  single point at the origin
//	2  mirrored pair on the x axis
//	3  equilateral triangle, one vertex north
//	4  diamond with vertices at N/W/E/S
//	5+ ring sized so adjacent arc length is roughly spacing
//
// The order of ids determines slot assignment only: swapping two IDs swaps
// their positions and nothing else. A non-positive or non-finite spacing
// falls back to DefaultGalaxySpacing.
func Galaxies(ids []string, spacing float64) Result {
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		spacing = DefaultGalaxySpacing
	}

	res := newResult(len(ids))
	switch len(ids) {
	case 0:
	case 1:
		res.place(ids[0], Position{})
	case 2:
		half := spacing / 2
		res.place(ids[0], Position{X: -half})
		res.place(ids[1], Position{X: half})
	case 3:
		placeTriangle(&res, ids, spacing)
	case 4:
		placeDiamond(&res, ids, spacing)
	default:
		placeRing(&res, ids, spacing)
	}
	return res
}

// placeTriangle places three galaxies on an equilateral triangle with side
// length spacing, centroid at the origin, apex pointing north (-z).
func placeTriangle(res *Result, ids []string, spacing float64) {
	// Circumradius of an equilateral triangle with side s is s/sqrt(3);
	// the inradius (centroid to edge midpoint) is half of that.
	circum := spacing / math.Sqrt(3)
	in := circum / 2

	res.place(ids[0], Position{Z: -circum})
	res.place(ids[1], Position{X: -spacing / 2, Z: in})
	res.place(ids[2], Position{X: spacing / 2, Z: in})
}

// placeDiamond places four galaxies on a square rotated 45 degrees, with
// side length spacing and vertices at north, west, east and south.
func placeDiamond(res *Result, ids []string, spacing float64) {
	d := spacing / math.Sqrt2

	res.place(ids[0], Position{Z: -d})
	res.place(ids[1], Position{X: -d})
	res.place(ids[2], Position{X: d})
	res.place(ids[3], Position{Z: d})
}

// placeRing distributes five or more galaxies evenly on a circle whose
// circumference gives adjacent members an arc distance of spacing.
func placeRing(res *Result, ids []string, spacing float64) {
	r := ringRadius(len(ids), spacing)
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := float64(i) * step
		res.place(id, Position{X: math.Cos(angle) * r, Z: math.Sin(angle) * r})
	}
	// Every point sits exactly on the circle.
	res.BoundingRadius = r
}

// ringRadius returns the ring radius that yields an arc length of spacing
// between adjacent members.
func ringRadius(count int, spacing float64) float64 {
	return float64(count) * spacing / (2 * math.Pi)
}

// CameraDistance recommends how far the camera should sit from the origin
// to frame a galaxy field with the given bounding radius, assuming the
// largest galaxy has radius galaxyMaxRadius.
func CameraDistance(boundingRadius, galaxyMaxRadius float64) float64 {
	halfFOV := cameraFOV / 2 * math.Pi / 180
	return (boundingRadius + galaxyMaxRadius) / math.Tan(halfFOV) * cameraMargin
}

// ValidSpacing reports whether a spacing keeps two neighbouring galaxies of
// the given maximum diameter from touching. The check is strict: a spacing
// exactly equal to the diameter is rejected.
func ValidSpacing(spacing, galaxyMaxDiameter float64) bool {
	return spacing > galaxyMaxDiameter
}

// ValidRingSpacing reports whether the ring pattern used for count galaxies
// keeps chord-adjacent members of the given maximum diameter from touching.
// Counts below the ring threshold always validate, since the small-count
// patterns space members at least a full spacing apart.
func ValidRingSpacing(count int, spacing, galaxyMaxDiameter float64) bool {
	if count < 5 {
		return true
	}
	r := ringRadius(count, spacing)
	step := 2 * math.Pi / float64(count)
	chord := 2 * r * math.Sin(step/2)
	return chord > galaxyMaxDiameter
}
