package layout

import "math"

// Ring radii for the interior view of a single galaxy. These are fixed
// configuration constants rather than computed values: the outer ring must
// clear the inner ring by at least 3 scene units, and the inner ring plus a
// marker's visual size must stay below the outer radius.
const (
	// InnerRingRadius is the radius of the solar-system ring.
	InnerRingRadius = 10.0

	// OuterRingRadius is the radius of the free-floating-star ring.
	OuterRingRadius = 15.0

	// OuterRingOffset rotates the star ring relative to the solar-system
	// ring so members of the two rings never line up radially.
	OuterRingOffset = math.Pi / 4
)

// Rings positions a galaxy's solar systems on the inner ring and its
// free-floating stars on the outer ring. Each ring distributes its members
// evenly; an empty list simply contributes no positions.
func Rings(systemIDs, starIDs []string) Result {
	res := newResult(len(systemIDs) + len(starIDs))
	placeOnRing(&res, systemIDs, InnerRingRadius, 0)
	placeOnRing(&res, starIDs, OuterRingRadius, OuterRingOffset)
	return res
}

func placeOnRing(res *Result, ids []string, radius, offset float64) {
	if len(ids) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := float64(i)*step + offset
		res.place(id, Position{X: math.Cos(angle) * radius, Z: math.Sin(angle) * radius})
	}
}
