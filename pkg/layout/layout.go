package layout

import "math"

// Position is a point in scene units. Y is zero for in-plane layouts.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// DistanceFromOrigin returns the euclidean distance to the scene origin.
func (p Position) DistanceFromOrigin() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Result maps object IDs to positions together with the bounding radius,
// the maximum distance from origin among all placed objects. An empty
// layout has an empty map and a bounding radius of zero.
type Result struct {
	Positions      map[string]Position `json:"positions" bson:"positions"`
	BoundingRadius float64             `json:"bounding_radius" bson:"bounding_radius"`
}

// newResult allocates a result sized for n objects.
func newResult(n int) Result {
	return Result{Positions: make(map[string]Position, n)}
}

// place records a position and grows the bounding radius if needed.
func (r *Result) place(id string, p Position) {
	r.Positions[id] = p
	if d := p.DistanceFromOrigin(); d > r.BoundingRadius {
		r.BoundingRadius = d
	}
}
