package layout

import (
	"math"
	"testing"
)

func TestRingsPlacesSystemsOnInnerRing(t *testing.T) {
	res := Rings([]string{"s1", "s2", "s3"}, nil)

	if len(res.Positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(res.Positions))
	}
	for id, pos := range res.Positions {
		if d := pos.DistanceFromOrigin(); !almost(d, InnerRingRadius) {
			t.Errorf("system %s: want radius %v, got %v", id, InnerRingRadius, d)
		}
		if pos.Y != 0 {
			t.Errorf("system %s: expected in-plane position, got y=%v", id, pos.Y)
		}
	}

	// First member sits at angle zero.
	if first := res.Positions["s1"]; !almost(first.X, InnerRingRadius) || !almost(first.Z, 0) {
		t.Errorf("first system should sit at angle 0, got %+v", first)
	}
}

func TestRingsPlacesStarsOnOffsetOuterRing(t *testing.T) {
	res := Rings(nil, []string{"st1", "st2"})

	for id, pos := range res.Positions {
		if d := pos.DistanceFromOrigin(); !almost(d, OuterRingRadius) {
			t.Errorf("star %s: want radius %v, got %v", id, OuterRingRadius, d)
		}
	}

	// First star is rotated by the ring offset.
	want := Position{
		X: math.Cos(OuterRingOffset) * OuterRingRadius,
		Z: math.Sin(OuterRingOffset) * OuterRingRadius,
	}
	if got := res.Positions["st1"]; !almost(got.X, want.X) || !almost(got.Z, want.Z) {
		t.Errorf("first star: want %+v, got %+v", want, got)
	}
}

func TestRingsEmpty(t *testing.T) {
	res := Rings(nil, nil)
	if len(res.Positions) != 0 || res.BoundingRadius != 0 {
		t.Errorf("empty galaxy should produce an empty layout, got %+v", res)
	}
}

func TestRingsEvenDistribution(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	res := Rings(ids, nil)

	// Adjacent members are separated by an equal chord.
	want := 2 * InnerRingRadius * math.Sin(math.Pi/4)
	for i := range ids {
		next := ids[(i+1)%len(ids)]
		if d := dist(res.Positions[ids[i]], res.Positions[next]); !almost(d, want) {
			t.Errorf("chord %s-%s: want %v, got %v", ids[i], next, want, d)
		}
	}
}

func TestRingSeparationInvariant(t *testing.T) {
	// The fixed ring constants must keep the two rings from overlapping.
	if OuterRingRadius-InnerRingRadius < 3 {
		t.Errorf("outer ring must clear inner ring by at least 3 units, gap is %v",
			OuterRingRadius-InnerRingRadius)
	}
}
