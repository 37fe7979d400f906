package game

import (
	"math"
	"testing"
)

func TestHeightIsFlatAcrossTheCampArea(t *testing.T) {
	points := [][2]float64{{0, 0}, {5, -3}, {-10, 8}, {13.9, 0}, {0, -13.9}}
	for _, p := range points {
		if h := HeightAt(p[0], p[1]); h != 0 {
			t.Fatalf("expected flat ground at (%v, %v), got height %v", p[0], p[1], h)
		}
	}
}

func TestHeightRisesMonotonicallyTowardTheRim(t *testing.T) {
	prev := HeightAt(FlatRadius, 0)
	for d := FlatRadius + 0.5; d <= IslandRadius; d += 0.5 {
		h := HeightAt(d, 0)
		if h < prev {
			t.Fatalf("height decreased from %v to %v at distance %v", prev, h, d)
		}
		prev = h
	}
	if rim := HeightAt(IslandRadius, 0); math.Abs(rim-RimHeight) > 1e-9 {
		t.Fatalf("expected rim height %v at the shoreline, got %v", RimHeight, rim)
	}
}

func TestHeightSaturatesBeyondTheShoreline(t *testing.T) {
	if h := HeightAt(IslandRadius+10, 0); h != RimHeight {
		t.Fatalf("expected saturated height %v beyond the rim, got %v", RimHeight, h)
	}
}

func TestHeightIsRadiallySymmetric(t *testing.T) {
	d := 18.0
	base := HeightAt(d, 0)
	for ang := 0.0; ang < 2*math.Pi; ang += math.Pi / 6 {
		h := HeightAt(d*math.Cos(ang), d*math.Sin(ang))
		if math.Abs(h-base) > 1e-9 {
			t.Fatalf("height at angle %v differs: %v vs %v", ang, h, base)
		}
	}
}

func TestInsideIslandBoundary(t *testing.T) {
	if !InsideIsland(0, 0) {
		t.Fatalf("expected the center to be inside the island")
	}
	if !InsideIsland(IslandRadius, 0) {
		t.Fatalf("expected the shoreline to count as inside")
	}
	if InsideIsland(IslandRadius+0.01, 0) {
		t.Fatalf("expected a point past the shoreline to be outside")
	}
}
