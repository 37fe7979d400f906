package game

import "math"

// Island geometry. The ground is flat out to FlatRadius, then rises
// smoothly to RimHeight at IslandRadius. Beyond the rim the surface
// stays at RimHeight so nothing can fall off the edge of the world.
const (
	IslandRadius = 22.0
	FlatRadius   = 14.0
	RimHeight    = 0.8
)

// HeightAt returns the ground height under the given world position.
func HeightAt(x, z float64) float64 {
	d := math.Hypot(x, z)
	if d <= FlatRadius {
		return 0
	}
	t := (d - FlatRadius) / (IslandRadius - FlatRadius)
	if t > 1 {
		t = 1
	}
	// smoothstep
	return RimHeight * t * t * (3 - 2*t)
}

// InsideIsland reports whether a point lies within the walkable disc.
func InsideIsland(x, z float64) bool {
	return math.Hypot(x, z) <= IslandRadius
}
