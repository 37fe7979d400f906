package game

import "math"

// Movement tuning. Speed and the jump arc match the feel of the scene:
// a short hop that lands before the walk cycle loses its rhythm.
const (
	WalkSpeed    = 4.0
	JumpVelocity = 5.0
	Gravity      = 9.8
	Clearance    = 0.6
	AvoidBlend   = 0.5
	TurnRate     = 0.15
	ArriveRadius = 0.15
)

// MoveInput is one frame of directional intent from keys or virtual stick.
type MoveInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

func (in MoveInput) active() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Steering advances the player avatar each frame. It owns the transient
// movement state that never persists: vertical velocity, the pending
// click-to-move target, and the walk cycle clock.
type Steering struct {
	target    Vec3
	hasTarget bool
	velY      float64
	airborne  bool
	walkClock float64
}

// SetTarget queues a click-to-move destination. Any held key overrides
// and cancels it on the next step.
func (st *Steering) SetTarget(pos Vec3) {
	st.target = pos
	st.hasTarget = true
}

func (st *Steering) ClearTarget() {
	st.hasTarget = false
}

// Moving reports whether the avatar advanced on the last step, which
// drives the walk animation.
func (st *Steering) Moving() bool {
	return st.walkClock > 0
}

func (st *Steering) Airborne() bool {
	return st.airborne
}

// Step integrates one frame of avatar movement. Posed avatars ignore
// input entirely; standing up is an explicit action the shell performs.
func (st *Steering) Step(s *GameState, obstacles []Obstacle, in MoveInput, dt float64) {
	if st == nil || s == nil || dt <= 0 {
		return
	}
	av := &s.Avatar

	if av.Pose != PoseIdle {
		return
	}

	if in.Jump && !st.airborne {
		st.velY = JumpVelocity
		st.airborne = true
	}

	dx, dz := st.desired(av, in)
	moved := false
	if dx != 0 || dz != 0 {
		dx, dz = avoid(av.Position, dx, dz, obstacles)
		next := Vec3{
			X: av.Position.X + dx*WalkSpeed*dt,
			Z: av.Position.Z + dz*WalkSpeed*dt,
		}
		next = resolveCollisions(next, obstacles)
		next = clampToIsland(next)
		moved = next.X != av.Position.X || next.Z != av.Position.Z
		av.Position.X = next.X
		av.Position.Z = next.Z
		if moved {
			av.Yaw = easeYaw(av.Yaw, math.Atan2(dx, dz), TurnRate)
		}
	}

	ground := HeightAt(av.Position.X, av.Position.Z)
	if st.airborne {
		st.velY -= Gravity * dt
		av.Position.Y += st.velY * dt
		if av.Position.Y <= ground {
			av.Position.Y = ground
			st.velY = 0
			st.airborne = false
		}
	} else {
		av.Position.Y = ground
	}

	if moved {
		st.walkClock += dt
	} else {
		st.walkClock = 0
	}
}

// desired resolves this frame's unit direction. Keys win over a queued
// click target; reaching the target clears it.
func (st *Steering) desired(av *Avatar, in MoveInput) (float64, float64) {
	if in.active() {
		st.hasTarget = false
		var dx, dz float64
		if in.Forward {
			dz--
		}
		if in.Backward {
			dz++
		}
		if in.Left {
			dx--
		}
		if in.Right {
			dx++
		}
		return normalize(dx, dz)
	}
	if st.hasTarget {
		dx := st.target.X - av.Position.X
		dz := st.target.Z - av.Position.Z
		if math.Hypot(dx, dz) <= ArriveRadius {
			st.hasTarget = false
			return 0, 0
		}
		return normalize(dx, dz)
	}
	return 0, 0
}

// avoid bends the desired direction away from any obstacle the avatar
// would brush against within its clearance margin.
func avoid(pos Vec3, dx, dz float64, obstacles []Obstacle) (float64, float64) {
	for _, ob := range obstacles {
		ox := pos.X - ob.X
		oz := pos.Z - ob.Z
		dist := math.Hypot(ox, oz)
		margin := ob.Radius + Clearance
		if dist >= margin || dist == 0 {
			continue
		}
		// Only steer away when heading toward the obstacle.
		if ox*dx+oz*dz >= 0 {
			continue
		}
		away := (margin - dist) / margin * AvoidBlend
		// A dead head-on approach gets a sideways deflection instead of a
		// radial push, which would only stall against the heading.
		if math.Abs(ox*dz-oz*dx)/dist < 0.2 {
			dx += -oz / dist * away
			dz += ox / dist * away
		} else {
			dx += ox / dist * away
			dz += oz / dist * away
		}
	}
	return normalize(dx, dz)
}

// resolveCollisions pushes the position out of any obstacle it has
// penetrated. Exact center hits pick a fixed push direction so the
// avatar never gets stuck inside a prop.
func resolveCollisions(pos Vec3, obstacles []Obstacle) Vec3 {
	for _, ob := range obstacles {
		ox := pos.X - ob.X
		oz := pos.Z - ob.Z
		dist := math.Hypot(ox, oz)
		if dist >= ob.Radius {
			continue
		}
		if dist == 0 {
			pos.X = ob.X + ob.Radius
			continue
		}
		pos.X = ob.X + ox/dist*ob.Radius
		pos.Z = ob.Z + oz/dist*ob.Radius
	}
	return pos
}

// clampToIsland keeps the avatar one unit inside the shoreline.
func clampToIsland(pos Vec3) Vec3 {
	limit := IslandRadius - 1
	d := math.Hypot(pos.X, pos.Z)
	if d <= limit || d == 0 {
		return pos
	}
	pos.X = pos.X / d * limit
	pos.Z = pos.Z / d * limit
	return pos
}

// easeYaw turns current toward want by the given fraction of the
// shortest angular difference.
func easeYaw(current, want, rate float64) float64 {
	diff := math.Mod(want-current, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return current + diff*rate
}

func normalize(x, z float64) (float64, float64) {
	n := math.Hypot(x, z)
	if n == 0 {
		return 0, 0
	}
	return x / n, z / n
}
