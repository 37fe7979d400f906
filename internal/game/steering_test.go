package game

import (
	"math"
	"testing"
)

const frame = 1.0 / 60.0

func walkingState() GameState {
	s := NewGameState()
	s.Tents = nil
	s.PlacedItems = nil
	s.Partners = nil
	s.Pets = nil
	s.Avatar.Position = Vec3{}
	return s
}

func TestAvatarNeverLeavesTheIsland(t *testing.T) {
	s := walkingState()
	var st Steering
	in := MoveInput{Right: true}
	for range 60 * 20 {
		st.Step(&s, nil, in, frame)
	}
	d := math.Hypot(s.Avatar.Position.X, s.Avatar.Position.Z)
	if d > IslandRadius-1+1e-9 {
		t.Fatalf("avatar walked to distance %v, beyond the shoreline margin", d)
	}
}

func TestAvatarCannotPenetrateObstacles(t *testing.T) {
	s := walkingState()
	obstacles := []Obstacle{{X: 0, Z: -2, Radius: 1}}
	var st Steering
	in := MoveInput{Forward: true}
	for range 60 * 5 {
		st.Step(&s, obstacles, in, frame)
		d := math.Hypot(s.Avatar.Position.X-0, s.Avatar.Position.Z-(-2))
		if d < 1-1e-9 {
			t.Fatalf("avatar penetrated obstacle, distance %v", d)
		}
	}
}

func TestAvoidanceSteersAroundNotThrough(t *testing.T) {
	s := walkingState()
	s.Avatar.Position = Vec3{Z: 3}
	obstacles := []Obstacle{{X: 0, Z: 0, Radius: 1}}
	var st Steering
	in := MoveInput{Forward: true}
	for range 60 * 4 {
		st.Step(&s, obstacles, in, frame)
	}
	if s.Avatar.Position.Z > -1 {
		t.Fatalf("avatar never made it past the obstacle, at z=%v", s.Avatar.Position.Z)
	}
}

func TestAvatarFollowsTerrainHeight(t *testing.T) {
	s := walkingState()
	s.Avatar.Position = Vec3{X: 18}
	var st Steering
	st.Step(&s, nil, MoveInput{}, frame)
	want := HeightAt(s.Avatar.Position.X, s.Avatar.Position.Z)
	if math.Abs(s.Avatar.Position.Y-want) > 1e-9 {
		t.Fatalf("expected avatar to rest on terrain at %v, got %v", want, s.Avatar.Position.Y)
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	s := walkingState()
	var st Steering
	st.Step(&s, nil, MoveInput{Jump: true}, frame)
	if !st.Airborne() {
		t.Fatalf("expected the avatar to be airborne after jumping")
	}
	peaked := false
	for range 120 {
		before := s.Avatar.Position.Y
		st.Step(&s, nil, MoveInput{}, frame)
		if s.Avatar.Position.Y < before {
			peaked = true
		}
	}
	if !peaked {
		t.Fatalf("jump never came back down")
	}
	if st.Airborne() || s.Avatar.Position.Y != 0 {
		t.Fatalf("expected landing at ground level, airborne=%v y=%v", st.Airborne(), s.Avatar.Position.Y)
	}
}

func TestClickTargetIsReachedThenCleared(t *testing.T) {
	s := walkingState()
	var st Steering
	st.SetTarget(Vec3{X: 3, Z: 2})
	for range 60 * 3 {
		st.Step(&s, nil, MoveInput{}, frame)
	}
	dx := s.Avatar.Position.X - 3
	dz := s.Avatar.Position.Z - 2
	if math.Hypot(dx, dz) > ArriveRadius+0.1 {
		t.Fatalf("avatar stopped at (%v, %v), short of the click target", s.Avatar.Position.X, s.Avatar.Position.Z)
	}
	settled := s.Avatar.Position
	st.Step(&s, nil, MoveInput{}, frame)
	if s.Avatar.Position != settled {
		t.Fatalf("avatar kept moving after reaching the target")
	}
}

func TestHeldKeyCancelsClickTarget(t *testing.T) {
	s := walkingState()
	var st Steering
	st.SetTarget(Vec3{X: 0, Z: 5})
	st.Step(&s, nil, MoveInput{Forward: true}, frame)
	if s.Avatar.Position.Z >= 0 {
		t.Fatalf("expected forward key to win over the click target, z=%v", s.Avatar.Position.Z)
	}
	pos := s.Avatar.Position
	st.Step(&s, nil, MoveInput{}, frame)
	if s.Avatar.Position != pos {
		t.Fatalf("cancelled click target still pulled the avatar")
	}
}

func TestPosedAvatarIgnoresMovementInput(t *testing.T) {
	s := walkingState()
	s.Avatar.Pose = PoseSit
	s.Avatar.Position = Vec3{X: 1, Z: 1}
	var st Steering
	for range 30 {
		st.Step(&s, nil, MoveInput{Forward: true, Jump: true}, frame)
	}
	if s.Avatar.Position != (Vec3{X: 1, Z: 1}) {
		t.Fatalf("seated avatar moved to %+v under held keys", s.Avatar.Position)
	}
	if s.Avatar.Pose != PoseSit {
		t.Fatalf("held keys broke the pose, now %s", s.Avatar.Pose)
	}
	if st.Airborne() {
		t.Fatalf("seated avatar jumped")
	}

	s.SetAvatarPose(PoseIdle)
	st.Step(&s, nil, MoveInput{Forward: true}, frame)
	if s.Avatar.Position.Z >= 1 {
		t.Fatalf("avatar did not move after standing up")
	}
}

func TestYawEasesTowardHeading(t *testing.T) {
	s := walkingState()
	var st Steering
	st.Step(&s, nil, MoveInput{Right: true}, frame)
	first := s.Avatar.Yaw
	if first == 0 {
		t.Fatalf("expected yaw to start turning toward the heading")
	}
	want := math.Atan2(1, 0)
	if first >= want {
		t.Fatalf("expected eased partial turn, got full %v of %v on the first frame", first, want)
	}
	for range 240 {
		st.Step(&s, nil, MoveInput{Right: true}, frame)
	}
	if math.Abs(s.Avatar.Yaw-want) > 0.05 {
		t.Fatalf("yaw never converged on the heading: %v vs %v", s.Avatar.Yaw, want)
	}
}

func TestEaseYawTakesTheShortWayAround(t *testing.T) {
	got := easeYaw(0.1, 2*math.Pi-0.1, 1)
	if math.Abs(got-(-0.1)) > 1e-9 {
		t.Fatalf("expected the short path to -0.1, got %v", got)
	}
}
