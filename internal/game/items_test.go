package game

import (
	"math"
	"testing"
)

func TestAddItemSpawnsOnTheGrid(t *testing.T) {
	s := NewGameState()
	bp, ok := BlueprintByID("camping_chair")
	if !ok {
		t.Fatalf("camping_chair missing from the catalog")
	}
	for range 20 {
		id := s.AddItem(bp)
		it, ok := s.ItemByID(id)
		if !ok {
			t.Fatalf("added item %s not found", id)
		}
		if math.Mod(it.Position.X, GridStep) != 0 || math.Mod(it.Position.Z, GridStep) != 0 {
			t.Fatalf("spawn position %+v is off the grid", it.Position)
		}
	}
}

func TestSingletonSecondPlacementReturnsTheExistingInstance(t *testing.T) {
	s := NewGameState()
	bp, ok := BlueprintByID("mailbox")
	if !ok {
		t.Fatalf("mailbox missing from the catalog")
	}
	first := s.AddItem(bp)
	before := len(s.PlacedItems)
	second := s.AddItem(bp)
	if second != first {
		t.Fatalf("expected the existing mailbox id %s, got %s", first, second)
	}
	if len(s.PlacedItems) != before {
		t.Fatalf("a second mailbox was placed")
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("lantern")
	id := s.AddItem(bp)
	before := len(s.PlacedItems)
	s.RemoveItem(id)
	s.RemoveItem(id)
	if len(s.PlacedItems) != before-1 {
		t.Fatalf("expected exactly one removal, have %d items", len(s.PlacedItems))
	}
}

func TestToggleItemStateFlipsNamedFlags(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("ev_car")
	id := s.AddItem(bp)
	s.ToggleItemState(id, "trunk_open")
	it, _ := s.ItemByID(id)
	if !it.ItemState["trunk_open"] {
		t.Fatalf("expected the trunk to open")
	}
	s.ToggleItemState(id, "trunk_open")
	it, _ = s.ItemByID(id)
	if it.ItemState["trunk_open"] {
		t.Fatalf("expected the trunk to close again")
	}
}

func TestSnapToGridIsIdempotent(t *testing.T) {
	cases := [][2]float64{{0.24, 0.26}, {-1.74, 3.51}, {7, -8.25}}
	for _, c := range cases {
		x, z := SnapToGrid(c[0], c[1])
		x2, z2 := SnapToGrid(x, z)
		if x != x2 || z != z2 {
			t.Fatalf("snapping (%v, %v) twice moved it: (%v, %v) then (%v, %v)", c[0], c[1], x, z, x2, z2)
		}
	}
}

func TestRotateItemAccumulatesYaw(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("radio")
	id := s.AddItem(bp)
	s.RotateItem(id, RotateStep)
	s.RotateItem(id, RotateStep)
	it, _ := s.ItemByID(id)
	if math.Abs(it.Yaw-2*RotateStep) > 1e-9 {
		t.Fatalf("expected yaw %v, got %v", 2*RotateStep, it.Yaw)
	}
}

func TestPosablePropsOfferBothPoses(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("sunbed")
	id := s.AddItem(bp)
	opts := s.ItemActions(id)
	if len(opts) != 2 || opts[0] != ActionSit || opts[1] != ActionLie {
		t.Fatalf("expected a sit-or-lie choice, got %v", opts)
	}
}

func TestChosenPoseSeatsThePlayerOnTheProp(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("sunbed")
	id := s.AddItem(bp)
	s.RotateItem(id, 1.2)

	s.ApplyItemAction(id, ActionLie)
	it, _ := s.ItemByID(id)
	if s.Avatar.Pose != PoseLie {
		t.Fatalf("choosing lie left the avatar in pose %s", s.Avatar.Pose)
	}
	if s.Avatar.Position.X != it.Position.X || s.Avatar.Position.Z != it.Position.Z {
		t.Fatalf("avatar was not moved onto the prop")
	}
	if s.Avatar.Yaw != it.Yaw {
		t.Fatalf("avatar yaw %v does not match the prop yaw %v", s.Avatar.Yaw, it.Yaw)
	}

	s.ApplyItemAction(id, ActionSit)
	if s.Avatar.Pose != PoseSit {
		t.Fatalf("choosing sit left the avatar in pose %s", s.Avatar.Pose)
	}
}

func TestInteractTogglesStatefulProps(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("radio")
	id := s.AddItem(bp)
	opts := s.ItemActions(id)
	if len(opts) != 1 || opts[0] != ActionRadio {
		t.Fatalf("expected the radio's single toggle action, got %v", opts)
	}
	s.ApplyItemAction(id, ActionRadio)
	it, _ := s.ItemByID(id)
	if !it.ItemState["playing"] {
		t.Fatalf("expected the radio to start playing")
	}
}

func TestInteractIgnoresPlainProps(t *testing.T) {
	s := NewGameState()
	bp, _ := BlueprintByID("tree_pine")
	id := s.AddItem(bp)
	if opts := s.ItemActions(id); len(opts) != 0 {
		t.Fatalf("a plain prop offered actions %v", opts)
	}
}
