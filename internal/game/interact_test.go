package game

import "testing"

func TestPressBelowThresholdIsATap(t *testing.T) {
	s := NewGameState()
	petID := s.Pets[0].ID
	before, _ := s.PetByID(petID)

	d := BeginDrag(petID, 100, 100)
	d.Update(&s, 102, 101, Vec3{X: 9, Z: 9})
	if !d.End() {
		t.Fatalf("a press that never left the threshold should be a tap")
	}
	after, _ := s.PetByID(petID)
	if after.Position != before.Position {
		t.Fatalf("a tap moved the pet from %+v to %+v", before.Position, after.Position)
	}
}

func TestDraggedPetRestsOnTheGrid(t *testing.T) {
	s := NewGameState()
	petID := s.Pets[0].ID

	d := BeginDrag(petID, 100, 100)
	d.Update(&s, 160, 140, Vec3{X: 3.27, Z: -1.13})
	if d.End() {
		t.Fatalf("a long drag should not count as a tap")
	}
	pet, _ := s.PetByID(petID)
	if pet.Position != (Vec3{X: 3.5, Z: -1}) {
		t.Fatalf("pet rests off the grid at %+v", pet.Position)
	}
}

func TestDragSnapsEveryMove(t *testing.T) {
	s := NewGameState()
	itemID := s.PlacedItems[0].ID

	d := BeginDrag(itemID, 100, 100)
	moves := []Vec3{{X: 1.1, Z: 0.2}, {X: 2.6, Z: -0.9}, {X: 4.24, Z: 3.76}}
	for _, m := range moves {
		d.Update(&s, 200, 200, m)
		it, _ := s.ItemByID(itemID)
		wantX, wantZ := SnapToGrid(m.X, m.Z)
		if it.Position.X != wantX || it.Position.Z != wantZ {
			t.Fatalf("mid-drag position %+v is off the grid", it.Position)
		}
	}
}

func TestDragIgnoresGroundOffTheIsland(t *testing.T) {
	s := NewGameState()
	partnerID := s.Partners[0].ID
	before, _ := s.PartnerByID(partnerID)

	d := BeginDrag(partnerID, 100, 100)
	d.Update(&s, 300, 300, Vec3{X: IslandRadius + 5, Z: 0})
	after, _ := s.PartnerByID(partnerID)
	if after.Position != before.Position {
		t.Fatalf("drag moved the companion into the water at %+v", after.Position)
	}
}
