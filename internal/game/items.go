package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// AddItem places a new instance of the blueprint near the island center,
// snapped to the placement grid, and returns the id the UI should select.
// Adding a second instance of a singleton blueprint (the mailbox) is
// refused; the existing instance's id is returned instead so the caller can
// select it.
func (s *GameState) AddItem(bp Blueprint) string {
	if s == nil {
		return ""
	}
	if bp.Singleton {
		for i := range s.PlacedItems {
			if s.PlacedItems[i].ItemID == bp.ID {
				return s.PlacedItems[i].ID
			}
		}
	}

	x, z := SnapToGrid((rand.Float64()-0.5)*6, (rand.Float64()-0.5)*6+2)
	item := PlacedItem{
		ID:       uuid.NewString(),
		ItemID:   bp.ID,
		Name:     bp.Name,
		Icon:     bp.Icon,
		Category: bp.Category,
		Position: Vec3{X: x, Z: z},
	}
	s.PlacedItems = append(s.PlacedItems, item)
	return item.ID
}

// RemoveItem deletes the instance with the given id. Unknown ids are a
// no-op, which makes singleton removal idempotent.
func (s *GameState) RemoveItem(id string) {
	if s == nil {
		return
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			s.PlacedItems = append(s.PlacedItems[:i], s.PlacedItems[i+1:]...)
			return
		}
	}
}

func (s *GameState) MoveItem(id string, pos Vec3) {
	if s == nil {
		return
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			next := s.PlacedItems[i]
			next.Position = pos
			s.PlacedItems[i] = next
			return
		}
	}
}

// RotateItem adds a yaw delta in radians. Only the yaw component of a prop
// is ever rotated.
func (s *GameState) RotateItem(id string, delta float64) {
	if s == nil {
		return
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			next := s.PlacedItems[i]
			next.Yaw += delta
			s.PlacedItems[i] = next
			return
		}
	}
}

// ToggleItemState flips a named boolean on an interactive prop, e.g. the
// camper's trunk lid or the radio's playing flag.
func (s *GameState) ToggleItemState(id, key string) {
	if s == nil {
		return
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			next := s.PlacedItems[i]
			merged := make(map[string]bool, len(next.ItemState)+1)
			for k, v := range next.ItemState {
				merged[k] = v
			}
			merged[key] = !merged[key]
			next.ItemState = merged
			s.PlacedItems[i] = next
			return
		}
	}
}

func (s *GameState) ItemByID(id string) (PlacedItem, bool) {
	if s == nil {
		return PlacedItem{}, false
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			return s.PlacedItems[i], true
		}
	}
	return PlacedItem{}, false
}
