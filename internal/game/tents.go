package game

import "math/rand/v2"

// Tent wardrobe tables. The presentation layer maps these tags to fabric
// and rug textures.
var (
	TentPatterns = []string{"ORANGE", "RED", "DOTS", "RAINBOW", "HEARTS", "YELLOW_STARS", "KHAKI_OUTDOOR"}
	TentRugs     = []string{"ETHNIC", "BLUE_FUR", "SILVER", "VINTAGE"}
)

// tentRadii are the obstacle footprints per size class; they track the
// visual scale steps of the tent model.
var tentRadii = map[TentSize]float64{
	TentSmall:  1.2,
	TentMedium: 1.6,
	TentLarge:  2.1,
}

const defaultTentRadius = 1.6

func TentRadius(size TentSize) float64 {
	if r, ok := tentRadii[size]; ok {
		return r
	}
	return defaultTentRadius
}

// InteriorOffset is where the avatar rests relative to a tent's center when
// entering it; larger tents seat the avatar deeper inside.
func (t Tent) InteriorOffset() Vec3 {
	switch t.Size {
	case TentSmall:
		return Vec3{Z: -0.3}
	case TentLarge:
		return Vec3{Z: -0.8}
	default:
		return Vec3{Z: -0.5}
	}
}

func (s *GameState) AddTent() string {
	if s == nil {
		return ""
	}
	tent := Tent{
		ID:       "tent_" + randomSuffix(),
		Shape:    TentTriangle,
		Size:     TentMedium,
		Pattern:  "ORANGE",
		Rug:      "ETHNIC",
		DoorOpen: true,
		Position: Vec3{X: (rand.Float64() - 0.5) * 6, Z: (rand.Float64() - 0.5) * 6},
	}
	s.Tents = append(s.Tents, tent)
	return tent.ID
}

// RemoveTent deletes a tent by id. The last tent always stays so the
// enter-tent interaction keeps a target; the refused removal is a silent
// no-op.
func (s *GameState) RemoveTent(id string) {
	if s == nil || len(s.Tents) <= 1 {
		return
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			s.Tents = append(s.Tents[:i], s.Tents[i+1:]...)
			return
		}
	}
}

// UpdateTent replaces styling fields on the tent with the given id. Zero
// values mean "leave alone" for the string fields, and a pattern or rug
// outside the known tables is ignored; the flags are set explicitly via
// their own methods.
func (s *GameState) UpdateTent(id string, shape TentShape, size TentSize, pattern, rug string) {
	if s == nil {
		return
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			next := s.Tents[i]
			if shape != "" {
				next.Shape = shape
			}
			if size != "" {
				next.Size = size
			}
			if pattern != "" && containsString(TentPatterns, pattern) {
				next.Pattern = pattern
			}
			if rug != "" && containsString(TentRugs, rug) {
				next.Rug = rug
			}
			s.Tents[i] = next
			return
		}
	}
}

func (s *GameState) MoveTent(id string, pos Vec3) {
	if s == nil {
		return
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			next := s.Tents[i]
			next.Position = pos
			s.Tents[i] = next
			return
		}
	}
}

func (s *GameState) SetTentLit(id string, lit bool) {
	if s == nil {
		return
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			next := s.Tents[i]
			next.Lit = lit
			s.Tents[i] = next
			return
		}
	}
}

func (s *GameState) ToggleTentDoor(id string) {
	if s == nil {
		return
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			next := s.Tents[i]
			next.DoorOpen = !next.DoorOpen
			s.Tents[i] = next
			return
		}
	}
}

func (s *GameState) TentByID(id string) (Tent, bool) {
	if s == nil {
		return Tent{}, false
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			return s.Tents[i], true
		}
	}
	return Tent{}, false
}
