package game

// Obstacle is a solid circle on the ground plane that movement must
// route around. Height never matters for collision on the island.
type Obstacle struct {
	X      float64
	Z      float64
	Radius float64
}

// BuildObstacles derives the collision set from the current scene.
// Food props are walkable so pets can reach their snacks, and items
// whose blueprint declares a zero radius never block movement.
func BuildObstacles(s *GameState) []Obstacle {
	if s == nil {
		return nil
	}
	obs := make([]Obstacle, 0, len(s.PlacedItems)+len(s.Tents))
	for i := range s.PlacedItems {
		it := &s.PlacedItems[i]
		if it.Category == CategoryFood {
			continue
		}
		r := CollisionRadius(it.ItemID)
		if r <= 0 {
			continue
		}
		obs = append(obs, Obstacle{X: it.Position.X, Z: it.Position.Z, Radius: r})
	}
	for i := range s.Tents {
		t := &s.Tents[i]
		obs = append(obs, Obstacle{X: t.Position.X, Z: t.Position.Z, Radius: TentRadius(t.Size)})
	}
	return obs
}
