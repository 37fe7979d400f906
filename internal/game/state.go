package game

// The island scene is one serializable snapshot. Every mutation is a method
// on *GameState that finds a record by id and replaces it wholesale; there
// are no partial patches and no cross-entity references.

type WeatherType string

const (
	WeatherSunny  WeatherType = "SUNNY"
	WeatherRainy  WeatherType = "RAINY"
	WeatherCloudy WeatherType = "CLOUDY"
	WeatherSnowy  WeatherType = "SNOWY"
)

type TimeOfDay string

const (
	TimeDay     TimeOfDay = "DAY"
	TimeSunset  TimeOfDay = "SUNSET"
	TimePink    TimeOfDay = "PINK"
	TimeNight   TimeOfDay = "NIGHT"
	TimeDawn    TimeOfDay = "DAWN"
	TimeSunrise TimeOfDay = "SUNRISE"
)

type FloorType string

const (
	FloorGrass FloorType = "GRASS"
	FloorSnow  FloorType = "SNOW"
	FloorSand  FloorType = "SAND"
	FloorDirt  FloorType = "DIRT"
)

type WaterTheme string

const (
	WaterBlue    WaterTheme = "BLUE"
	WaterEmerald WaterTheme = "EMERALD"
)

type CameraMode string

const (
	CameraIsland       CameraMode = "ISLAND"
	CameraTentInterior CameraMode = "TENT_INTERIOR"
)

type Pose string

const (
	PoseIdle Pose = "IDLE"
	PoseSit  Pose = "SIT"
	PoseLie  Pose = "LIE"
)

// Vec3 is a ground-relative world position. Y stays 0 in persisted state;
// the terrain height field is added at render/movement time.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type TentShape string

const (
	TentTriangle TentShape = "TRIANGLE"
	TentSquare   TentShape = "SQUARE"
	TentWindow   TentShape = "WINDOW"
)

type TentSize string

const (
	TentSmall  TentSize = "SMALL"
	TentMedium TentSize = "MEDIUM"
	TentLarge  TentSize = "LARGE"
)

type Tent struct {
	ID       string    `json:"id"`
	Shape    TentShape `json:"shape"`
	Size     TentSize  `json:"size"`
	Pattern  string    `json:"pattern"`
	Rug      string    `json:"rug"`
	Lit      bool      `json:"lit"`
	DoorOpen bool      `json:"door_open"`
	Position Vec3      `json:"position"`
}

type ItemCategory string

const (
	CategoryFurniture  ItemCategory = "FURNITURE"
	CategoryDecoration ItemCategory = "DECORATION"
	CategoryPlant      ItemCategory = "PLANT"
	CategoryFood       ItemCategory = "FOOD"
	CategoryVehicle    ItemCategory = "VEHICLE"
)

// PlacedItem is one instance of a catalog blueprint. ID is unique per
// instance; ItemID names the blueprint and never changes after creation.
type PlacedItem struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Category  ItemCategory    `json:"category"`
	Position  Vec3            `json:"position"`
	Yaw       float64         `json:"yaw"`
	ItemState map[string]bool `json:"item_state,omitempty"`
}

type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
)

// Avatar doubles as the player character and any partner companion. The
// player is the record whose ID equals PlayerAvatarID.
type Avatar struct {
	ID          string   `json:"id"`
	Gender      Gender   `json:"gender"`
	SkinTone    string   `json:"skin_tone"`
	Outfit      string   `json:"outfit"`
	Shoes       string   `json:"shoes"`
	Hairstyle   string   `json:"hairstyle"`
	Blush       string   `json:"blush"`
	Accessories []string `json:"accessories,omitempty"`
	Position    Vec3     `json:"position"`
	Yaw         float64  `json:"yaw"`
	Pose        Pose     `json:"pose"`
}

type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Mood        string  `json:"mood"`
	LastThought string  `json:"last_thought"`
	Icon        string  `json:"icon"`
	Position    Vec3    `json:"position"`
	Yaw         float64 `json:"yaw"`
}

const (
	PlayerAvatarID = "main_avatar"
	MaxPartners    = 3
)

type GameState struct {
	Weather     WeatherType  `json:"weather"`
	Time        TimeOfDay    `json:"time"`
	Floor       FloorType    `json:"floor"`
	WaterTheme  WaterTheme   `json:"water_theme"`
	IslandTheme string       `json:"island_theme"`
	CameraMode  CameraMode   `json:"camera_mode"`
	Tents       []Tent       `json:"tents"`
	PlacedItems []PlacedItem `json:"placed_items"`
	Avatar      Avatar       `json:"avatar"`
	Partners    []Avatar     `json:"partners,omitempty"`
	Pets        []Pet        `json:"pets,omitempty"`
}

// SpawnPosition is where the player avatar stands on a fresh island and
// after a load resets transient avatar state.
var SpawnPosition = Vec3{X: 0, Y: 0, Z: 4}

func NewGameState() GameState {
	return GameState{
		Weather:     WeatherSunny,
		Time:        TimeDay,
		Floor:       FloorGrass,
		WaterTheme:  WaterBlue,
		IslandTheme: "forest",
		CameraMode:  CameraIsland,
		Tents: []Tent{
			{
				ID:       "tent_initial",
				Shape:    TentTriangle,
				Size:     TentMedium,
				Pattern:  "ORANGE",
				Rug:      "ETHNIC",
				DoorOpen: true,
				Position: Vec3{X: 4, Z: -4},
			},
		},
		PlacedItems: starterItems(),
		Avatar: Avatar{
			ID:        PlayerAvatarID,
			Gender:    GenderFemale,
			SkinTone:  DefaultSkinTone,
			Outfit:    "JEANS_BLOUSE",
			Shoes:     "RED_CANVAS",
			Hairstyle: "PONYTAIL",
			Blush:     "NONE",
			Position:  SpawnPosition,
			Pose:      PoseIdle,
		},
		Partners: []Avatar{
			{
				ID:          "partner_initial",
				Gender:      GenderMale,
				SkinTone:    DefaultSkinTone,
				Outfit:      "BLACK_SUIT",
				Shoes:       "BLACK_SNEAKERS_M",
				Hairstyle:   "SHORT",
				Blush:       "NONE",
				Accessories: []string{"GLASSES", "WATCH"},
				Position:    Vec3{X: -2, Z: 4},
				Pose:        PoseIdle,
			},
		},
		Pets: []Pet{
			{
				ID:       "pet_initial",
				Name:     "Cloudy",
				Species:  "Maltese",
				Mood:     "Happy",
				Icon:     "🐶",
				Position: Vec3{X: -3, Z: 5},
			},
		},
	}
}

func starterItems() []PlacedItem {
	starters := []struct {
		id, itemID string
		pos        Vec3
	}{
		{"start_tree_1", "tree_pine", Vec3{X: 0, Z: -6}},
		{"start_tree_2", "tree_zelkova", Vec3{X: -8, Z: -5}},
		{"start_tree_3", "tree_round", Vec3{X: 9, Z: 2}},
	}
	items := make([]PlacedItem, 0, len(starters))
	for _, st := range starters {
		bp, ok := BlueprintByID(st.itemID)
		if !ok {
			continue
		}
		items = append(items, PlacedItem{
			ID:       st.id,
			ItemID:   bp.ID,
			Name:     bp.Name,
			Icon:     bp.Icon,
			Category: bp.Category,
			Position: st.pos,
		})
	}
	return items
}

func (s *GameState) SetWeather(w WeatherType) {
	if s == nil {
		return
	}
	s.Weather = w
}

func (s *GameState) SetTime(t TimeOfDay) {
	if s == nil {
		return
	}
	s.Time = t
}

func (s *GameState) SetFloor(f FloorType) {
	if s == nil {
		return
	}
	s.Floor = f
}

func (s *GameState) SetWaterTheme(w WaterTheme) {
	if s == nil {
		return
	}
	s.WaterTheme = w
}

func (s *GameState) SetIslandTheme(theme string) {
	if s == nil {
		return
	}
	s.IslandTheme = theme
}

func (s *GameState) SetCameraMode(mode CameraMode) {
	if s == nil {
		return
	}
	s.CameraMode = mode
}

// EntityKind discriminates what a scene id refers to so callers dispatch
// once instead of probing every collection.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindItem
	KindTent
	KindPet
	KindPartner
	KindPlayer
)

func (s *GameState) KindOf(id string) EntityKind {
	if s == nil || id == "" {
		return KindUnknown
	}
	if id == s.Avatar.ID {
		return KindPlayer
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			return KindPartner
		}
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			return KindPet
		}
	}
	for i := range s.Tents {
		if s.Tents[i].ID == id {
			return KindTent
		}
	}
	for i := range s.PlacedItems {
		if s.PlacedItems[i].ID == id {
			return KindItem
		}
	}
	return KindUnknown
}

// MoveEntity relocates any movable entity by id, used by the drag layer.
// Unknown ids are ignored.
func (s *GameState) MoveEntity(id string, pos Vec3) {
	switch s.KindOf(id) {
	case KindItem:
		s.MoveItem(id, pos)
	case KindTent:
		s.MoveTent(id, pos)
	case KindPet:
		s.MovePet(id, pos)
	case KindPartner:
		s.MovePartner(id, pos)
	case KindPlayer:
		s.Avatar.Position = pos
	}
}

// RotateEntity applies a yaw delta (radians) to any rotatable entity.
func (s *GameState) RotateEntity(id string, delta float64) {
	switch s.KindOf(id) {
	case KindItem:
		s.RotateItem(id, delta)
	case KindPet:
		s.RotatePet(id, delta)
	case KindPartner:
		s.RotatePartner(id, delta)
	case KindPlayer:
		s.Avatar.Yaw += delta
	}
}

// RemoveEntity dismisses any removable entity by id. Tents keep their
// last-one-stays rule; the player avatar is never removable.
func (s *GameState) RemoveEntity(id string) {
	switch s.KindOf(id) {
	case KindItem:
		s.RemoveItem(id)
	case KindTent:
		s.RemoveTent(id)
	case KindPet:
		s.RemovePet(id)
	case KindPartner:
		s.RemovePartner(id)
	}
}
