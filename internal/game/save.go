package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agnivade/levenshtein"
)

// SaveFormatVersion is bumped whenever the save shape changes in a way
// DecodeSave has to migrate.
const SaveFormatVersion = 2

// savedGame wraps the scene snapshot with save metadata. Version 1 saves
// were the bare snapshot with a singular tent field; DecodeSave accepts
// both shapes.
type savedGame struct {
	FormatVersion int       `json:"format_version"`
	SavedAt       time.Time `json:"saved_at"`
	Game          GameState `json:"game"`
}

var ErrNoAvatar = errors.New("save has no avatar")

// EncodeSave serializes the scene in the current save format.
func EncodeSave(s *GameState, now time.Time) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil game state")
	}
	return json.MarshalIndent(savedGame{
		FormatVersion: SaveFormatVersion,
		SavedAt:       now.UTC(),
		Game:          *s,
	}, "", "  ")
}

// DecodeSave parses a save blob of any known vintage, migrates it to the
// current shape, and resets transient state so the player always loads
// standing at the spawn point on the island camera.
func DecodeSave(data []byte) (GameState, error) {
	var wrapped savedGame
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return GameState{}, fmt.Errorf("parse save: %w", err)
	}

	game := wrapped.Game
	if wrapped.FormatVersion == 0 {
		// Bare legacy blob. Re-parse the whole payload as the snapshot.
		if err := json.Unmarshal(data, &game); err != nil {
			return GameState{}, fmt.Errorf("parse legacy save: %w", err)
		}
		migrateLegacyTent(data, &game)
	}

	if game.Avatar.ID == "" {
		return GameState{}, ErrNoAvatar
	}

	migrateState(&game)
	resetTransient(&game)
	return game, nil
}

// migrateLegacyTent lifts a version-1 singular "tent" object into the
// tents slice when the slice is empty.
func migrateLegacyTent(data []byte, game *GameState) {
	if len(game.Tents) > 0 {
		return
	}
	var legacy struct {
		Tent *Tent `json:"tent"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil || legacy.Tent == nil {
		return
	}
	t := *legacy.Tent
	if t.ID == "" {
		t.ID = "tent_initial"
	}
	game.Tents = []Tent{t}
}

func migrateState(game *GameState) {
	if len(game.Tents) == 0 {
		game.Tents = NewGameState().Tents
	}
	if game.Weather == "" {
		game.Weather = WeatherSunny
	}
	if game.Time == "" {
		game.Time = TimeDay
	}
	if game.Floor == "" {
		game.Floor = FloorGrass
	}
	if game.WaterTheme == "" {
		game.WaterTheme = WaterBlue
	}
	if game.IslandTheme == "" {
		game.IslandTheme = "forest"
	}
	game.Avatar = migrateAvatar(game.Avatar)
	for i := range game.Partners {
		game.Partners[i] = migrateAvatar(game.Partners[i])
	}
	if len(game.Partners) > MaxPartners {
		game.Partners = game.Partners[:MaxPartners]
	}
}

// migrateAvatar fills wardrobe fields added after a save was written and
// coerces values that fell out of the enumerated sets, matching the
// nearest current value by edit distance.
func migrateAvatar(a Avatar) Avatar {
	if a.Gender == "" {
		a.Gender = GenderFemale
	}
	if a.SkinTone == "" {
		a.SkinTone = DefaultSkinTone
	}
	a.SkinTone = coerceEnum(a.SkinTone, SkinTones, DefaultSkinTone)
	a.Outfit = coerceEnum(a.Outfit, Outfits, defaultOutfitFor(a.Gender))
	a.Shoes = coerceEnum(a.Shoes, Shoes, defaultShoesFor(a.Gender))
	a.Hairstyle = coerceEnum(a.Hairstyle, Hairstyles, defaultHairstyleFor(a.Gender))
	if a.Blush == "" {
		a.Blush = DefaultBlush
	}
	a.Blush = coerceEnum(a.Blush, Blushes, DefaultBlush)
	kept := a.Accessories[:0]
	for _, acc := range a.Accessories {
		if containsString(Accessories, acc) {
			kept = append(kept, acc)
		}
	}
	a.Accessories = kept
	return a
}

// coerceEnum maps a possibly renamed value onto the current set. Values
// already in the set pass through; close misses (old spellings) snap to
// their nearest neighbor; anything else falls back to the default.
func coerceEnum(v string, set []string, fallback string) string {
	if v == "" {
		return fallback
	}
	if containsString(set, v) {
		return v
	}
	best := fallback
	bestDist := len(v)/2 + 1
	for _, candidate := range set {
		if d := levenshtein.ComputeDistance(v, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// resetTransient clears state that should never survive a reload.
func resetTransient(game *GameState) {
	game.CameraMode = CameraIsland
	game.Avatar.Position = SpawnPosition
	game.Avatar.Pose = PoseIdle
	for i := range game.Partners {
		game.Partners[i].Pose = PoseIdle
	}
	for i := range game.Pets {
		game.Pets[i].LastThought = ""
	}
}
