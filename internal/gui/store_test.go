package gui

import (
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/cozy-camp/internal/game"
)

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	state := game.NewGameState()
	state.SetWeather(game.WeatherRainy)
	state.AddTent()

	if err := writeSave(path, &state); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := loadSave(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Weather != game.WeatherRainy {
		t.Fatalf("weather lost in the file round trip: %s", loaded.Weather)
	}
	if len(loaded.Tents) != len(state.Tents) {
		t.Fatalf("tent count changed: %d vs %d", len(loaded.Tents), len(state.Tents))
	}
}

func TestLoadMissingSaveFails(t *testing.T) {
	if _, err := loadSave(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected an error for a missing save file")
	}
}

func TestTimeOfDayCyclesThroughEveryPhase(t *testing.T) {
	seen := map[game.TimeOfDay]bool{}
	cur := game.TimeDay
	for range 6 {
		seen[cur] = true
		cur = nextTime(cur)
	}
	if len(seen) != 6 {
		t.Fatalf("time cycle repeated early, saw %d phases", len(seen))
	}
	if cur != game.TimeDay {
		t.Fatalf("expected the cycle to wrap back to day, got %s", cur)
	}
	if nextTime("WEIRD") != game.TimeDay {
		t.Fatalf("unknown phases should reset to day")
	}
}
