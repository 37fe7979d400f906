package gui

import (
	"fmt"
	"os"
	"time"

	"github.com/appengine-ltd/cozy-camp/internal/game"
)

const defaultSaveFile = "cozy-camp-save.json"

func loadSave(path string) (game.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return game.GameState{}, fmt.Errorf("no save at %s", path)
		}
		return game.GameState{}, fmt.Errorf("read save: %w", err)
	}
	state, err := game.DecodeSave(data)
	if err != nil {
		return game.GameState{}, err
	}
	return state, nil
}

func writeSave(path string, s *game.GameState) error {
	data, err := game.EncodeSave(s, time.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (ui *gameUI) saveNow() {
	if err := writeSave(ui.cfg.SavePath, &ui.state); err != nil {
		ui.logger.Warn("save failed", "path", ui.cfg.SavePath, "error", err)
		ui.setStatus("save failed: " + err.Error())
		return
	}
	ui.setStatus("saved")
}

func (ui *gameUI) loadNow() {
	state, err := loadSave(ui.cfg.SavePath)
	if err != nil {
		ui.logger.Warn("load failed", "path", ui.cfg.SavePath, "error", err)
		ui.setStatus("load failed")
		return
	}
	ui.state = state
	ui.selectedID = ""
	ui.drag = nil
	ui.editMode = false
	ui.rebuildObstacles()
	ui.scheduler.RecordHomes(&ui.state)
	ui.setStatus("loaded")
}
