package gui

import (
	"context"
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cozy-camp/internal/game"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	SavePath  string
	Seed      int64
	Thoughts  game.ThoughtGenerator
	Logger    *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg    AppConfig
	logger *slog.Logger

	width  int32
	height int32
	quit   bool

	state     game.GameState
	steering  game.Steering
	scheduler *game.Scheduler
	obstacles []game.Obstacle

	editMode   bool
	selectedID string
	drag       *game.DragSession
	menu       *actionMenu

	paletteOpen   bool
	paletteCursor int
	petCursor     int

	status       string
	statusUntil  time.Time
	atmosphereCh chan string

	lastTick time.Time
	ctx      context.Context
	cancel   context.CancelFunc
}

// actionMenu is the floating contextual menu opened by tapping an entity
// that offers more than one thing to do, like a sunbed (sit or lie) or a
// nearby tent.
type actionMenu struct {
	title   string
	entries []menuEntry
	cursor  int
}

type menuEntry struct {
	label string
	run   func()
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	defer ui.cancel()
	return ui.Run()
}

func newGameUI(cfg AppConfig) *gameUI {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SavePath == "" {
		cfg.SavePath = defaultSaveFile
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui := &gameUI{
		cfg:          cfg,
		logger:       logger,
		width:        1280,
		height:       720,
		scheduler:    game.NewScheduler(cfg.Seed, cfg.Thoughts, logger),
		atmosphereCh: make(chan string, 1),
		ctx:          ctx,
		cancel:       cancel,
	}
	state, err := loadSave(cfg.SavePath)
	if err != nil {
		logger.Warn("starting fresh island", "path", cfg.SavePath, "error", err)
		state = game.NewGameState()
	}
	ui.state = state
	ui.rebuildObstacles()
	ui.scheduler.RecordHomes(&ui.state)
	ui.lastTick = time.Now()
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "cozy-camp")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta.Seconds())

		rl.BeginDrawing()
		rl.ClearBackground(skyColor(ui.state.Time))
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(dt float64) {
	select {
	case line := <-ui.atmosphereCh:
		ui.setStatus(line)
	default:
	}

	ui.handleHotkeys()
	ui.handleMouse()

	if !ui.editMode && ui.menu == nil && ui.state.CameraMode == game.CameraIsland {
		in := game.MoveInput{
			Forward:  rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
			Backward: rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
			Left:     rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
			Right:    rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
			Jump:     rl.IsKeyPressed(rl.KeySpace),
		}
		ui.steering.Step(&ui.state, ui.obstacles, in, dt)
	}

	ui.scheduler.Advance(&ui.state, ui.editMode, dt)
}

func (ui *gameUI) handleHotkeys() {
	if ui.menu != nil {
		ui.handleMenuKeys()
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		if ui.paletteOpen {
			ui.paletteOpen = false
		} else if ui.editMode {
			ui.exitEditMode()
		} else if ui.state.CameraMode == game.CameraTentInterior {
			ui.state.SetCameraMode(game.CameraIsland)
			ui.state.SetAvatarPose(game.PoseIdle)
		} else {
			ui.quit = true
		}
	case rl.IsKeyPressed(rl.KeyE):
		if ui.editMode {
			ui.exitEditMode()
		} else {
			ui.editMode = true
			ui.steering.ClearTarget()
			ui.setStatus("edit mode")
		}
	case rl.IsKeyPressed(rl.KeyB):
		ui.paletteOpen = !ui.paletteOpen
	case rl.IsKeyPressed(rl.KeyF5):
		ui.saveNow()
	case rl.IsKeyPressed(rl.KeyF9):
		ui.loadNow()
	case rl.IsKeyPressed(rl.KeyOne):
		ui.state.SetWeather(game.WeatherSunny)
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyTwo):
		ui.state.SetWeather(game.WeatherRainy)
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyThree):
		ui.state.SetWeather(game.WeatherCloudy)
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyFour):
		ui.state.SetWeather(game.WeatherSnowy)
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyT):
		ui.state.SetTime(nextTime(ui.state.Time))
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyF):
		ui.state.SetFloor(nextFloor(ui.state.Floor))
		ui.setStatus("ground: " + string(ui.state.Floor))
	case rl.IsKeyPressed(rl.KeyV):
		if ui.state.WaterTheme == game.WaterBlue {
			ui.state.SetWaterTheme(game.WaterEmerald)
		} else {
			ui.state.SetWaterTheme(game.WaterBlue)
		}
		ui.setStatus("water: " + string(ui.state.WaterTheme))
	case rl.IsKeyPressed(rl.KeyG):
		ui.state.SetIslandTheme(cycleString(islandThemes, ui.state.IslandTheme))
		ui.setStatus("theme: " + ui.state.IslandTheme)
		ui.requestAtmosphere()
	case rl.IsKeyPressed(rl.KeyQ):
		if ui.state.Avatar.Pose != game.PoseIdle {
			ui.state.SetAvatarPose(game.PoseIdle)
			if ui.state.CameraMode == game.CameraTentInterior {
				ui.state.SetCameraMode(game.CameraIsland)
			}
		}
	case rl.IsKeyPressed(rl.KeyP):
		ui.adoptPet()
	case rl.IsKeyPressed(rl.KeyN):
		ui.invitePartner()
	case rl.IsKeyPressed(rl.KeyY):
		id := ui.state.AddTent()
		ui.selectedID = id
		ui.editMode = true
		ui.rebuildObstacles()
		ui.setStatus("pitched a tent")
	case rl.IsKeyPressed(rl.KeyH):
		ui.cycleHairstyle()
	case rl.IsKeyPressed(rl.KeyU):
		ui.cycleOutfit()
	case rl.IsKeyPressed(rl.KeyJ):
		ui.state.ToggleAccessory(ui.styleTargetID(), "HAT")
	case rl.IsKeyPressed(rl.KeyC):
		if t, ok := ui.selectedTent(); ok {
			ui.state.UpdateTent(t.ID, "", "", cycleString(game.TentPatterns, t.Pattern), "")
		}
	case rl.IsKeyPressed(rl.KeyX):
		if t, ok := ui.selectedTent(); ok {
			ui.state.UpdateTent(t.ID, "", "", "", cycleString(game.TentRugs, t.Rug))
		}
	case rl.IsKeyPressed(rl.KeyM):
		if t, ok := ui.selectedTent(); ok {
			ui.state.UpdateTent(t.ID, "", nextTentSize(t.Size), "", "")
			ui.rebuildObstacles()
		}
	case rl.IsKeyPressed(rl.KeyL):
		if ui.editMode && ui.selectedID != "" {
			if t, ok := ui.state.TentByID(ui.selectedID); ok {
				ui.state.SetTentLit(t.ID, !t.Lit)
			}
		}
	case rl.IsKeyPressed(rl.KeyR):
		if ui.editMode && ui.selectedID != "" {
			ui.state.RotateEntity(ui.selectedID, game.RotateStep)
		}
	case rl.IsKeyPressed(rl.KeyDelete), rl.IsKeyPressed(rl.KeyBackspace):
		if ui.editMode && ui.selectedID != "" {
			ui.removeSelected()
		}
	}

	if ui.paletteOpen {
		ui.handlePaletteKeys()
	}
}

func (ui *gameUI) handlePaletteKeys() {
	catalog := game.Catalog()
	if rl.IsKeyPressed(rl.KeyPageDown) {
		ui.paletteCursor = (ui.paletteCursor + 1) % len(catalog)
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		ui.paletteCursor = (ui.paletteCursor - 1 + len(catalog)) % len(catalog)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		bp := catalog[ui.paletteCursor]
		id := ui.state.AddItem(bp)
		ui.selectedID = id
		ui.editMode = true
		ui.rebuildObstacles()
		ui.setStatus("placed " + bp.Name)
	}
}

func (ui *gameUI) handleMenuKeys() {
	n := len(ui.menu.entries)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.menu = nil
	case rl.IsKeyPressed(rl.KeyDown):
		ui.menu.cursor = (ui.menu.cursor + 1) % n
	case rl.IsKeyPressed(rl.KeyUp):
		ui.menu.cursor = (ui.menu.cursor - 1 + n) % n
	case rl.IsKeyPressed(rl.KeyEnter):
		entry := ui.menu.entries[ui.menu.cursor]
		ui.menu = nil
		entry.run()
	}
}

func (ui *gameUI) exitEditMode() {
	ui.editMode = false
	ui.selectedID = ""
	ui.drag = nil
	ui.rebuildObstacles()
	ui.scheduler.RecordHomes(&ui.state)
	ui.setStatus("camp saved in place")
}

func (ui *gameUI) removeSelected() {
	id := ui.selectedID
	if ui.state.KindOf(id) == game.KindTent && len(ui.state.Tents) <= 1 {
		ui.setStatus("the last tent stays")
		return
	}
	ui.state.RemoveEntity(id)
	ui.selectedID = ""
	ui.rebuildObstacles()
}

// requestAtmosphere asks for a one-line mood caption matching the new
// weather or time. Best effort; silence just means no caption.
func (ui *gameUI) requestAtmosphere() {
	if ui.cfg.Thoughts == nil {
		return
	}
	theme := ui.state.IslandTheme
	weather, tod := ui.state.Weather, ui.state.Time
	go func() {
		line, err := ui.cfg.Thoughts.Atmosphere(ui.ctx, theme, weather, tod)
		if err != nil {
			ui.logger.Debug("atmosphere caption failed", "error", err)
			return
		}
		select {
		case ui.atmosphereCh <- line:
		default:
		}
	}()
}

func (ui *gameUI) handleMouse() {
	pos := rl.GetMousePosition()

	if ui.menu != nil {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			ui.menu = nil
		}
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		ui.steering.ClearTarget()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		id := ui.pickEntity(pos)
		if ui.editMode {
			if id != "" {
				ui.selectedID = id
				ui.drag = game.BeginDrag(id, float64(pos.X), float64(pos.Y))
			} else {
				ui.selectedID = ""
			}
			return
		}
		if id == "" {
			if ui.state.Avatar.Pose != game.PoseIdle {
				return
			}
			if ground, ok := ui.groundAt(pos); ok && game.InsideIsland(ground.X, ground.Z) {
				ui.steering.SetTarget(ground)
			}
			return
		}
		ui.tap(id)
		return
	}

	if ui.drag == nil {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if ground, ok := ui.groundAt(pos); ok {
			ui.drag.Update(&ui.state, float64(pos.X), float64(pos.Y), ground)
		}
		return
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		ui.drag.End()
		ui.drag = nil
		ui.rebuildObstacles()
	}
}

// tap runs the contextual action for clicking an entity outside edit mode.
func (ui *gameUI) tap(id string) {
	switch ui.state.KindOf(id) {
	case game.KindPet:
		ui.scheduler.TapPet(ui.ctx, &ui.state, id)
	case game.KindPartner:
		ui.scheduler.TapCompanion(&ui.state, id)
	case game.KindTent:
		if t, ok := ui.state.TentByID(id); ok {
			near := math.Hypot(
				ui.state.Avatar.Position.X-t.Position.X,
				ui.state.Avatar.Position.Z-t.Position.Z,
			) < game.TentRadius(t.Size)+1.5
			if near {
				ui.openTentMenu(t)
			} else {
				ui.state.ToggleTentDoor(id)
			}
		}
	case game.KindItem:
		ui.openItemMenu(id)
	}
}

// openItemMenu pops the contextual menu for a prop. Single-action props
// act right away; posable props let the player choose sit or lie.
func (ui *gameUI) openItemMenu(id string) {
	opts := ui.state.ItemActions(id)
	if len(opts) == 0 {
		return
	}
	if len(opts) == 1 {
		ui.state.ApplyItemAction(id, opts[0])
		return
	}
	it, ok := ui.state.ItemByID(id)
	if !ok {
		return
	}
	entries := make([]menuEntry, 0, len(opts))
	for _, opt := range opts {
		entries = append(entries, menuEntry{
			label: actionLabel(opt),
			run: func() {
				ui.steering.ClearTarget()
				ui.state.ApplyItemAction(id, opt)
			},
		})
	}
	ui.menu = &actionMenu{title: it.Name, entries: entries}
}

func (ui *gameUI) openTentMenu(t game.Tent) {
	doorLabel := "Open door"
	if t.DoorOpen {
		doorLabel = "Close door"
	}
	ui.menu = &actionMenu{
		title: "Tent",
		entries: []menuEntry{
			{label: "Enter and rest", run: func() {
				ui.steering.ClearTarget()
				if !t.DoorOpen {
					ui.state.ToggleTentDoor(t.ID)
				}
				ui.state.SetCameraMode(game.CameraTentInterior)
				ui.state.SetAvatarPose(game.PoseSit)
			}},
			{label: doorLabel, run: func() {
				ui.state.ToggleTentDoor(t.ID)
			}},
		},
	}
}

func actionLabel(act game.ItemAction) string {
	switch act {
	case game.ActionSit:
		return "Sit"
	case game.ActionLie:
		return "Lie down"
	case game.ActionTrunk:
		return "Open trunk"
	case game.ActionRadio:
		return "Toggle radio"
	}
	return string(act)
}

func (ui *gameUI) adoptPet() {
	sp := game.PetSpeciesList[ui.petCursor%len(game.PetSpeciesList)]
	ui.petCursor++
	ui.state.AddPet(sp.Species, sp.Icon)
	ui.scheduler.RecordHomes(&ui.state)
	ui.setStatus("adopted a " + sp.Species)
}

func (ui *gameUI) invitePartner() {
	g := game.GenderFemale
	if len(ui.state.Partners)%2 == 1 {
		g = game.GenderMale
	}
	id := ui.state.AddPartner(g)
	if id == "" {
		ui.setStatus("the campsite is full")
		return
	}
	ui.scheduler.RecordHomes(&ui.state)
	ui.setStatus("a friend joined the camp")
}

// styleTargetID picks who wardrobe hotkeys apply to: the selected
// companion in edit mode, otherwise the player.
func (ui *gameUI) styleTargetID() string {
	if ui.editMode && ui.state.KindOf(ui.selectedID) == game.KindPartner {
		return ui.selectedID
	}
	return game.PlayerAvatarID
}

func (ui *gameUI) cycleHairstyle() {
	id := ui.styleTargetID()
	if id == game.PlayerAvatarID {
		ui.state.RestyleAvatar(game.AvatarStyle{Hairstyle: cycleString(game.Hairstyles, ui.state.Avatar.Hairstyle)})
		return
	}
	if p, ok := ui.state.PartnerByID(id); ok {
		ui.state.RestylePartner(id, game.AvatarStyle{Hairstyle: cycleString(game.Hairstyles, p.Hairstyle)})
	}
}

func (ui *gameUI) cycleOutfit() {
	id := ui.styleTargetID()
	if id == game.PlayerAvatarID {
		ui.state.RestyleAvatar(game.AvatarStyle{Outfit: cycleString(game.Outfits, ui.state.Avatar.Outfit)})
		return
	}
	if p, ok := ui.state.PartnerByID(id); ok {
		ui.state.RestylePartner(id, game.AvatarStyle{Outfit: cycleString(game.Outfits, p.Outfit)})
	}
}

func (ui *gameUI) selectedTent() (game.Tent, bool) {
	if !ui.editMode || ui.selectedID == "" {
		return game.Tent{}, false
	}
	return ui.state.TentByID(ui.selectedID)
}

func (ui *gameUI) rebuildObstacles() {
	ui.obstacles = game.BuildObstacles(&ui.state)
}

func (ui *gameUI) setStatus(msg string) {
	ui.status = msg
	ui.statusUntil = time.Now().Add(3 * time.Second)
}

func nextTime(t game.TimeOfDay) game.TimeOfDay {
	order := []game.TimeOfDay{
		game.TimeDay, game.TimeSunset, game.TimePink,
		game.TimeNight, game.TimeDawn, game.TimeSunrise,
	}
	for i, cur := range order {
		if cur == t {
			return order[(i+1)%len(order)]
		}
	}
	return game.TimeDay
}

func nextFloor(f game.FloorType) game.FloorType {
	order := []game.FloorType{
		game.FloorGrass, game.FloorSnow, game.FloorSand, game.FloorDirt,
	}
	for i, cur := range order {
		if cur == f {
			return order[(i+1)%len(order)]
		}
	}
	return game.FloorGrass
}

func nextTentSize(sz game.TentSize) game.TentSize {
	order := []game.TentSize{game.TentSmall, game.TentMedium, game.TentLarge}
	for i, cur := range order {
		if cur == sz {
			return order[(i+1)%len(order)]
		}
	}
	return game.TentMedium
}

var islandThemes = []string{"forest", "sakura", "autumn", "lavender"}

// cycleString steps to the next entry in an enumerated table, wrapping at
// the end. An unknown current value lands on the first entry.
func cycleString(list []string, cur string) string {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
