package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cozy-camp/internal/game"
)

const pickRadiusPx = 28.0

var (
	colorWaterBlue    = rl.NewColor(64, 140, 220, 255)
	colorWaterEmerald = rl.NewColor(52, 180, 150, 255)
	colorGrass        = rl.NewColor(96, 168, 82, 255)
	colorSnow         = rl.NewColor(235, 240, 245, 255)
	colorSand         = rl.NewColor(222, 202, 148, 255)
	colorDirt         = rl.NewColor(150, 112, 74, 255)
	colorTent         = rl.NewColor(232, 136, 62, 255)
	colorTrunk        = rl.NewColor(110, 78, 48, 255)
	colorLeaf         = rl.NewColor(52, 128, 64, 255)
	colorAvatar       = rl.NewColor(240, 200, 170, 255)
	colorPartner      = rl.NewColor(200, 180, 230, 255)
	colorPet          = rl.NewColor(250, 248, 240, 255)
	colorSelect       = rl.NewColor(255, 230, 90, 255)
	colorHUD          = rl.NewColor(30, 34, 40, 220)
	colorHUDText      = rl.NewColor(240, 240, 235, 255)
)

func skyColor(t game.TimeOfDay) rl.Color {
	switch t {
	case game.TimeSunset:
		return rl.NewColor(250, 160, 90, 255)
	case game.TimePink:
		return rl.NewColor(245, 170, 200, 255)
	case game.TimeNight:
		return rl.NewColor(24, 30, 58, 255)
	case game.TimeDawn:
		return rl.NewColor(120, 120, 170, 255)
	case game.TimeSunrise:
		return rl.NewColor(255, 200, 140, 255)
	default:
		return rl.NewColor(140, 200, 245, 255)
	}
}

func floorColor(f game.FloorType) rl.Color {
	switch f {
	case game.FloorSnow:
		return colorSnow
	case game.FloorSand:
		return colorSand
	case game.FloorDirt:
		return colorDirt
	default:
		return colorGrass
	}
}

func vec3(v game.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func (ui *gameUI) camera() rl.Camera3D {
	av := ui.state.Avatar.Position
	if ui.state.CameraMode == game.CameraTentInterior {
		if len(ui.state.Tents) > 0 {
			t := ui.state.Tents[0]
			off := t.InteriorOffset()
			return rl.Camera3D{
				Position:   rl.NewVector3(float32(t.Position.X), 1.6, float32(t.Position.Z+3)),
				Target:     rl.NewVector3(float32(t.Position.X+off.X), 0.6, float32(t.Position.Z+off.Z)),
				Up:         rl.NewVector3(0, 1, 0),
				Fovy:       50,
				Projection: rl.CameraPerspective,
			}
		}
	}
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(av.X), float32(av.Y+9), float32(av.Z+11)),
		Target:     rl.NewVector3(float32(av.X), float32(av.Y+0.5), float32(av.Z)),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// groundAt intersects the mouse ray with the ground plane.
func (ui *gameUI) groundAt(mouse rl.Vector2) (game.Vec3, bool) {
	ray := rl.GetMouseRay(mouse, ui.camera())
	if ray.Direction.Y >= 0 {
		return game.Vec3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	return game.Vec3{
		X: float64(ray.Position.X + ray.Direction.X*t),
		Z: float64(ray.Position.Z + ray.Direction.Z*t),
	}, true
}

// pickEntity returns the id of the entity nearest the cursor on screen,
// or "" when nothing is close enough.
func (ui *gameUI) pickEntity(mouse rl.Vector2) string {
	cam := ui.camera()
	best := ""
	bestDist := pickRadiusPx
	consider := func(id string, pos game.Vec3, lift float64) {
		p := rl.GetWorldToScreen(rl.NewVector3(float32(pos.X), float32(pos.Y+lift), float32(pos.Z)), cam)
		d := math.Hypot(float64(p.X-mouse.X), float64(p.Y-mouse.Y))
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	for i := range ui.state.Pets {
		consider(ui.state.Pets[i].ID, ui.state.Pets[i].Position, 0.3)
	}
	for i := range ui.state.Partners {
		consider(ui.state.Partners[i].ID, ui.state.Partners[i].Position, 0.8)
	}
	for i := range ui.state.PlacedItems {
		consider(ui.state.PlacedItems[i].ID, ui.state.PlacedItems[i].Position, 0.4)
	}
	for i := range ui.state.Tents {
		consider(ui.state.Tents[i].ID, ui.state.Tents[i].Position, 0.8)
	}
	return best
}

func (ui *gameUI) draw() {
	cam := ui.camera()
	rl.BeginMode3D(cam)
	ui.drawIsland()
	ui.drawTents()
	ui.drawItems()
	ui.drawAvatars()
	ui.drawPets()
	rl.EndMode3D()

	ui.drawBubbles(cam)
	ui.drawHUD()
}

func (ui *gameUI) drawIsland() {
	water := colorWaterBlue
	if ui.state.WaterTheme == game.WaterEmerald {
		water = colorWaterEmerald
	}
	rl.DrawPlane(rl.NewVector3(0, -0.35, 0), rl.NewVector2(200, 200), water)
	rl.DrawCylinder(rl.NewVector3(0, -0.3, 0), game.IslandRadius, game.IslandRadius+1.5, 0.3, 48, floorColor(ui.state.Floor))
	// Raised rim ring where the height field climbs toward the shore.
	rl.DrawCylinder(rl.NewVector3(0, 0, 0), game.IslandRadius, game.IslandRadius, float32(game.RimHeight), 48, rl.Fade(floorColor(ui.state.Floor), 0.35))
}

func (ui *gameUI) drawTents() {
	for i := range ui.state.Tents {
		t := &ui.state.Tents[i]
		h := float32(1.4)
		r := float32(game.TentRadius(t.Size))
		base := vec3(t.Position)
		rl.DrawCylinder(base, 0, r, h, 4, colorTent)
		if t.Lit {
			rl.DrawSphere(rl.NewVector3(base.X, h*0.4, base.Z), 0.15, rl.Fade(rl.Yellow, 0.8))
		}
		if t.ID == ui.selectedID {
			rl.DrawCircle3D(rl.NewVector3(base.X, 0.02, base.Z), r+0.2, rl.NewVector3(1, 0, 0), 90, colorSelect)
		}
	}
}

func (ui *gameUI) drawItems() {
	for i := range ui.state.PlacedItems {
		it := &ui.state.PlacedItems[i]
		pos := it.Position
		pos.Y = game.HeightAt(pos.X, pos.Z)
		base := vec3(pos)
		switch it.Category {
		case game.CategoryPlant:
			rl.DrawCylinder(base, 0.12, 0.18, 0.9, 8, colorTrunk)
			rl.DrawSphere(rl.NewVector3(base.X, base.Y+1.3, base.Z), 0.7, colorLeaf)
		case game.CategoryVehicle:
			rl.DrawCube(rl.NewVector3(base.X, base.Y+0.6, base.Z), 2.8, 1.2, 1.6, rl.NewColor(230, 230, 225, 255))
		case game.CategoryFood:
			rl.DrawSphere(rl.NewVector3(base.X, base.Y+0.12, base.Z), 0.12, rl.NewColor(220, 120, 90, 255))
		case game.CategoryDecoration:
			rl.DrawSphere(rl.NewVector3(base.X, base.Y+0.3, base.Z), 0.3, rl.NewColor(180, 190, 210, 255))
		default:
			rl.DrawCube(rl.NewVector3(base.X, base.Y+0.3, base.Z), 0.8, 0.6, 0.8, rl.NewColor(196, 148, 96, 255))
		}
		if it.ID == ui.selectedID {
			rl.DrawCircle3D(rl.NewVector3(base.X, base.Y+0.02, base.Z), float32(game.CollisionRadius(it.ItemID))+0.2, rl.NewVector3(1, 0, 0), 90, colorSelect)
		}
	}
}

func (ui *gameUI) drawAvatars() {
	drawOne := func(a *game.Avatar, tint rl.Color, bob float32) {
		pos := a.Position
		base := vec3(pos)
		base.Y += bob
		height := float32(1.4)
		if a.Pose == game.PoseSit {
			height = 0.9
		}
		if a.Pose == game.PoseLie {
			rl.DrawCapsule(
				rl.NewVector3(base.X-0.5, base.Y+0.25, base.Z),
				rl.NewVector3(base.X+0.5, base.Y+0.25, base.Z),
				0.25, 8, 8, tint,
			)
			return
		}
		rl.DrawCapsule(
			rl.NewVector3(base.X, base.Y+0.3, base.Z),
			rl.NewVector3(base.X, base.Y+height, base.Z),
			0.3, 8, 8, tint,
		)
		// Facing marker.
		fx := base.X + float32(math.Sin(a.Yaw))*0.35
		fz := base.Z + float32(math.Cos(a.Yaw))*0.35
		rl.DrawSphere(rl.NewVector3(fx, base.Y+height, fz), 0.08, rl.White)
	}
	var bob float32
	if ui.steering.Moving() {
		bob = float32(math.Abs(math.Sin(rl.GetTime()*10))) * 0.08
	}
	drawOne(&ui.state.Avatar, colorAvatar, bob)
	for i := range ui.state.Partners {
		drawOne(&ui.state.Partners[i], colorPartner, 0)
	}
}

func (ui *gameUI) drawPets() {
	for i := range ui.state.Pets {
		p := &ui.state.Pets[i]
		pos := p.Position
		pos.Y = game.HeightAt(pos.X, pos.Z)
		base := vec3(pos)
		rl.DrawSphere(rl.NewVector3(base.X, base.Y+0.25, base.Z), 0.25, colorPet)
		rl.DrawSphere(
			rl.NewVector3(
				base.X+float32(math.Sin(p.Yaw))*0.22,
				base.Y+0.38,
				base.Z+float32(math.Cos(p.Yaw))*0.22,
			),
			0.14, colorPet,
		)
	}
}

func (ui *gameUI) drawBubbles(cam rl.Camera3D) {
	for id, b := range ui.scheduler.Bubbles() {
		pos, ok := ui.entityHead(id)
		if !ok {
			continue
		}
		p := rl.GetWorldToScreen(pos, cam)
		w := rl.MeasureText(b.Text, 16)
		rl.DrawRectangle(int32(p.X)-w/2-8, int32(p.Y)-26, w+16, 24, rl.Fade(rl.White, 0.92))
		rl.DrawText(b.Text, int32(p.X)-w/2, int32(p.Y)-22, 16, rl.Black)
	}
}

func (ui *gameUI) entityHead(id string) (rl.Vector3, bool) {
	switch ui.state.KindOf(id) {
	case game.KindPet:
		p, ok := ui.state.PetByID(id)
		if !ok {
			return rl.Vector3{}, false
		}
		return rl.NewVector3(float32(p.Position.X), float32(game.HeightAt(p.Position.X, p.Position.Z)+0.8), float32(p.Position.Z)), true
	case game.KindPartner:
		p, ok := ui.state.PartnerByID(id)
		if !ok {
			return rl.Vector3{}, false
		}
		return rl.NewVector3(float32(p.Position.X), float32(p.Position.Y+2.1), float32(p.Position.Z)), true
	case game.KindPlayer:
		a := ui.state.Avatar
		return rl.NewVector3(float32(a.Position.X), float32(a.Position.Y+2.1), float32(a.Position.Z)), true
	}
	return rl.Vector3{}, false
}

func (ui *gameUI) drawHUD() {
	mode := "explore"
	if ui.editMode {
		mode = "edit"
	}
	line := fmt.Sprintf("%s | %s %s | E edit  B catalog  P adopt  N invite  F5 save  F9 load", mode, ui.state.Weather, ui.state.Time)
	rl.DrawRectangle(0, 0, ui.width, 28, colorHUD)
	rl.DrawText(line, 10, 6, 16, colorHUDText)

	if ui.status != "" && time.Now().Before(ui.statusUntil) {
		w := rl.MeasureText(ui.status, 18)
		rl.DrawRectangle(ui.width/2-w/2-10, ui.height-46, w+20, 30, colorHUD)
		rl.DrawText(ui.status, ui.width/2-w/2, ui.height-40, 18, colorHUDText)
	}

	if ui.paletteOpen {
		ui.drawPalette()
	}
	if ui.menu != nil {
		ui.drawMenu()
	}
}

func (ui *gameUI) drawMenu() {
	w := int32(220)
	h := int32(36 + 24*len(ui.menu.entries))
	x := ui.width/2 - w/2
	y := ui.height/2 - h/2
	rl.DrawRectangle(x, y, w, h, colorHUD)
	rl.DrawText(ui.menu.title, x+12, y+8, 16, colorSelect)
	for i, e := range ui.menu.entries {
		tint := colorHUDText
		if i == ui.menu.cursor {
			tint = colorSelect
		}
		rl.DrawText(e.label, x+12, y+32+int32(i)*24, 16, tint)
	}
}

func (ui *gameUI) drawPalette() {
	catalog := game.Catalog()
	panelW := int32(280)
	rl.DrawRectangle(ui.width-panelW, 28, panelW, ui.height-28, colorHUD)
	rl.DrawText("catalog (PgUp/PgDn, Enter places)", ui.width-panelW+10, 36, 14, colorHUDText)
	y := int32(60)
	start := ui.paletteCursor - 10
	if start < 0 {
		start = 0
	}
	for i := start; i < len(catalog) && y < ui.height-20; i++ {
		tint := colorHUDText
		if i == ui.paletteCursor {
			tint = colorSelect
		}
		rl.DrawText(fmt.Sprintf("%s %s", catalog[i].Icon, catalog[i].Name), ui.width-panelW+10, y, 16, tint)
		y += 22
	}
}
