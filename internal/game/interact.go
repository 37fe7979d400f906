package game

import "math"

const (
	// GridStep is the placement lattice for props and tents.
	GridStep = 0.5
	// RotateStep is the yaw applied per rotate press in edit mode.
	RotateStep = math.Pi / 8
	// DragThreshold is the screen-space distance in pixels beyond which a
	// press counts as a drag rather than a tap.
	DragThreshold = 5.0
)

// SnapToGrid rounds a ground position onto the placement lattice.
func SnapToGrid(x, z float64) (float64, float64) {
	return math.Round(x/GridStep) * GridStep, math.Round(z/GridStep) * GridStep
}

// DragSession tracks one press from down to release and decides whether it
// was a tap or a drag. World positions flow through MoveEntity live so the
// entity follows the pointer, already snapped to the grid.
type DragSession struct {
	EntityID string
	startX   float64
	startY   float64
	dragging bool
}

func BeginDrag(entityID string, screenX, screenY float64) *DragSession {
	return &DragSession{EntityID: entityID, startX: screenX, startY: screenY}
}

// Update moves the dragged entity to the pointer's ground position once
// the pointer has traveled past the tap threshold. Every move lands on the
// grid, for every draggable kind, so nothing ever rests between cells.
func (d *DragSession) Update(s *GameState, screenX, screenY float64, ground Vec3) {
	if d == nil || s == nil {
		return
	}
	if !d.dragging {
		if math.Hypot(screenX-d.startX, screenY-d.startY) < DragThreshold {
			return
		}
		d.dragging = true
	}
	x, z := SnapToGrid(ground.X, ground.Z)
	if !InsideIsland(x, z) {
		return
	}
	s.MoveEntity(d.EntityID, Vec3{X: x, Z: z})
}

// End finishes the session and reports whether the press never left the
// tap threshold, so the caller can run the tap action instead.
func (d *DragSession) End() (wasTap bool) {
	if d == nil {
		return false
	}
	return !d.dragging
}

// ItemAction is one entry in the contextual menu for a prop.
type ItemAction string

const (
	ActionSit   ItemAction = "SIT"
	ActionLie   ItemAction = "LIE"
	ActionTrunk ItemAction = "TRUNK"
	ActionRadio ItemAction = "RADIO"
)

// ItemActions lists the contextual choices for tapping a prop outside edit
// mode. Posable props offer both poses so the player picks; plain props
// offer nothing.
func (s *GameState) ItemActions(id string) []ItemAction {
	if s == nil {
		return nil
	}
	it, ok := s.ItemByID(id)
	if !ok {
		return nil
	}
	bp, ok := BlueprintByID(it.ItemID)
	if !ok {
		return nil
	}
	switch bp.Interaction {
	case InteractPose:
		return []ItemAction{ActionSit, ActionLie}
	case InteractTrunk:
		return []ItemAction{ActionTrunk}
	case InteractRadio:
		return []ItemAction{ActionRadio}
	}
	return nil
}

// ApplyItemAction runs one chosen contextual action. Pose actions seat the
// player on the prop facing the prop's yaw; stateful props toggle their
// flag.
func (s *GameState) ApplyItemAction(id string, act ItemAction) {
	if s == nil {
		return
	}
	it, ok := s.ItemByID(id)
	if !ok {
		return
	}
	switch act {
	case ActionSit, ActionLie:
		pose := PoseSit
		if act == ActionLie {
			pose = PoseLie
		}
		s.Avatar.Position = Vec3{X: it.Position.X, Z: it.Position.Z}
		s.Avatar.Yaw = it.Yaw
		s.Avatar.Pose = pose
	case ActionTrunk:
		s.ToggleItemState(id, "trunk_open")
	case ActionRadio:
		s.ToggleItemState(id, "playing")
	}
}
