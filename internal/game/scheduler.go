package game

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Ambient behavior timing. Wander and greeting fire on independent
// clocks; a recent user interaction quiets the whole camp for a while.
const (
	WanderInterval      = 25.0
	GreetInterval       = 18.0
	InteractionCooldown = 10.0
	BubbleLife          = 5.0

	WanderRadius  = 4.0
	WanderSpeed   = 1.5
	GreetDistance = 3.5

	ThinkingBubble = "..."
)

// Greetings is the local phrase pool used when two campers pass close by.
var Greetings = []string{
	"Hi!",
	"Hello!",
	"Hey there!",
	"Yo!",
	"Nice day!",
	"Campsite looks great!",
	"Anyone have snacks?",
	"Relaxing...",
	"Good vibes only",
}

// Bubble is a transient speech bubble shown above an entity. Token ties
// a bubble to the generation request that produced it so responses that
// arrive after the bubble has been replaced are dropped.
type Bubble struct {
	Text  string
	Age   float64
	token uint64
}

type thoughtResult struct {
	entityID string
	token    uint64
	text     string
}

// Scheduler drives the autonomous life of the island each frame:
// wandering pets and companions, passing greetings, and async pet
// thoughts. All state here is transient and never serialized.
type Scheduler struct {
	rng    *rand.Rand
	gen    ThoughtGenerator
	logger *slog.Logger

	homes   map[string]Vec3
	targets map[string]Vec3
	bubbles map[string]*Bubble

	wanderClock float64
	greetClock  float64
	greetPets   bool
	quietFor    float64
	nextToken   uint64

	results chan thoughtResult
}

func NewScheduler(seed int64, gen ThoughtGenerator, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		rng:     seededRNG(seed),
		gen:     gen,
		logger:  logger,
		homes:   map[string]Vec3{},
		targets: map[string]Vec3{},
		bubbles: map[string]*Bubble{},
		results: make(chan thoughtResult, 8),
	}
}

// Bubbles returns the live bubble per entity id for the draw layer.
func (sc *Scheduler) Bubbles() map[string]*Bubble {
	if sc == nil {
		return nil
	}
	return sc.bubbles
}

// RecordHomes snapshots current positions as the anchors wandering stays
// near. The shell calls this when edit mode ends, so rearranging the
// camp re-centers everyone's territory.
func (sc *Scheduler) RecordHomes(s *GameState) {
	if sc == nil || s == nil {
		return
	}
	clear(sc.homes)
	for i := range s.Pets {
		sc.homes[s.Pets[i].ID] = s.Pets[i].Position
	}
	for i := range s.Partners {
		sc.homes[s.Partners[i].ID] = s.Partners[i].Position
	}
	clear(sc.targets)
}

// NoteInteraction marks a user interaction, which quiets ambient chatter
// across the whole camp until the cooldown runs out.
func (sc *Scheduler) NoteInteraction() {
	if sc == nil {
		return
	}
	sc.quietFor = InteractionCooldown
}

func (sc *Scheduler) onCooldown() bool {
	return sc.quietFor > 0
}

func (sc *Scheduler) showBubble(id, text string) uint64 {
	sc.nextToken++
	sc.bubbles[id] = &Bubble{Text: text, token: sc.nextToken}
	return sc.nextToken
}

// Advance runs one frame of ambient behavior. While the camp is being
// edited everyone holds still, but bubbles keep aging and pending
// thought results still land.
func (sc *Scheduler) Advance(s *GameState, editMode bool, dt float64) {
	if sc == nil || s == nil || dt <= 0 {
		return
	}

	sc.drainResults(s)

	for id, b := range sc.bubbles {
		b.Age += dt
		if b.Age >= BubbleLife {
			delete(sc.bubbles, id)
		}
	}
	if sc.quietFor > 0 {
		sc.quietFor -= dt
	}

	if editMode {
		return
	}

	sc.stepWanderers(s, dt)

	sc.wanderClock += dt
	if sc.wanderClock >= WanderInterval {
		sc.wanderClock = 0
		sc.retargetWanderers(s)
	}

	sc.greetClock += dt
	if sc.greetClock >= GreetInterval {
		sc.greetClock = 0
		sc.tryGreet(s)
	}
}

func (sc *Scheduler) drainResults(s *GameState) {
	for {
		select {
		case res := <-sc.results:
			b, ok := sc.bubbles[res.entityID]
			if !ok || b.token != res.token {
				continue
			}
			sc.bubbles[res.entityID] = &Bubble{Text: res.text, token: res.token}
			if s.KindOf(res.entityID) == KindPet {
				s.SetPetThought(res.entityID, res.text)
			}
		default:
			return
		}
	}
}

// retargetWanderers hands every pet a fresh destination near its home,
// plus one companion so the camp keeps drifting without everyone moving
// at once.
func (sc *Scheduler) retargetWanderers(s *GameState) {
	for i := range s.Pets {
		p := s.Pets[i]
		sc.targets[p.ID] = sc.wanderPoint(sc.homeOf(p.ID, p.Position))
	}
	if len(s.Partners) > 0 {
		p := s.Partners[sc.rng.IntN(len(s.Partners))]
		sc.targets[p.ID] = sc.wanderPoint(sc.homeOf(p.ID, p.Position))
	}
}

func (sc *Scheduler) homeOf(id string, pos Vec3) Vec3 {
	home, ok := sc.homes[id]
	if !ok {
		home = pos
		sc.homes[id] = home
	}
	return home
}

// wanderPoint picks a destination near home that stays on the island.
func (sc *Scheduler) wanderPoint(home Vec3) Vec3 {
	for range 8 {
		ang := sc.rng.Float64() * 2 * math.Pi
		r := sc.rng.Float64() * WanderRadius
		p := Vec3{X: home.X + math.Sin(ang)*r, Z: home.Z + math.Cos(ang)*r}
		if InsideIsland(p.X, p.Z) {
			return p
		}
	}
	return home
}

func (sc *Scheduler) stepWanderers(s *GameState, dt float64) {
	for id, target := range sc.targets {
		var pos Vec3
		kind := s.KindOf(id)
		switch kind {
		case KindPet:
			p, _ := s.PetByID(id)
			pos = p.Position
		case KindPartner:
			p, _ := s.PartnerByID(id)
			pos = p.Position
		default:
			delete(sc.targets, id)
			continue
		}

		dx := target.X - pos.X
		dz := target.Z - pos.Z
		dist := math.Hypot(dx, dz)
		step := WanderSpeed * dt
		if dist <= step {
			s.MoveEntity(id, Vec3{X: target.X, Z: target.Z})
			delete(sc.targets, id)
			continue
		}
		next := Vec3{X: pos.X + dx/dist*step, Z: pos.Z + dz/dist*step}
		s.MoveEntity(id, next)
		yaw := math.Atan2(dx, dz)
		if kind == KindPet {
			s.SetPetYaw(id, yaw)
		} else {
			sc.faceToward(s, id, yaw)
		}
	}
}

func (sc *Scheduler) faceToward(s *GameState, id string, yaw float64) {
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			next := s.Partners[i]
			next.Yaw = yaw
			s.Partners[i] = next
			return
		}
	}
}

// tryGreet pops ambient chatter near the player, alternating between
// companions and pets so neither group talks over the other. A recent
// user interaction or any bubble still on screen suppresses the fire
// entirely, leaving the rotation where it was.
func (sc *Scheduler) tryGreet(s *GameState) {
	if sc.onCooldown() || len(sc.bubbles) > 0 {
		return
	}
	sc.greetPets = !sc.greetPets
	if sc.greetPets {
		if !sc.greetPet(s) {
			sc.greetPartner(s)
		}
		return
	}
	if !sc.greetPartner(s) {
		sc.greetPet(s)
	}
}

func (sc *Scheduler) greetPartner(s *GameState) bool {
	if len(s.Partners) == 0 {
		return false
	}
	start := sc.rng.IntN(len(s.Partners))
	for i := range s.Partners {
		p := s.Partners[(start+i)%len(s.Partners)]
		if !nearPlayer(s, p.Position) {
			continue
		}
		sc.showBubble(p.ID, Greetings[sc.rng.IntN(len(Greetings))])
		return true
	}
	return false
}

func (sc *Scheduler) greetPet(s *GameState) bool {
	if len(s.Pets) == 0 {
		return false
	}
	start := sc.rng.IntN(len(s.Pets))
	for i := range s.Pets {
		p := s.Pets[(start+i)%len(s.Pets)]
		if !nearPlayer(s, p.Position) {
			continue
		}
		sc.showBubble(p.ID, CannedThought(sc.rng, p.Species, s.Weather, s.Time))
		return true
	}
	return false
}

func nearPlayer(s *GameState, pos Vec3) bool {
	dx := pos.X - s.Avatar.Position.X
	dz := pos.Z - s.Avatar.Position.Z
	return math.Hypot(dx, dz) <= GreetDistance
}

// TapPet reacts to the player poking a pet: an immediate thinking
// bubble, then an async generated thought that replaces it. Tapping
// bypasses the chatter cooldown but still starts one.
func (sc *Scheduler) TapPet(ctx context.Context, s *GameState, id string) {
	if sc == nil || s == nil {
		return
	}
	pet, ok := s.PetByID(id)
	if !ok {
		return
	}
	sc.NoteInteraction()
	if sc.gen == nil {
		sc.showBubble(id, CannedThought(sc.rng, pet.Species, s.Weather, s.Time))
		return
	}
	token := sc.showBubble(id, ThinkingBubble)
	weather, tod := s.Weather, s.Time
	fallback := CannedThought(sc.rng, pet.Species, weather, tod)
	go func() {
		text, err := sc.gen.PetThought(ctx, pet, weather, tod)
		if err != nil {
			sc.logger.Debug("pet thought generation failed", "pet", pet.Name, "error", err)
			text = fallback
		}
		select {
		case sc.results <- thoughtResult{entityID: id, token: token, text: text}:
		case <-ctx.Done():
		}
	}()
}

// TapCompanion pops a greeting over a companion immediately.
func (sc *Scheduler) TapCompanion(s *GameState, id string) {
	if sc == nil || s == nil {
		return
	}
	if _, ok := s.PartnerByID(id); !ok {
		return
	}
	sc.showBubble(id, Greetings[sc.rng.IntN(len(Greetings))])
	sc.NoteInteraction()
}
