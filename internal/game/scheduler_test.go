package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func schedulerScene() GameState {
	s := NewGameState()
	s.PlacedItems = nil
	return s
}

func TestWanderTargetsStayNearHomeAndOnTheIsland(t *testing.T) {
	sc := NewScheduler(7, nil, nil)
	homes := []Vec3{{}, {X: 10, Z: -8}, {X: 20, Z: 0}, {X: -15, Z: 14}}
	for _, home := range homes {
		for range 50 {
			p := sc.wanderPoint(home)
			d := math.Hypot(p.X-home.X, p.Z-home.Z)
			if d > WanderRadius+1e-9 {
				t.Fatalf("wander target %v strayed %v from home %v", p, d, home)
			}
			if !InsideIsland(p.X, p.Z) {
				t.Fatalf("wander target %v left the island", p)
			}
		}
	}
}

func TestWandererWalksToItsTarget(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(3, nil, nil)
	sc.RecordHomes(&s)
	petID := s.Pets[0].ID
	target := Vec3{X: s.Pets[0].Position.X + 2, Z: s.Pets[0].Position.Z}
	sc.targets[petID] = target
	for range 60 * 3 {
		sc.Advance(&s, false, 1.0/60.0)
	}
	if _, still := sc.targets[petID]; still {
		t.Fatalf("pet never arrived at its wander target, at %+v", s.Pets[0].Position)
	}
	pet, _ := s.PetByID(petID)
	if math.Hypot(pet.Position.X-target.X, pet.Position.Z-target.Z) > 0.1 {
		t.Fatalf("pet stopped at %+v, away from target %+v", pet.Position, target)
	}
}

func TestWanderIntervalRetargetsEveryPet(t *testing.T) {
	s := schedulerScene()
	s.AddPet("Shiba", "🐕")
	s.AddPet("Turtle", "🐢")
	sc := NewScheduler(9, nil, nil)
	sc.RecordHomes(&s)

	sc.retargetWanderers(&s)
	for i := range s.Pets {
		if _, ok := sc.targets[s.Pets[i].ID]; !ok {
			t.Fatalf("pet %s got no wander target on the interval", s.Pets[i].ID)
		}
	}
}

func TestEditModeFreezesAmbientBehavior(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(3, nil, nil)
	sc.RecordHomes(&s)
	start := s.Pets[0].Position
	sc.targets[s.Pets[0].ID] = Vec3{X: start.X + 3}
	for range 60 {
		sc.Advance(&s, true, 1.0/60.0)
	}
	if s.Pets[0].Position != start {
		t.Fatalf("pet moved while the camp was being edited")
	}
}

func TestGreetingFiresNearACompanion(t *testing.T) {
	s := schedulerScene()
	s.Pets = nil
	sc := NewScheduler(11, nil, nil)
	partnerID := s.Partners[0].ID
	s.MovePartner(partnerID, Vec3{X: s.Avatar.Position.X + 1, Z: s.Avatar.Position.Z})

	sc.tryGreet(&s)
	b, ok := sc.bubbles[partnerID]
	if !ok {
		t.Fatalf("expected a greeting bubble over the nearby companion")
	}
	found := false
	for _, g := range Greetings {
		if g == b.Text {
			found = true
		}
	}
	if !found {
		t.Fatalf("greeting %q is not in the phrase pool", b.Text)
	}
}

func TestUserInteractionSilencesTheWholeCamp(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(11, nil, nil)
	partnerID := s.Partners[0].ID
	s.MovePartner(partnerID, Vec3{X: s.Avatar.Position.X + 1, Z: s.Avatar.Position.Z})

	sc.TapPet(context.Background(), &s, s.Pets[0].ID)
	clear(sc.bubbles)

	rotation := sc.greetPets
	sc.tryGreet(&s)
	if len(sc.bubbles) != 0 {
		t.Fatalf("ambient greeting fired right after a user interaction")
	}
	if sc.greetPets != rotation {
		t.Fatalf("suppressed greeting still advanced the speaker rotation")
	}
}

func TestActiveBubbleSilencesAmbientChatter(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(11, nil, nil)
	partnerID := s.Partners[0].ID
	s.MovePartner(partnerID, Vec3{X: s.Avatar.Position.X + 1, Z: s.Avatar.Position.Z})

	sc.showBubble(s.Pets[0].ID, "Hi!")
	rotation := sc.greetPets
	sc.tryGreet(&s)
	if _, ok := sc.bubbles[partnerID]; ok {
		t.Fatalf("a second bubble appeared while one was already showing")
	}
	if sc.greetPets != rotation {
		t.Fatalf("suppressed greeting still advanced the speaker rotation")
	}
}

func TestGreetingSkipsDistantCompanions(t *testing.T) {
	s := schedulerScene()
	s.Pets = nil
	sc := NewScheduler(11, nil, nil)
	s.MovePartner(s.Partners[0].ID, Vec3{X: 15, Z: 15})
	sc.tryGreet(&s)
	sc.tryGreet(&s)
	if len(sc.bubbles) != 0 {
		t.Fatalf("expected no greeting across the island, got %v", sc.bubbles)
	}
}

func TestGreetingAlternatesBetweenPetsAndCompanions(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(11, nil, nil)
	s.MovePartner(s.Partners[0].ID, Vec3{X: s.Avatar.Position.X + 1, Z: s.Avatar.Position.Z})
	s.MovePet(s.Pets[0].ID, Vec3{X: s.Avatar.Position.X - 1, Z: s.Avatar.Position.Z})

	sc.tryGreet(&s)
	if _, ok := sc.bubbles[s.Pets[0].ID]; !ok {
		t.Fatalf("pet never joined the ambient chatter")
	}
	clear(sc.bubbles)
	sc.tryGreet(&s)
	if _, ok := sc.bubbles[s.Partners[0].ID]; !ok {
		t.Fatalf("companion never joined the ambient chatter")
	}
}

func TestBubblesExpire(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(1, nil, nil)
	sc.showBubble(s.Partners[0].ID, "Hi!")
	sc.Advance(&s, true, BubbleLife+0.1)
	if len(sc.bubbles) != 0 {
		t.Fatalf("bubble outlived its lifetime")
	}
}

func TestStaleThoughtResponsesAreDiscarded(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(1, nil, nil)
	petID := s.Pets[0].ID
	oldToken := sc.showBubble(petID, ThinkingBubble)
	sc.showBubble(petID, "newer bubble")

	sc.results <- thoughtResult{entityID: petID, token: oldToken, text: "stale"}
	sc.drainResults(&s)

	if sc.bubbles[petID].Text != "newer bubble" {
		t.Fatalf("stale response replaced the newer bubble: %q", sc.bubbles[petID].Text)
	}
	if pet, _ := s.PetByID(petID); pet.LastThought == "stale" {
		t.Fatalf("stale response was recorded on the pet")
	}
}

func TestCurrentThoughtResponseLands(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(1, nil, nil)
	petID := s.Pets[0].ID
	token := sc.showBubble(petID, ThinkingBubble)

	sc.results <- thoughtResult{entityID: petID, token: token, text: "chasing butterflies"}
	sc.drainResults(&s)

	if sc.bubbles[petID].Text != "chasing butterflies" {
		t.Fatalf("generated thought never replaced the thinking bubble")
	}
	if pet, _ := s.PetByID(petID); pet.LastThought != "chasing butterflies" {
		t.Fatalf("generated thought was not recorded, got %q", pet.LastThought)
	}
}

func TestTapPetWithoutGeneratorUsesCannedPhrase(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(5, nil, nil)
	petID := s.Pets[0].ID
	sc.TapPet(context.Background(), &s, petID)
	b, ok := sc.bubbles[petID]
	if !ok || b.Text == "" || b.Text == ThinkingBubble {
		t.Fatalf("expected an immediate canned thought, got %+v", b)
	}
	if !sc.onCooldown() {
		t.Fatalf("tapping should start the chatter cooldown")
	}
}

type failingGenerator struct{}

func (failingGenerator) PetThought(context.Context, Pet, WeatherType, TimeOfDay) (string, error) {
	return "", errors.New("model offline")
}

func (failingGenerator) Atmosphere(context.Context, string, WeatherType, TimeOfDay) (string, error) {
	return "", errors.New("model offline")
}

func TestTapPetFallsBackWhenGenerationFails(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(5, failingGenerator{}, nil)
	petID := s.Pets[0].ID
	sc.TapPet(context.Background(), &s, petID)

	if sc.bubbles[petID].Text != ThinkingBubble {
		t.Fatalf("expected a thinking placeholder while generating")
	}

	deadline := time.After(2 * time.Second)
	for {
		sc.drainResults(&s)
		if b := sc.bubbles[petID]; b != nil && b.Text != ThinkingBubble {
			if b.Text == "" {
				t.Fatalf("fallback thought is empty")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("fallback thought never arrived")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRecordHomesDropsStaleTargets(t *testing.T) {
	s := schedulerScene()
	sc := NewScheduler(2, nil, nil)
	sc.targets["gone"] = Vec3{X: 1}
	sc.RecordHomes(&s)
	if len(sc.targets) != 0 {
		t.Fatalf("expected targets to reset when homes are re-anchored")
	}
}
