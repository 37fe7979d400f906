package game

import "math/rand/v2"

// PetSpecies drives which procedural model the presentation layer renders.
type PetSpecies struct {
	Species string
	Icon    string
}

var PetSpeciesList = []PetSpecies{
	{Species: "Maltese", Icon: "🐶"},
	{Species: "Poodle", Icon: "🐩"},
	{Species: "Bichon", Icon: "☁️"},
	{Species: "Shiba", Icon: "🐕"},
	{Species: "CheeseCat", Icon: "🐱"},
	{Species: "SpottedCat", Icon: "🐆"},
	{Species: "Koala", Icon: "🐨"},
	{Species: "Quokka", Icon: "🐻"},
	{Species: "Turtle", Icon: "🐢"},
	{Species: "WhiteBird", Icon: "🕊️"},
}

func (s *GameState) AddPet(species, icon string) string {
	if s == nil {
		return ""
	}
	pet := Pet{
		ID:       "pet_" + randomSuffix(),
		Name:     species,
		Species:  species,
		Mood:     "Happy",
		Icon:     icon,
		Position: Vec3{X: -2 + rand.Float64(), Z: 3 + rand.Float64()},
	}
	s.Pets = append(s.Pets, pet)
	return pet.ID
}

// RemovePet is the "send home" action.
func (s *GameState) RemovePet(id string) {
	if s == nil {
		return
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			s.Pets = append(s.Pets[:i], s.Pets[i+1:]...)
			return
		}
	}
}

func (s *GameState) MovePet(id string, pos Vec3) {
	if s == nil {
		return
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			next := s.Pets[i]
			next.Position = pos
			s.Pets[i] = next
			return
		}
	}
}

func (s *GameState) RotatePet(id string, delta float64) {
	if s == nil {
		return
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			next := s.Pets[i]
			next.Yaw += delta
			s.Pets[i] = next
			return
		}
	}
}

func (s *GameState) SetPetYaw(id string, yaw float64) {
	if s == nil {
		return
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			next := s.Pets[i]
			next.Yaw = yaw
			s.Pets[i] = next
			return
		}
	}
}

func (s *GameState) SetPetThought(id, thought string) {
	if s == nil {
		return
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			next := s.Pets[i]
			next.LastThought = thought
			s.Pets[i] = next
			return
		}
	}
}

func (s *GameState) PetByID(id string) (Pet, bool) {
	if s == nil {
		return Pet{}, false
	}
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			return s.Pets[i], true
		}
	}
	return Pet{}, false
}

// FallbackThought is the last-resort bubble text when no canned phrase
// matches and generation is unavailable.
const FallbackThought = "*Happy noises*"

var weatherThoughts = map[WeatherType][]string{
	WeatherSunny:  {"The sun feels so warm! ☀️", "Perfect day for a nap outside 😌"},
	WeatherRainy:  {"Pitter patter on the tent... 🌧️", "Puddles! So many puddles! 💦"},
	WeatherCloudy: {"That cloud looks like a snack ☁️", "Soft grey sky today 🩶"},
	WeatherSnowy:  {"Snowflakes tickle my nose! ❄️", "Brrr but also wheee! ⛄"},
}

var timeThoughts = map[TimeOfDay][]string{
	TimeNight:   {"So many stars tonight ✨", "Is it bedtime yet? 🌙"},
	TimeSunset:  {"The sky is all orange! 🧡", "Golden hour snuggles 🌇"},
	TimeDawn:    {"Early bird gets the snack 🐦", "Still a little sleepy... 😪"},
	TimeSunrise: {"A brand new day! 🌅"},
	TimePink:    {"Everything is pink and pretty 🌸"},
}

var speciesThoughts = map[string][]string{
	"Maltese":    {"My fur is extra fluffy today! 🤍"},
	"Poodle":     {"Do I look fancy? I feel fancy ✨"},
	"Bichon":     {"I'm basically a little cloud ☁️"},
	"Shiba":      {"Much camp. Very cozy. 🐕"},
	"CheeseCat":  {"I knocked nothing over. Yet. 😼"},
	"SpottedCat": {"Stalking a very dangerous leaf 🍃"},
	"Koala":      {"Five more minutes of nap... 😴"},
	"Quokka":     {"Smiling is my whole thing! 😊"},
	"Turtle":     {"Slow day. The best kind of day. 🐢"},
	"WhiteBird":  {"The breeze up there is lovely 🕊️"},
}

// CannedThought picks a local phrase for a pet when generation is
// unavailable or fails. The pool mixes species, weather, and time-of-day
// lines so repeated fallbacks still vary.
func CannedThought(rng *rand.Rand, species string, weather WeatherType, tod TimeOfDay) string {
	pool := make([]string, 0, 6)
	pool = append(pool, speciesThoughts[species]...)
	pool = append(pool, weatherThoughts[weather]...)
	pool = append(pool, timeThoughts[tod]...)
	if len(pool) == 0 {
		return FallbackThought
	}
	if rng == nil {
		return pool[0]
	}
	return pool[rng.IntN(len(pool))]
}
