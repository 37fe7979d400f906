package game

import "math/rand/v2"

// Wardrobe tables. These are the authoritative enumerated sets; save
// migration coerces anything outside them back in.
var (
	SkinTones = []string{"TONE1", "TONE2", "TONE3", "TONE4"}

	Outfits = []string{
		"YELLOW_MIDI_DRESS", "WHITE_FLOWER_DRESS", "BURGUNDY_SWEAT_JEAN_SKIRT",
		"JEANS_BLOUSE", "YELLOW_SHORTS", "BLACK_CHIC",
		"BLACK_SUIT", "WHITE_SHIRT_JEANS", "NAVY_HOODIE", "GREY_HOODIE",
		"YELLOW_RAINCOAT",
		"PINK_BIKINI", "SKY_BIKINI_SKIRT", "PURPLE_BIKINI_GRADIENT_SKIRT",
		"BLACK_ONEPIECE", "BLACK_BOXERS", "BLACK_RASHGUARD",
	}

	Shoes = []string{
		"RED_CANVAS", "BLACK_BOOTS", "GREEN_SNEAKERS", "BLACK_SANDALS",
		"GREY_SNEAKERS", "BLACK_SNEAKERS_M", "BAREFOOT",
	}

	Hairstyles = []string{"LONG", "SHORT", "PONYTAIL", "PONYTAIL_PINK", "BUN_GREEN", "HIPPIE"}

	Blushes = []string{"NONE", "SOFT_PINK", "HOT_PINK", "ORANGE"}

	Accessories = []string{
		"HAT", "HEADSET", "EARRINGS", "FLORAL_CAP",
		"GLASSES", "HEADSET_WHITE", "WATCH", "KEYBOARD", "RIBBON",
	}
)

const (
	DefaultSkinTone  = "TONE1"
	DefaultHairstyle = "LONG"
	DefaultBlush     = "NONE"
)

func defaultOutfitFor(g Gender) string {
	if g == GenderMale {
		return "BLACK_SUIT"
	}
	return "SKY_BIKINI_SKIRT"
}

func defaultShoesFor(g Gender) string {
	if g == GenderMale {
		return "BLACK_SNEAKERS_M"
	}
	return "RED_CANVAS"
}

func defaultHairstyleFor(g Gender) string {
	if g == GenderMale {
		return "SHORT"
	}
	return "LONG"
}

// AvatarStyle carries a restyle request. Empty strings leave the field as
// is; Accessories is applied only when non-nil.
type AvatarStyle struct {
	SkinTone    string
	Outfit      string
	Shoes       string
	Hairstyle   string
	Blush       string
	Accessories []string
}

func applyStyle(a Avatar, style AvatarStyle) Avatar {
	if style.SkinTone != "" {
		a.SkinTone = style.SkinTone
	}
	if style.Outfit != "" {
		a.Outfit = style.Outfit
	}
	if style.Shoes != "" {
		a.Shoes = style.Shoes
	}
	if style.Hairstyle != "" {
		a.Hairstyle = style.Hairstyle
	}
	if style.Blush != "" {
		a.Blush = style.Blush
	}
	if style.Accessories != nil {
		a.Accessories = style.Accessories
	}
	return a
}

func (s *GameState) RestyleAvatar(style AvatarStyle) {
	if s == nil {
		return
	}
	s.Avatar = applyStyle(s.Avatar, style)
}

func (s *GameState) SetAvatarPose(p Pose) {
	if s == nil {
		return
	}
	s.Avatar.Pose = p
}

// AddPartner creates a companion with gender defaults and returns its id.
// The partner count is capped; a refused add returns "".
func (s *GameState) AddPartner(g Gender) string {
	if s == nil || len(s.Partners) >= MaxPartners {
		return ""
	}
	partner := Avatar{
		ID:        "partner_" + randomSuffix(),
		Gender:    g,
		SkinTone:  DefaultSkinTone,
		Outfit:    defaultOutfitFor(g),
		Shoes:     defaultShoesFor(g),
		Hairstyle: defaultHairstyleFor(g),
		Blush:     DefaultBlush,
		Position:  Vec3{X: -2 + rand.Float64(), Z: 3 + rand.Float64()},
		Pose:      PoseIdle,
	}
	s.Partners = append(s.Partners, partner)
	return partner.ID
}

func (s *GameState) RemovePartner(id string) {
	if s == nil {
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			s.Partners = append(s.Partners[:i], s.Partners[i+1:]...)
			return
		}
	}
}

func (s *GameState) MovePartner(id string, pos Vec3) {
	if s == nil {
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			next := s.Partners[i]
			next.Position = pos
			s.Partners[i] = next
			return
		}
	}
}

func (s *GameState) RotatePartner(id string, delta float64) {
	if s == nil {
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			next := s.Partners[i]
			next.Yaw += delta
			s.Partners[i] = next
			return
		}
	}
}

func (s *GameState) RestylePartner(id string, style AvatarStyle) {
	if s == nil {
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			s.Partners[i] = applyStyle(s.Partners[i], style)
			return
		}
	}
}

func (s *GameState) SetPartnerPose(id string, p Pose) {
	if s == nil {
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			next := s.Partners[i]
			next.Pose = p
			s.Partners[i] = next
			return
		}
	}
}

// ToggleAccessory flips set membership of one accessory on the player
// avatar or a partner. Accessories are not mutually exclusive.
func (s *GameState) ToggleAccessory(id, accessory string) {
	if s == nil {
		return
	}
	if id == s.Avatar.ID {
		s.Avatar.Accessories = toggleMembership(s.Avatar.Accessories, accessory)
		return
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			next := s.Partners[i]
			next.Accessories = toggleMembership(next.Accessories, accessory)
			s.Partners[i] = next
			return
		}
	}
}

func toggleMembership(set []string, member string) []string {
	for i, m := range set {
		if m == member {
			return append(append([]string{}, set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]string{}, set...), member)
}

func (s *GameState) PartnerByID(id string) (Avatar, bool) {
	if s == nil {
		return Avatar{}, false
	}
	for i := range s.Partners {
		if s.Partners[i].ID == id {
			return s.Partners[i], true
		}
	}
	return Avatar{}, false
}

func containsString(set []string, v string) bool {
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}
