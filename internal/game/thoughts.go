package game

import "context"

// ThoughtGenerator produces the flavor text shown in speech bubbles.
// Implementations may call out to a remote model; callers always fall
// back to canned phrases when generation errors.
type ThoughtGenerator interface {
	PetThought(ctx context.Context, pet Pet, weather WeatherType, tod TimeOfDay) (string, error)
	Atmosphere(ctx context.Context, theme string, weather WeatherType, tod TimeOfDay) (string, error)
}
