package melody

import (
	"fmt"

	"aleatoria/motif/internal/notegraph"
)

// Mood selects the edge-weight multiplier for the random walk.
type Mood string

const (
	Happy     Mood = "happy"
	Sad       Mood = "sad"
	Energetic Mood = "energetic"
	Calm      Mood = "calm"
)

// Profile holds the walk parameters of a mood. WeightMul scales every
// outgoing edge weight before normalization. DurationBeats is the per-note
// duration preference consumed by the MIDI layer, not by the walk.
type Profile struct {
	WeightMul     float64 `json:"weight_mul"`
	DurationBeats float64 `json:"duration_beats"`
}

var profiles = map[Mood]Profile{
	Happy:     {WeightMul: 1.2, DurationBeats: 0.25},
	Sad:       {WeightMul: 0.8, DurationBeats: 1},
	Energetic: {WeightMul: 1.5, DurationBeats: 0.25},
	Calm:      {WeightMul: 0.6, DurationBeats: 0.5},
}

// Moods returns all moods in a fixed order.
func Moods() []Mood {
	return []Mood{Happy, Sad, Energetic, Calm}
}

// GetProfile returns the profile for a mood, or ErrInvalidArgument for an
// unknown one.
func GetProfile(m Mood) (Profile, error) {
	p, ok := profiles[m]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown mood %q", notegraph.ErrInvalidArgument, m)
	}
	return p, nil
}

// ParseMood validates a mood name at the boundary.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if _, ok := profiles[m]; !ok {
		return "", fmt.Errorf("%w: unknown mood %q (choose one of happy, sad, energetic, calm)",
			notegraph.ErrInvalidArgument, s)
	}
	return m, nil
}
