// Package midifile serializes generated melodies to standard MIDI files.
package midifile

import (
	"fmt"
	"io"
	"math"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"aleatoria/motif/internal/notegraph"
)

// basePitch maps pitch-class names to their MIDI number in octave 4.
var basePitch = map[string]uint8{
	"C": 60, "D": 62, "E": 64, "F": 65, "G": 67, "A": 69, "B": 71,
}

// Options controls MIDI serialization. DurationBeats is the fixed per-note
// duration, typically taken from the mood profile.
type Options struct {
	TempoBPM      float64
	DurationBeats float64
	Velocity      uint8
	Channel       uint8
}

// DefaultOptions returns quarter-note melodies at 120 BPM.
func DefaultOptions() Options {
	return Options{
		TempoBPM:      120,
		DurationBeats: 1,
		Velocity:      100,
		Channel:       0,
	}
}

// Pitch converts a note to its MIDI number: base pitch of the name plus 12
// semitones per octave above 4.
func Pitch(n notegraph.Note) (uint8, error) {
	base, ok := basePitch[n.Name]
	if !ok {
		return 0, fmt.Errorf("%w: no MIDI mapping for pitch class %q", notegraph.ErrUnknownNote, n.Name)
	}
	v := int(base) + (n.Octave-4)*12
	if v < 0 || v > 127 {
		return 0, fmt.Errorf("%w: %s maps outside MIDI range (%d)", notegraph.ErrInvalidArgument, n, v)
	}
	return uint8(v), nil
}

// Encode builds a single-track SMF playing the melody back to back at the
// configured tempo and duration.
func Encode(notes []notegraph.Note, o Options) (*smf.SMF, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: empty melody", notegraph.ErrInvalidArgument)
	}
	if o.TempoBPM <= 0 || o.DurationBeats <= 0 {
		return nil, fmt.Errorf("%w: tempo and duration must be positive", notegraph.ErrInvalidArgument)
	}

	ticks := smf.MetricTicks(960)
	durTicks := uint32(math.Round(o.DurationBeats * float64(ticks.Ticks4th())))

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(o.TempoBPM))
	for _, n := range notes {
		key, err := Pitch(n)
		if err != nil {
			return nil, err
		}
		tr.Add(0, midi.NoteOn(o.Channel, key, o.Velocity))
		tr.Add(durTicks, midi.NoteOff(o.Channel, key))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = ticks
	s.Add(tr)
	return s, nil
}

// Write encodes the melody and writes the SMF bytes to w.
func Write(w io.Writer, notes []notegraph.Note, o Options) error {
	s, err := Encode(notes, o)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing MIDI: %w", err)
	}
	return nil
}

// WriteFile encodes the melody and writes it to path.
func WriteFile(path string, notes []notegraph.Note, o Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, notes, o); err != nil {
		return err
	}
	return f.Close()
}
