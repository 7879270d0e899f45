package midifile

import (
	"bytes"
	"errors"
	"testing"

	"aleatoria/motif/internal/notegraph"
)

func TestPitch(t *testing.T) {
	cases := []struct {
		note notegraph.Note
		want uint8
	}{
		{notegraph.Note{Name: "C", Octave: 4}, 60},
		{notegraph.Note{Name: "D", Octave: 4}, 62},
		{notegraph.Note{Name: "B", Octave: 4}, 71},
		{notegraph.Note{Name: "C", Octave: 5}, 72},
		{notegraph.Note{Name: "A", Octave: 3}, 57},
	}
	for _, tc := range cases {
		got, err := Pitch(tc.note)
		if err != nil {
			t.Errorf("Pitch(%s): %v", tc.note, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Pitch(%s) = %d, want %d", tc.note, got, tc.want)
		}
	}
}

func TestPitch_Errors(t *testing.T) {
	if _, err := Pitch(notegraph.Note{Name: "H", Octave: 4}); !errors.Is(err, notegraph.ErrUnknownNote) {
		t.Errorf("expected ErrUnknownNote, got %v", err)
	}
	if _, err := Pitch(notegraph.Note{Name: "C", Octave: 10}); !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for out-of-range octave, got %v", err)
	}
}

func TestWrite_ProducesSMFHeader(t *testing.T) {
	notes := []notegraph.Note{
		{Name: "C", Octave: 4},
		{Name: "D", Octave: 4},
		{Name: "C", Octave: 5},
	}
	var buf bytes.Buffer
	if err := Write(&buf, notes, DefaultOptions()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("MThd")) {
		t.Errorf("output should start with SMF header chunk, got %q", buf.Bytes()[:4])
	}
}

func TestEncode_Invalid(t *testing.T) {
	if _, err := Encode(nil, DefaultOptions()); !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("empty melody: expected ErrInvalidArgument, got %v", err)
	}
	o := DefaultOptions()
	o.TempoBPM = 0
	if _, err := Encode([]notegraph.Note{{Name: "C", Octave: 4}}, o); !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("zero tempo: expected ErrInvalidArgument, got %v", err)
	}
	o = DefaultOptions()
	o.DurationBeats = -1
	if _, err := Encode([]notegraph.Note{{Name: "C", Octave: 4}}, o); !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("negative duration: expected ErrInvalidArgument, got %v", err)
	}
}
