package fretwav_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vsariola/fretwav"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestMidi(t *testing.T) {
	keys := []uint8{40, 47, 52, 56, 59, 64}
	data, err := fretwav.Midi("E", keys, 2)
	if err != nil {
		t.Fatalf("Midi failed: %v", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("could not read back the MIDI file: %v", err)
	}
	if len(s.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %v", len(s.Tracks))
	}
	var on, off []uint8
	var tick uint32
	for _, ev := range s.Tracks[0] {
		tick += ev.Delta
		var ch, key, vel uint8
		msg := midi.Message(ev.Message)
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			if tick != 0 {
				t.Fatalf("key %v struck at tick %v, expected 0", key, tick)
			}
			on = append(on, key)
		case msg.GetNoteEnd(&ch, &key):
			// 2 seconds at 120 BPM is 4 quarter notes
			if tick != 4*960 {
				t.Fatalf("key %v released at tick %v, expected %v", key, tick, 4*960)
			}
			off = append(off, key)
		}
	}
	if !bytes.Equal(on, keys) || !bytes.Equal(off, keys) {
		t.Fatalf("note ons %v and note offs %v, expected %v", on, off, keys)
	}
}

func TestMidiErrors(t *testing.T) {
	if _, err := fretwav.Midi("none", nil, 1); !errors.Is(err, fretwav.ErrEmptyChord) {
		t.Fatalf("expected ErrEmptyChord, got %v", err)
	}
	if _, err := fretwav.Midi("E", []uint8{40}, 0); !errors.Is(err, fretwav.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestMidiTrackName(t *testing.T) {
	data, err := fretwav.Midi("E7sus2|D", []uint8{45}, 1)
	if err != nil {
		t.Fatalf("Midi failed: %v", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("could not read back the MIDI file: %v", err)
	}
	var name string
	found := false
	for _, ev := range s.Tracks[0] {
		if ev.Message.GetMetaTrackName(&name) {
			found = true
		}
	}
	if !found || name != "E7sus2|D" {
		t.Fatalf("expected track name %q, got %q", "E7sus2|D", name)
	}
}

func TestMidiTooLong(t *testing.T) {
	if _, err := fretwav.Midi("E", []uint8{40}, 1e9); !errors.Is(err, fretwav.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for a duration longer than a MIDI track can hold, got %v", err)
	}
}
