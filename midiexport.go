package fretwav

import (
	"bytes"
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	midiTicksPerQuarter = 960
	midiBPM             = 120
	midiChannel         = 0
	midiVelocity        = 100
)

// Midi returns a single track Standard MIDI File, with name as the track
// name, in which all the keys are struck together at the start and released
// after duration seconds.
func Midi(name string, keys []uint8, duration float64) ([]byte, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("fretwav.Midi failed: %w", ErrEmptyChord)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("fretwav.Midi failed: %w: duration must be positive, got %v", ErrConfiguration, duration)
	}
	clock := smf.MetricTicks(midiTicksPerQuarter)
	ticks := math.Round(duration * midiBPM / 60 * float64(clock.Ticks4th()))
	if ticks > math.MaxUint32 {
		return nil, fmt.Errorf("fretwav.Midi failed: %w: duration of %v seconds does not fit in a MIDI track", ErrConfiguration, duration)
	}
	length := uint32(ticks)
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(name))
	track.Add(0, smf.MetaTempo(midiBPM))
	for _, key := range keys {
		track.Add(0, midi.NoteOn(midiChannel, key, midiVelocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = length
		}
		track.Add(delta, midi.NoteOff(midiChannel, key))
	}
	track.Close(0)
	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track to MIDI file: %v", err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not write MIDI file: %v", err)
	}
	return buf.Bytes(), nil
}
