package fretwav

import "fmt"

// Fretboard is an instrument with fretted strings: the pitches of its open
// strings and the tuning that maps them to frequencies.
type Fretboard struct {
	Tuning  Tuning
	Strings []Pitch
}

const (
	midiReferenceKey = 69 // A4
	midiMaxKey       = 127
)

// StandardGuitar returns a six string guitar in standard tuning E2 A2 D3 G3
// B3 E4, lowest string first.
func StandardGuitar(t Tuning) Fretboard {
	return Fretboard{
		Tuning: t,
		Strings: []Pitch{
			{Name: E, Octave: 2},
			{Name: A, Octave: 2},
			{Name: D, Octave: 3},
			{Name: G, Octave: 3},
			{Name: B, Octave: 3},
			{Name: E, Octave: 4},
		},
	}
}

// distances returns, for each played string, its distance in semitones from
// the reference pitch.
func (f Fretboard) distances(tab Tab) ([]int, error) {
	if len(tab) != len(f.Strings) {
		return nil, fmt.Errorf("%w: tab %v has %d entries, fretboard has %d strings", ErrShapeMismatch, tab, len(tab), len(f.Strings))
	}
	ret := make([]int, 0, len(tab))
	for i, fret := range tab {
		t, ok := fret.Unpack()
		if !ok {
			continue
		}
		ret = append(ret, f.Tuning.Distance(f.Strings[i])+t)
	}
	return ret, nil
}

// Resolve returns the frequencies of the played strings of the tab, in string
// order. Muted strings contribute nothing, so the result may be empty.
func (f Fretboard) Resolve(tab Tab) ([]float64, error) {
	dist, err := f.distances(tab)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, len(dist))
	for i, d := range dist {
		ret[i] = f.Tuning.FrequencyAt(d)
	}
	return ret, nil
}

// Keys returns the MIDI key numbers of the played strings of the tab, in
// string order.
func (f Fretboard) Keys(tab Tab) ([]uint8, error) {
	dist, err := f.distances(tab)
	if err != nil {
		return nil, err
	}
	ret := make([]uint8, len(dist))
	for i, d := range dist {
		key := midiReferenceKey + d
		if key < 0 || key > midiMaxKey {
			return nil, fmt.Errorf("MIDI key %d of tab %v is outside the range 0..%d", key, tab, midiMaxKey)
		}
		ret[i] = uint8(key)
	}
	return ret, nil
}
