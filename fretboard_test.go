package fretwav_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vsariola/fretwav"
)

var x = fretwav.Muted

func tab(frets ...interface{}) fretwav.Tab {
	ret := make(fretwav.Tab, len(frets))
	for i, f := range frets {
		if n, ok := f.(int); ok {
			ret[i] = fretwav.At(n)
		}
	}
	return ret
}

func TestOpenLowE(t *testing.T) {
	tuning := fretwav.DefaultTuning()
	guitar := fretwav.StandardGuitar(tuning)
	freqs, err := guitar.Resolve(tab(0, x, x, x, x, x))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(freqs) != 1 {
		t.Fatalf("expected 1 frequency, got %v", freqs)
	}
	if expected := tuning.FrequencyOf(fretwav.E, 2); freqs[0] != expected {
		t.Fatalf("open low E = %v, expected %v", freqs[0], expected)
	}
}

func TestResolveSkipsMutedStrings(t *testing.T) {
	tuning := fretwav.DefaultTuning()
	guitar := fretwav.StandardGuitar(tuning)
	// C major: x 3 2 0 1 0 -> C3 E3 G3 C4 E4
	freqs, err := guitar.Resolve(tab(nil, 3, 2, 0, 1, 0))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	expected := []float64{
		tuning.FrequencyOf(fretwav.C, 3),
		tuning.FrequencyOf(fretwav.E, 3),
		tuning.FrequencyOf(fretwav.G, 3),
		tuning.FrequencyOf(fretwav.C, 4),
		tuning.FrequencyOf(fretwav.E, 4),
	}
	if len(freqs) != len(expected) {
		t.Fatalf("expected %v frequencies, got %v", len(expected), freqs)
	}
	for i := range expected {
		if math.Abs(freqs[i]-expected[i]) > 1e-9 {
			t.Fatalf("frequency %d = %v, expected %v", i, freqs[i], expected[i])
		}
	}
}

func TestResolveFollowsReference(t *testing.T) {
	tuning, err := fretwav.NewTuning(fretwav.EqualTemperament, 432)
	if err != nil {
		t.Fatalf("NewTuning failed: %v", err)
	}
	guitar := fretwav.StandardGuitar(tuning)
	// fifth fret of the high E string is A4
	freqs, err := guitar.Resolve(tab(x, x, x, x, x, 5))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if math.Abs(freqs[0]-432) > 1e-9 {
		t.Fatalf("expected 432 Hz, got %v", freqs[0])
	}
}

func TestResolveAllMuted(t *testing.T) {
	guitar := fretwav.StandardGuitar(fretwav.DefaultTuning())
	freqs, err := guitar.Resolve(tab(x, x, x, x, x, x))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(freqs) != 0 {
		t.Fatalf("expected no frequencies, got %v", freqs)
	}
	_, err = fretwav.Synth{SampleRate: 8000, Duration: 1}.Render(freqs)
	if !errors.Is(err, fretwav.ErrEmptyChord) {
		t.Fatalf("rendering a chord with no strings should fail with ErrEmptyChord, got %v", err)
	}
}

func TestShapeMismatch(t *testing.T) {
	guitar := fretwav.StandardGuitar(fretwav.DefaultTuning())
	for _, tb := range []fretwav.Tab{
		tab(0, 2, 2, 1, 0),
		tab(0, 2, 2, 1, 0, 0, 0),
		nil,
	} {
		if _, err := guitar.Resolve(tb); !errors.Is(err, fretwav.ErrShapeMismatch) {
			t.Fatalf("Resolve(%v) should fail with ErrShapeMismatch, got %v", tb, err)
		}
		if _, err := guitar.Keys(tb); !errors.Is(err, fretwav.ErrShapeMismatch) {
			t.Fatalf("Keys(%v) should fail with ErrShapeMismatch, got %v", tb, err)
		}
	}
}

func TestKeys(t *testing.T) {
	guitar := fretwav.StandardGuitar(fretwav.DefaultTuning())
	keys, err := guitar.Keys(tab(0, 2, 2, 1, 0, 0))
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	expected := []uint8{40, 47, 52, 56, 59, 64}
	if !reflect.DeepEqual(keys, expected) {
		t.Fatalf("E major keys = %v, expected %v", keys, expected)
	}
	if _, err := guitar.Keys(tab(x, x, x, x, x, 100)); err == nil {
		t.Fatalf("Keys should fail for keys above 127")
	}
}

func TestCustomStrings(t *testing.T) {
	tuning := fretwav.DefaultTuning()
	ukulele := fretwav.Fretboard{
		Tuning: tuning,
		Strings: []fretwav.Pitch{
			{Name: fretwav.G, Octave: 4},
			{Name: fretwav.C, Octave: 4},
			{Name: fretwav.E, Octave: 4},
			{Name: fretwav.A, Octave: 4},
		},
	}
	freqs, err := ukulele.Resolve(tab(2, 0, 0, 0))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if math.Abs(freqs[0]-440) > 1e-9 || math.Abs(freqs[3]-440) > 1e-9 {
		t.Fatalf("expected first and last string to sound A4, got %v", freqs)
	}
}
