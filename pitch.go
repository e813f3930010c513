package fretwav

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type (
	// PitchName is one of the twelve pitch classes, numbered by semitones
	// from C.
	PitchName int

	// Pitch is a pitch class in a given octave, in scientific pitch
	// notation: A4 is the A above middle C.
	Pitch struct {
		Name   PitchName
		Octave int
	}

	// Tuning maps pitches to frequencies. Only twelve-tone equal temperament
	// is supported, so a tuning is fully defined by the frequency of its
	// reference pitch, A4.
	Tuning struct {
		System    string
		Reference float64
	}
)

const (
	C PitchName = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const (
	EqualTemperament      = "12-tone-equal-temperament"
	EqualTemperamentShort = "12TET"
	DefaultReference      = 440.0
	semitonesPerOctave    = 12
)

// ReferencePitch is the pitch that sounds at Tuning.Reference.
var ReferencePitch = Pitch{Name: A, Octave: 4}

var pitchNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// lookup keys are case folded
var pitchNameLookup = map[string]PitchName{
	"c": C, "c#": CSharp, "db": CSharp,
	"d": D, "d#": DSharp, "eb": DSharp,
	"e": E,
	"f": F, "f#": FSharp, "gb": FSharp,
	"g": G, "g#": GSharp, "ab": GSharp,
	"a": A, "a#": ASharp, "bb": ASharp,
	"b": B,
}

func (n PitchName) String() string {
	if n < C || n > B {
		return fmt.Sprintf("PitchName(%d)", int(n))
	}
	return pitchNames[n]
}

// ParsePitchName parses names like "c#", "Eb" or "A". Flats are accepted as
// aliases of the enharmonic sharps.
func ParsePitchName(s string) (PitchName, error) {
	if n, ok := pitchNameLookup[cases.Fold().String(strings.TrimSpace(s))]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: unknown pitch name %q", ErrConfiguration, s)
}

// ParsePitch parses a pitch name directly followed by an octave number, e.g.
// "e2", "C#4" or "a-1".
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "-0123456789")
	if i <= 0 {
		return Pitch{}, fmt.Errorf("%w: pitch %q should be a name followed by an octave", ErrConfiguration, s)
	}
	name, err := ParsePitchName(s[:i])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in pitch %q: %v", ErrConfiguration, s, err)
	}
	return Pitch{Name: name, Octave: octave}, nil
}

func (p Pitch) String() string {
	return p.Name.String() + strconv.Itoa(p.Octave)
}

// NewTuning returns the tuning for a named tuning system. An empty system name
// selects twelve-tone equal temperament.
func NewTuning(system string, reference float64) (Tuning, error) {
	switch system {
	case "", EqualTemperament, EqualTemperamentShort:
	default:
		return Tuning{}, fmt.Errorf("%w: unsupported tuning system %q (only %v is supported)", ErrConfiguration, system, EqualTemperament)
	}
	if !(reference > 0) || math.IsInf(reference, 0) {
		return Tuning{}, fmt.Errorf("%w: reference frequency must be positive, got %v", ErrConfiguration, reference)
	}
	return Tuning{System: EqualTemperament, Reference: reference}, nil
}

// DefaultTuning is A4 = 440 Hz equal temperament.
func DefaultTuning() Tuning {
	return Tuning{System: EqualTemperament, Reference: DefaultReference}
}

// Distance returns the number of semitones from the reference pitch (A4) to p.
func (t Tuning) Distance(p Pitch) int {
	return int(p.Name) - int(ReferencePitch.Name) + semitonesPerOctave*(p.Octave-ReferencePitch.Octave)
}

// FrequencyAt returns the frequency in Hz of the pitch the given number of
// semitones away from the reference pitch.
func (t Tuning) FrequencyAt(distance int) float64 {
	return t.Reference * math.Pow(2, float64(distance)/semitonesPerOctave)
}

func (t Tuning) Frequency(p Pitch) float64 {
	return t.FrequencyAt(t.Distance(p))
}

// FrequencyOf returns the frequency in Hz of the named pitch in the given
// octave.
func (t Tuning) FrequencyOf(name PitchName, octave int) float64 {
	return t.Frequency(Pitch{Name: name, Octave: octave})
}
