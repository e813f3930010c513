package fretwav

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// Book is a chord book: render settings, the tuning of the instrument and
	// an ordered list of chords to render. Zero values mean defaults; see
	// WithDefaults.
	Book struct {
		SampleRate int     `yaml:",omitempty"`
		Duration   float64 `yaml:",omitempty"` // in seconds
		Reference  float64 `yaml:",omitempty"` // frequency of A4 in Hz
		Tuning     string  `yaml:",omitempty"` // name of the tuning system
		// Strings lists the pitches of the open strings, e.g. "e2"; empty
		// means a standard tuned six string guitar.
		Strings []string `yaml:",flow,omitempty"`
		// Output is the template for output file names, without extension.
		Output string  `yaml:",omitempty"`
		Chords []Chord `yaml:",omitempty"`
	}

	// Chord is a named tab.
	Chord struct {
		Name string
		Tab  Tab `yaml:",flow"`
	}
)

const DefaultOutput = "{{ .Name }}"

//go:embed chords/default.yml
var defaultBook []byte

// DefaultBook returns the built-in chord book.
func DefaultBook() Book {
	var b Book
	if err := yaml.Unmarshal(defaultBook, &b); err != nil {
		panic(fmt.Sprintf("built-in chord book is invalid: %v", err))
	}
	return b
}

// LoadBook parses a chord book from .json or .yml contents.
func LoadBook(data []byte) (Book, error) {
	var book Book
	if errJSON := json.Unmarshal(data, &book); errJSON != nil {
		book = Book{}
		if errYaml := yaml.Unmarshal(data, &book); errYaml != nil {
			return Book{}, fmt.Errorf("the chord book could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	return book, nil
}

// WithDefaults returns a copy of the book with the zero valued settings
// replaced by their defaults.
func (b Book) WithDefaults() Book {
	if b.SampleRate == 0 {
		b.SampleRate = DefaultSampleRate
	}
	if b.Duration == 0 {
		b.Duration = DefaultDuration
	}
	if b.Reference == 0 {
		b.Reference = DefaultReference
	}
	if b.Tuning == "" {
		b.Tuning = EqualTemperament
	}
	if len(b.Strings) == 0 {
		for _, p := range StandardGuitar(Tuning{}).Strings {
			b.Strings = append(b.Strings, p.String())
		}
	}
	if b.Output == "" {
		b.Output = DefaultOutput
	}
	return b
}

// Fretboard returns the instrument described by the book.
func (b Book) Fretboard() (Fretboard, error) {
	b = b.WithDefaults()
	tuning, err := NewTuning(b.Tuning, b.Reference)
	if err != nil {
		return Fretboard{}, err
	}
	strings := make([]Pitch, len(b.Strings))
	for i, s := range b.Strings {
		if strings[i], err = ParsePitch(s); err != nil {
			return Fretboard{}, fmt.Errorf("string %d: %w", i+1, err)
		}
	}
	return Fretboard{Tuning: tuning, Strings: strings}, nil
}

// Synth returns the synth configured by the book.
func (b Book) Synth() (Synth, error) {
	b = b.WithDefaults()
	s := Synth{SampleRate: b.SampleRate, Duration: b.Duration}
	if err := s.Validate(); err != nil {
		return Synth{}, err
	}
	return s, nil
}
