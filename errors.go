package fretwav

import "errors"

var (
	// ErrConfiguration is returned for unknown tuning systems, bad string
	// pitches and non-positive render settings.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrShapeMismatch is returned when a tab does not have exactly one entry
	// per string of the fretboard.
	ErrShapeMismatch = errors.New("tab length does not match the number of strings")

	// ErrEmptyChord is returned when a chord has no played strings, so there
	// is nothing to mix.
	ErrEmptyChord = errors.New("no strings played")

	// ErrIO wraps failures creating or writing output files.
	ErrIO = errors.New("could not write output")
)
