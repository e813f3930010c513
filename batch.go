package fretwav

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type (
	// Options controls which files Render writes and where.
	Options struct {
		Dir  string // output directory; must exist
		Midi bool   // also write a .mid file per chord
		Raw  bool   // also write a .raw file per chord
		Jobs int    // number of chords rendered in parallel; 0 means runtime.NumCPU()
	}

	// Result reports the outcome of rendering one chord of a book.
	Result struct {
		Chord Chord
		Files []string // files written, even if a later output failed
		Err   error
	}

	renderer struct {
		fretboard Fretboard
		synth     Synth
		namer     *Namer
		options   Options
	}
)

// Render renders every chord of the book to its own files. An error is
// returned only if the book itself is unusable; failures of single chords are
// reported in their Result and the other chords are rendered regardless. The
// results are in the same order as the chords of the book.
func Render(book Book, options Options) ([]Result, error) {
	book = book.WithDefaults()
	fretboard, err := book.Fretboard()
	if err != nil {
		return nil, fmt.Errorf("invalid chord book: %w", err)
	}
	synth, err := book.Synth()
	if err != nil {
		return nil, fmt.Errorf("invalid chord book: %w", err)
	}
	namer, err := NewNamer(book.Output)
	if err != nil {
		return nil, fmt.Errorf("invalid chord book: %w", err)
	}
	r := renderer{fretboard: fretboard, synth: synth, namer: namer, options: options}
	jobs := options.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results := make([]Result, len(book.Chords))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, chord := range book.Chords {
		i, chord := i, chord
		g.Go(func() error {
			results[i] = r.chord(i, chord)
			return nil
		})
	}
	g.Wait()
	return results, nil
}

// RenderChord renders a single chord with the given instrument and synth and
// writes it to path as a .wav file.
func RenderChord(fretboard Fretboard, synth Synth, tab Tab, path string) error {
	freqs, err := fretboard.Resolve(tab)
	if err != nil {
		return err
	}
	samples, err := synth.Render(freqs)
	if err != nil {
		return err
	}
	return WriteWav(path, synth.SampleRate, samples)
}

func (r *renderer) chord(index int, chord Chord) Result {
	res := Result{Chord: chord}
	fail := func(err error) Result {
		res.Err = fmt.Errorf("chord %q (%v): %w", chord.Name, chord.Tab, err)
		return res
	}
	output := func(ext string, write func(path string) error) error {
		path, err := r.namer.Path(r.options.Dir, index, chord.Name, ext)
		if err != nil {
			return err
		}
		if err := write(path); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
		return nil
	}
	freqs, err := r.fretboard.Resolve(chord.Tab)
	if err != nil {
		return fail(err)
	}
	samples, err := r.synth.Render(freqs)
	if err != nil {
		return fail(err)
	}
	err = output(".wav", func(path string) error {
		return WriteWav(path, r.synth.SampleRate, samples)
	})
	if err != nil {
		return fail(err)
	}
	if r.options.Raw {
		err := output(".raw", func(path string) error {
			raw, err := Raw(samples)
			if err != nil {
				return err
			}
			return WriteFile(path, raw)
		})
		if err != nil {
			return fail(err)
		}
	}
	if r.options.Midi {
		err := output(".mid", func(path string) error {
			keys, err := r.fretboard.Keys(chord.Tab)
			if err != nil {
				return err
			}
			mid, err := Midi(chord.Name, keys, r.synth.Duration)
			if err != nil {
				return err
			}
			return WriteFile(path, mid)
		})
		if err != nil {
			return fail(err)
		}
	}
	return res
}
