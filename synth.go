package fretwav

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// Synth renders chords as sustained, unenveloped cosine tones of fixed
// length.
type Synth struct {
	SampleRate int
	Duration   float64 // in seconds
}

const (
	DefaultSampleRate = 44100
	DefaultDuration   = 30.0

	// Amplitude is the peak value of each tone, the largest int16.
	Amplitude = math.MaxInt16

	// MaxLength is the longest buffer Render produces: 1 GiB samples, which
	// is 2 GiB of 16-bit PCM and still fits the 32-bit size fields of .wav.
	MaxLength = 1 << 30
)

func DefaultSynth() Synth {
	return Synth{SampleRate: DefaultSampleRate, Duration: DefaultDuration}
}

// Length returns the number of samples in a rendered buffer.
func (s Synth) Length() int {
	return int(float64(s.SampleRate) * s.Duration)
}

func (s Synth) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrConfiguration, s.SampleRate)
	}
	if !(s.Duration > 0) || math.IsInf(s.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrConfiguration, s.Duration)
	}
	if l := float64(s.SampleRate) * s.Duration; l > MaxLength {
		return fmt.Errorf("%w: %v seconds at %v Hz is %v samples, more than the maximum of %v", ErrConfiguration, s.Duration, s.SampleRate, l, MaxLength)
	}
	return nil
}

// tone fills buffer with the cosine of frequency freq, starting at phase 0.
func (s Synth) tone(buffer []float64, freq float64) {
	for k := range buffer {
		t := float64(k) / float64(s.SampleRate)
		buffer[k] = Amplitude * math.Cos(2*math.Pi*freq*t)
	}
}

// Render mixes one tone per frequency into a mono 16-bit buffer. The tones are
// summed and the sum divided by the number of tones; the mean is truncated
// towards zero, not rounded.
func (s Synth) Render(freqs []float64) ([]int16, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("fretwav.Render failed: %w", err)
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("fretwav.Render failed: %w", ErrEmptyChord)
	}
	n := s.Length()
	mix := make([]float64, n)
	tmp := make([]float64, n)
	for _, f := range freqs {
		s.tone(tmp, f)
		vek.Add_Inplace(mix, tmp)
	}
	if len(freqs) > 1 {
		vek.DivNumber_Inplace(mix, float64(len(freqs)))
	}
	ret := make([]int16, n)
	for i, v := range mix {
		ret[i] = int16(clamp(math.Trunc(v), math.MinInt16, math.MaxInt16))
	}
	return ret, nil
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
