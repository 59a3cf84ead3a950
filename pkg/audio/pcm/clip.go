package pcm

import (
	"errors"
	"iter"
	"slices"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
)

var (
	// ErrInvalidSampleRate is returned for a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("pcm: sample rate must be positive")
	// ErrEmptyClip is returned when a clip would hold no samples.
	ErrEmptyClip = errors.New("pcm: sample count must be greater than zero")
)

// Clip is an in-memory mono PCM16 buffer. A Clip owns a private copy of its
// samples and is never modified after construction.
type Clip struct {
	samples []int16
	rate    int
}

// NewClip copies samples into a new Clip.
func NewClip(samples []int16, sampleRate int) (*Clip, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}
	return &Clip{samples: slices.Clone(samples), rate: sampleRate}, nil
}

// Len returns the number of samples.
func (c *Clip) Len() int { return len(c.samples) }

// SampleRate returns the sample rate in Hz.
func (c *Clip) SampleRate() int { return c.rate }

// Duration returns the playback length of the clip.
func (c *Clip) Duration() time.Duration {
	return time.Duration(len(c.samples)) * time.Second / time.Duration(c.rate)
}

// Format returns the matching standard format, if the sample rate is one.
func (c *Clip) Format() (Format, bool) {
	return FormatFor(c.rate)
}

// Clone returns an independent copy of c.
func (c *Clip) Clone() *Clip {
	return &Clip{samples: slices.Clone(c.samples), rate: c.rate}
}

// SampleReader returns a function reading normalized samples by index. The
// index is not bounds-checked beyond Go's own slice checks.
func (c *Clip) SampleReader() func(int) float32 {
	samples := c.samples
	return func(i int) float32 {
		return Normalize(samples[i])
	}
}

// Samples yields the normalized samples in order.
func (c *Clip) Samples() iter.Seq[float32] {
	return ranges.Pipe(slices.Values(c.samples), ranges.Transformed(Normalize))
}

// Window yields the normalized samples in [start, start+n), clipped to the
// clip bounds.
func (c *Clip) Window(start, n int) iter.Seq[float32] {
	start = max(0, min(start, len(c.samples)))
	end := max(start, min(start+n, len(c.samples)))
	return ranges.Pipe(slices.Values(c.samples[start:end]), ranges.Transformed(Normalize))
}

// Int16s returns a copy of the raw samples.
func (c *Clip) Int16s() []int16 {
	return slices.Clone(c.samples)
}

// Bytes returns the samples encoded as little-endian PCM16.
func (c *Clip) Bytes() []byte {
	return EncodeL16(c.samples)
}

// Normalize maps a PCM16 sample to [-1, 1).
func Normalize(s int16) float32 {
	return float32(s) / 32768
}
