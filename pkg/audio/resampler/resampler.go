package resampler

import (
	"errors"
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
)

// ErrTooShort is returned when a clip is too short to produce any output
// sample at the target rate.
var ErrTooShort = errors.New("resampler: clip too short for target rate")

// Clip returns c resampled to rate. When the rates already match, c itself
// is returned.
func Clip(c *pcm.Clip, rate int) (*pcm.Clip, error) {
	if rate <= 0 {
		return nil, pcm.ErrInvalidSampleRate
	}
	if c.SampleRate() == rate {
		return c, nil
	}

	want := int(int64(c.Len()) * int64(rate) / int64(c.SampleRate()))
	if want == 0 {
		return nil, ErrTooShort
	}

	input := make([]float64, 0, c.Len())
	for s := range c.Samples() {
		input = append(input, float64(s))
	}
	output, err := Float64(input, c.SampleRate(), rate)
	if err != nil {
		return nil, err
	}

	// The filter delay can leave the tail short; pad with silence so the
	// clip keeps its duration.
	samples := make([]int16, want)
	for i := range min(want, len(output)) {
		samples[i] = toInt16(output[i])
	}
	return pcm.NewClip(samples, rate)
}

// Float64 resamples mono samples normalized to [-1, 1] from one rate to
// another.
func Float64(input []float64, from, to int) ([]float64, error) {
	if from <= 0 || to <= 0 {
		return nil, pcm.ErrInvalidSampleRate
	}
	if from == to {
		return input, nil
	}
	config := &resampling.Config{
		InputRate:  float64(from),
		OutputRate: float64(to),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}
	r, err := resampling.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}
	output, err := r.Process(input)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	return output, nil
}

func toInt16(s float64) int16 {
	switch {
	case s >= 1.0:
		return 32767
	case s < -1.0:
		return -32768
	}
	return int16(s * 32767.0)
}
