// Package fbank computes log mel filterbank features from PCM audio.
//
// The spectral recognizer uses the features to tell open vowels, rounded
// vowels and fricatives apart. Default parameters follow the Kaldi
// convention at a reduced mel resolution:
//
//	SampleRate:  16000
//	WindowSize:  400 (25 ms)
//	HopSize:     160 (10 ms)
//	FFTSize:     512
//	NumMels:     40
//	LowFreq:     20
//	HighFreq:  7600
//	PreEmphasis: 0.97
package fbank

import (
	"errors"
	"fmt"
	"math"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
)

// ErrSampleRate is returned when a clip does not match the extractor's
// sample rate.
var ErrSampleRate = errors.New("fbank: sample rate mismatch")

// Config controls mel filterbank extraction parameters.
type Config struct {
	SampleRate  int     // audio sample rate in Hz (default 16000)
	WindowSize  int     // window length in samples (default 400 = 25ms)
	HopSize     int     // hop length in samples (default 160 = 10ms)
	FFTSize     int     // FFT size, rounded up to a power of two (default 512)
	NumMels     int     // number of mel bins (default 40)
	LowFreq     float64 // lowest mel frequency (default 20)
	HighFreq    float64 // highest mel frequency (default 7600)
	PreEmphasis float64 // pre-emphasis coefficient (default 0.97)
}

// DefaultConfig returns the configuration used for recognition.
func DefaultConfig() Config {
	return Config{
		SampleRate:  16000,
		WindowSize:  400,
		HopSize:     160,
		FFTSize:     512,
		NumMels:     40,
		LowFreq:     20,
		HighFreq:    7600,
		PreEmphasis: 0.97,
	}
}

// Extractor computes mel filterbank features from PCM samples. It holds
// no per-call state and may be shared.
type Extractor struct {
	cfg     Config
	window  []float64
	filters []melFilter
	fft     *fft
}

// New creates an Extractor. An FFTSize that is not a power of two, or is
// shorter than the window, is rounded up.
func New(cfg Config) *Extractor {
	plan := newFFT(max(cfg.FFTSize, cfg.WindowSize))
	cfg.FFTSize = plan.n
	return &Extractor{
		cfg:     cfg,
		window:  hamming(cfg.WindowSize),
		filters: melFilters(cfg.NumMels, cfg.FFTSize, cfg.SampleRate, cfg.LowFreq, cfg.HighFreq),
		fft:     plan,
	}
}

// Config returns the extractor's configuration.
func (e *Extractor) Config() Config { return e.cfg }

// Frames returns how many feature frames n samples produce.
func (e *Extractor) Frames(n int) int {
	if n < e.cfg.WindowSize {
		return 0
	}
	return (n-e.cfg.WindowSize)/e.cfg.HopSize + 1
}

// Extract computes log mel filterbank features from samples normalized to
// [-1, 1]. The result is a [T][NumMels] matrix with T = Frames(len(samples)).
func (e *Extractor) Extract(samples []float32) [][]float32 {
	cfg := e.cfg
	numFrames := e.Frames(len(samples))
	if numFrames == 0 {
		return nil
	}

	features := make([][]float32, numFrames)
	buf := make([]complex128, e.fft.n)
	power := make([]float64, e.fft.n/2+1)

	for t := range numFrames {
		frame := samples[t*cfg.HopSize:]

		// Pre-emphasis and windowing; the tail stays zero padded.
		for i := range buf {
			if i >= cfg.WindowSize {
				buf[i] = 0
				continue
			}
			s := float64(frame[i])
			if i > 0 {
				s -= cfg.PreEmphasis * float64(frame[i-1])
			}
			buf[i] = complex(s*e.window[i], 0)
		}
		e.fft.transform(buf)
		e.fft.power(buf, power)

		mel := make([]float32, len(e.filters))
		for m, f := range e.filters {
			// Floor avoids -inf on digital silence.
			mel[m] = float32(math.Log(max(f.apply(power), 1e-10)))
		}
		features[t] = mel
	}
	return features
}

// ExtractClip extracts features from a clip at the extractor's sample rate.
func (e *Extractor) ExtractClip(c *pcm.Clip) ([][]float32, error) {
	if c.SampleRate() != e.cfg.SampleRate {
		return nil, fmt.Errorf("%w: clip %d Hz, extractor %d Hz", ErrSampleRate, c.SampleRate(), e.cfg.SampleRate)
	}
	samples := make([]float32, 0, c.Len())
	for s := range c.Samples() {
		samples = append(samples, s)
	}
	return e.Extract(samples), nil
}

// Energy returns the total power of a log mel frame in decibels.
func Energy(mel []float32) float64 {
	var sum float64
	for _, v := range mel {
		sum += math.Exp(float64(v))
	}
	return 10 * math.Log10(max(sum, 1e-10))
}

// Centroid returns the power-weighted mean mel bin of a frame, scaled to
// [0, 1].
func Centroid(mel []float32) float64 {
	if len(mel) < 2 {
		return 0
	}
	var num, den float64
	for m, v := range mel {
		p := math.Exp(float64(v))
		num += float64(m) * p
		den += p
	}
	if den == 0 {
		return 0
	}
	return num / den / float64(len(mel)-1)
}

// BandRatio returns the share of frame power in the bins at or above the
// fraction from of the mel range.
func BandRatio(mel []float32, from float64) float64 {
	cut := int(math.Ceil(from * float64(len(mel))))
	var hi, total float64
	for m, v := range mel {
		p := math.Exp(float64(v))
		total += p
		if m >= cut {
			hi += p
		}
	}
	if total == 0 {
		return 0
	}
	return hi / total
}

// CMVN applies mean and variance normalization in place. For each mel
// dimension it subtracts the mean and divides by the standard deviation
// across all frames, removing the recording's overall level and tilt.
func CMVN(features [][]float32) {
	if len(features) == 0 {
		return
	}
	numMels := len(features[0])
	T := float64(len(features))

	for m := range numMels {
		sum := 0.0
		for _, f := range features {
			sum += float64(f[m])
		}
		mean := sum / T

		varSum := 0.0
		for _, f := range features {
			d := float64(f[m]) - mean
			varSum += d * d
		}
		std := max(math.Sqrt(varSum/T), 1e-10)

		for _, f := range features {
			f[m] = float32((float64(f[m]) - mean) / std)
		}
	}
}
