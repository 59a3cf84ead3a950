package lipsync

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
	"github.com/biolimbo/lip-sync-engine/pkg/audio/resampler"
	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
	"github.com/biolimbo/lip-sync-engine/pkg/textutil"
)

// Recognizer turns audio into a timeline of phones. dialog is an optional
// transcript hint; empty means none.
type Recognizer interface {
	RecognizePhones(ctx context.Context, clip *pcm.Clip, dialog string, progress ProgressSink) (*Timeline[Phone], error)
}

const (
	// RecognitionRate is the sample rate recognition runs at.
	RecognitionRate = 16000

	// DefaultThreshold is the RMS level above which a frame counts as voiced.
	DefaultThreshold = 0.02

	// DefaultFrameDuration is the analysis frame length.
	DefaultFrameDuration = 10 * time.Millisecond

	// framesPerPhone is how many voiced frames one phone spans.
	framesPerPhone = 8

	// minVoicedFrames drops clicks shorter than this.
	minVoicedFrames = 3
)

// EnergyRecognizer is a speech-model-free Recognizer. It marks frames whose
// RMS exceeds Threshold as voiced and lays phones over each voiced run. Phones
// come from the dialog hint when one is given, otherwise from a
// consonant-vowel alternation whose vowels follow the frame energy.
type EnergyRecognizer struct {
	// Threshold is the voicing RMS level in [0, 1]. Zero means DefaultThreshold.
	Threshold float64

	// FrameDuration is the analysis window. Zero means DefaultFrameDuration.
	FrameDuration time.Duration

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

var _ Recognizer = (*EnergyRecognizer)(nil)

func (r *EnergyRecognizer) threshold() float64 {
	if r.Threshold > 0 {
		return r.Threshold
	}
	return DefaultThreshold
}

func (r *EnergyRecognizer) frameDuration() time.Duration {
	if r.FrameDuration > 0 {
		return r.FrameDuration
	}
	return DefaultFrameDuration
}

func (r *EnergyRecognizer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// RecognizePhones implements Recognizer.
func (r *EnergyRecognizer) RecognizePhones(ctx context.Context, clip *pcm.Clip, dialog string, progress ProgressSink) (*Timeline[Phone], error) {
	if progress == nil {
		progress = NullProgress{}
	}
	clip16k, err := resampler.Clip(clip, RecognitionRate)
	if err != nil {
		return nil, err
	}

	frameDur := r.frameDuration()
	frameLen := max(1, int(int64(RecognitionRate)*int64(frameDur)/int64(time.Second)))
	frames := (clip16k.Len() + frameLen - 1) / frameLen

	energy := make([]float64, frames)
	for i := range frames {
		if i%100 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		energy[i] = rms(clip16k, i*frameLen, frameLen)
		progress.Report(0.9 * float64(i+1) / float64(frames))
	}

	runs := voicedRuns(energy, r.threshold())

	var hint []Phone
	if dialog != "" {
		hint = dialogPhones(ranges.Collect(textutil.Words(textutil.ToLowerCopy(dialog))))
	}

	duration := clip.Duration()
	frameTime := func(i int) time.Duration {
		return min(duration, time.Duration(i)*frameDur)
	}

	tl := NewTimeline[Phone](duration)
	next := 0
	for _, run := range runs {
		n := max(1, (run.end-run.start)/framesPerPhone)
		for k := range n {
			start := run.start + k*(run.end-run.start)/n
			end := run.start + (k+1)*(run.end-run.start)/n
			var p Phone
			if next < len(hint) {
				p = hint[next]
			} else {
				p = defaultPhone(next, peak(energy[start:end]), r.threshold())
			}
			next++
			if err := tl.Add(frameTime(start), frameTime(end), p); err != nil {
				return nil, err
			}
		}
	}
	progress.Report(1)

	r.logger().Debug("lipsync: recognized phones",
		"frames", frames,
		"voiced_runs", len(runs),
		"phones", tl.Len(),
		"dialog_phones", len(hint),
	)
	return tl, nil
}

type run struct{ start, end int }

func voicedRuns(energy []float64, threshold float64) []run {
	var runs []run
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= minVoicedFrames {
			runs = append(runs, run{start, end})
		}
		start = -1
	}
	for i, e := range energy {
		if e >= threshold {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(energy))
	return runs
}

var fillerConsonants = [...]Phone{M, T, S, L, N, F}

// defaultPhone alternates consonants and vowels, opening the mouth wider
// for louder segments.
func defaultPhone(i int, level, threshold float64) Phone {
	if i%2 == 0 {
		return fillerConsonants[(i/2)%len(fillerConsonants)]
	}
	switch {
	case level >= 8*threshold:
		return AA
	case level >= 4*threshold:
		return EH
	case level >= 2*threshold:
		return OW
	}
	return Schwa
}

func rms(c *pcm.Clip, start, n int) float64 {
	var sum float64
	var count int
	for s := range c.Window(start, n) {
		sum += float64(s) * float64(s)
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(count))
}

func peak(energy []float64) float64 {
	var m float64
	for _, e := range energy {
		m = max(m, e)
	}
	return m
}
