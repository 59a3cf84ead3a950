package lipsync

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/fbank"
	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
	"github.com/biolimbo/lip-sync-engine/pkg/audio/resampler"
	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
	"github.com/biolimbo/lip-sync-engine/pkg/textutil"
)

// DefaultSpectralThreshold is how far above the noise floor, in dB, a frame
// must be to count as voiced.
const DefaultSpectralThreshold = 25.0

// SpectralRecognizer classifies frames by their mel spectrum. Voiced frames
// are split into fricatives, closed, rounded, mid and open sounds, and runs
// of one class become one phone. A dialog hint relabels the runs in order.
type SpectralRecognizer struct {
	// Threshold is the voicing level above the noise floor in dB. Zero
	// means DefaultSpectralThreshold.
	Threshold float64

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

var _ Recognizer = (*SpectralRecognizer)(nil)

type frameClass uint8

const (
	classSilent frameClass = iota
	classClosed
	classFricative
	classRounded
	classMid
	classOpen
)

var classPhones = [...]Phone{
	classClosed:    M,
	classFricative: S,
	classRounded:   UW,
	classMid:       EH,
	classOpen:      AA,
}

// RecognizePhones implements Recognizer.
func (r *SpectralRecognizer) RecognizePhones(ctx context.Context, clip *pcm.Clip, dialog string, progress ProgressSink) (*Timeline[Phone], error) {
	if progress == nil {
		progress = NullProgress{}
	}
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = DefaultSpectralThreshold
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clip16k, err := resampler.Clip(clip, RecognitionRate)
	if err != nil {
		return nil, err
	}
	ext := fbank.New(fbank.DefaultConfig())
	features, err := ext.ExtractClip(clip16k)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	progress.Report(0.5)

	energy := make([]float64, len(features))
	for i, f := range features {
		energy[i] = fbank.Energy(f)
	}
	floor := noiseFloor(energy)

	classes := make([]frameClass, len(features))
	for i, f := range features {
		classes[i] = classify(f, energy[i]-floor, threshold)
	}
	smoothClasses(classes, minVoicedFrames)

	var hint []Phone
	if dialog != "" {
		hint = dialogPhones(ranges.Collect(textutil.Words(textutil.ToLowerCopy(dialog))))
	}

	duration := clip.Duration()
	hop := time.Duration(ext.Config().HopSize) * time.Second / RecognitionRate
	frameTime := func(i int) time.Duration {
		return min(duration, time.Duration(i)*hop)
	}

	tl := NewTimeline[Phone](duration)
	next := 0
	for start := 0; start < len(classes); {
		end := start + 1
		for end < len(classes) && classes[end] == classes[start] {
			end++
		}
		if c := classes[start]; c != classSilent {
			p := classPhones[c]
			if next < len(hint) {
				p = hint[next]
			}
			next++
			if err := tl.Add(frameTime(start), frameTime(end), p); err != nil {
				return nil, err
			}
		}
		start = end
	}
	progress.Report(1)

	logger.Debug("lipsync: spectral recognition",
		"frames", len(features),
		"noise_floor_db", floor,
		"phones", tl.Len(),
	)
	return tl, nil
}

// maxNoiseFloor caps the estimated background level in dB, so a clip that
// is voiced throughout is still measured against a quiet room.
const maxNoiseFloor = -30.0

// noiseFloor estimates the background level as the 10th percentile frame
// energy, at most maxNoiseFloor.
func noiseFloor(energy []float64) float64 {
	if len(energy) == 0 {
		return maxNoiseFloor
	}
	sorted := slices.Clone(energy)
	slices.Sort(sorted)
	return min(sorted[len(sorted)/10], maxNoiseFloor)
}

func classify(mel []float32, level, threshold float64) frameClass {
	switch {
	case level < threshold:
		return classSilent
	case level < threshold+6:
		// Barely voiced: lips closing or opening.
		return classClosed
	case fbank.BandRatio(mel, 0.75) > 0.5:
		return classFricative
	}
	switch c := fbank.Centroid(mel); {
	case c < 0.2:
		return classRounded
	case c < 0.35:
		return classOpen
	default:
		return classMid
	}
}

// smoothClasses merges runs shorter than minLen into the preceding run so
// the mouth does not flicker.
func smoothClasses(classes []frameClass, minLen int) {
	for start := 0; start < len(classes); {
		end := start + 1
		for end < len(classes) && classes[end] == classes[start] {
			end++
		}
		if end-start < minLen && start > 0 {
			for i := start; i < end; i++ {
				classes[i] = classes[start-1]
			}
			// Re-scan from the merged run's start.
			for start > 0 && classes[start-1] == classes[start] {
				start--
			}
			continue
		}
		start = end
	}
}
