package pcm

import (
	"fmt"
	"time"
)

const (
	// L16Mono8K represents audio/L16; rate=8000; channels=1
	L16Mono8K Format = iota
	// L16Mono16K represents audio/L16; rate=16000; channels=1
	L16Mono16K
	// L16Mono22K represents audio/L16; rate=22050; channels=1
	L16Mono22K
	// L16Mono24K represents audio/L16; rate=24000; channels=1
	L16Mono24K
	// L16Mono44K represents audio/L16; rate=44100; channels=1
	L16Mono44K
	// L16Mono48K represents audio/L16; rate=48000; channels=1
	L16Mono48K
)

var sampleRates = [...]int{
	L16Mono8K:  8000,
	L16Mono16K: 16000,
	L16Mono22K: 22050,
	L16Mono24K: 24000,
	L16Mono44K: 44100,
	L16Mono48K: 48000,
}

// Format represents a 16-bit mono PCM format.
type Format int

// FormatFor returns the Format with the given sample rate.
func FormatFor(rate int) (Format, bool) {
	for f, r := range sampleRates {
		if r == rate {
			return Format(f), true
		}
	}
	return 0, false
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(sampleRates)
}

// SampleRate returns the sample rate in Hz for this format.
func (f Format) SampleRate() int {
	if !f.valid() {
		panic("pcm: invalid audio type")
	}
	return sampleRates[f]
}

// Channels returns the number of audio channels for this format.
func (f Format) Channels() int { return 1 }

// Depth returns the bit depth for this format.
func (f Format) Depth() int { return 16 }

// Samples returns the number of samples in the given number of bytes.
func (f Format) Samples(bytes int64) int64 {
	return bytes * 8 / int64(f.Channels()) / int64(f.Depth())
}

// SamplesInDuration returns the number of samples in the given duration.
func (f Format) SamplesInDuration(d time.Duration) int64 {
	return int64(time.Duration(f.SampleRate()) * d / time.Second)
}

// BytesInDuration returns the number of bytes in the given duration.
func (f Format) BytesInDuration(d time.Duration) int64 {
	return f.SamplesInDuration(d) * int64(f.Channels()) * int64(f.Depth()) / 8
}

// Duration returns the duration of the given number of bytes.
func (f Format) Duration(bytes int64) time.Duration {
	return time.Duration(f.Samples(bytes)) * time.Second / time.Duration(f.SampleRate())
}

// String returns a human-readable string representation of the format.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("pcm.Format(%d)", int(f))
	}
	return fmt.Sprintf("audio/L16; rate=%d; channels=1", f.SampleRate())
}
