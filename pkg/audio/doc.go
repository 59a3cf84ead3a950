// Package audio groups the audio sub-packages used by the lip-sync engine:
//
//   - pcm: 16-bit mono clips, little-endian encoding and windowing
//   - resampler: sample-rate conversion onto the recognition rate
//   - fbank: log-mel filterbank features and per-frame spectral measures
//
// Example usage:
//
//	clip, err := pcm.NewClip(samples, 48000)
//	if err != nil {
//		return err
//	}
//	clip16k, err := resampler.Clip(clip, 16000)
//	if err != nil {
//		return err
//	}
//	frames, err := fbank.New(fbank.DefaultConfig()).ExtractClip(clip16k)
package audio
