// Package resampler converts in-memory PCM16 clips between sample rates
// using a pure Go resampler, so it works on targets without cgo or a
// native audio backend.
//
// Example usage:
//
//	clip16k, err := resampler.Clip(clip, 16000)
//	if err != nil {
//	    return err
//	}
package resampler
