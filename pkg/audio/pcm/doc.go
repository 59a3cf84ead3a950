// Package pcm provides types and utilities for 16-bit PCM audio held in
// memory.
//
// Key types:
//   - Format: a 16-bit mono format at one of the common sample rates
//   - Clip: an immutable in-memory buffer of signed 16-bit samples
//
// Nothing in this package touches the filesystem or an audio device;
// callers hand in samples they already own:
//
//	clip, err := pcm.NewClip(samples, 16000)
//	if err != nil {
//	    return err
//	}
//	read := clip.SampleReader()
//	first := read(0) // normalized to [-1, 1)
package pcm
