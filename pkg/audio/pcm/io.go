package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOddLength is returned when a PCM16 byte stream ends mid-sample.
var ErrOddLength = errors.New("pcm: odd number of bytes in PCM16 data")

// DecodeL16 decodes little-endian PCM16 bytes into samples.
func DecodeL16(b []byte) ([]int16, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out, nil
}

// EncodeL16 encodes samples as little-endian PCM16 bytes.
func EncodeL16(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// ReadAll reads a raw little-endian PCM16 stream until EOF.
func ReadAll(r io.Reader) ([]int16, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pcm: read: %w", err)
	}
	return DecodeL16(b)
}
