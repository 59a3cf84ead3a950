package resampler

import (
	"errors"
	"testing"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
)

func TestClip_SameRate(t *testing.T) {
	c, err := pcm.NewClip(make([]int16, 160), 16000)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Clip(c, 16000)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if got != c {
		t.Fatal("same-rate Clip should return its input")
	}
}

func TestClip_Downsample(t *testing.T) {
	c, err := pcm.NewClip(make([]int16, 48000), 48000)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Clip(c, 16000)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if got.SampleRate() != 16000 {
		t.Fatalf("SampleRate = %d, want 16000", got.SampleRate())
	}
	if got.Len() != 16000 {
		t.Fatalf("Len = %d, want 16000", got.Len())
	}
	if got.Duration() != c.Duration() {
		t.Fatalf("Duration = %v, want %v", got.Duration(), c.Duration())
	}
}

func TestClip_Invalid(t *testing.T) {
	c, _ := pcm.NewClip([]int16{1}, 48000)
	if _, err := Clip(c, 0); !errors.Is(err, pcm.ErrInvalidSampleRate) {
		t.Fatalf("rate 0 error = %v", err)
	}
	if _, err := Clip(c, 8000); !errors.Is(err, ErrTooShort) {
		t.Fatalf("short clip error = %v", err)
	}
}

func TestToInt16(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1.5, 32767},
		{-1.5, -32768},
		{0.5, 16383},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
