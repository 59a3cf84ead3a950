package lipsync

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
)

func toneClip(t *testing.T, freq float64, from, to time.Duration) *pcm.Clip {
	t.Helper()
	samples := make([]int16, 16000)
	for i := int(from * 16000 / time.Second); i < int(to*16000/time.Second); i++ {
		samples[i] = int16(12000 * math.Sin(2*math.Pi*freq*float64(i)/16000))
	}
	c, err := pcm.NewClip(samples, 16000)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSpectralRecognizer_Silence(t *testing.T) {
	c, _ := pcm.NewClip(make([]int16, 16000), 16000)
	phones, err := (&SpectralRecognizer{}).RecognizePhones(context.Background(), c, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if phones.Len() != 0 {
		t.Fatalf("phones = %d, want 0", phones.Len())
	}
	if phones.Duration() != time.Second {
		t.Fatalf("Duration = %v", phones.Duration())
	}
}

func TestSpectralRecognizer_Classes(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want Phone
	}{
		{"low tone is rounded", 220, UW},
		{"hiss is fricative", 6000, S},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := toneClip(t, tt.freq, 300*time.Millisecond, 700*time.Millisecond)
			phones, err := (&SpectralRecognizer{}).RecognizePhones(context.Background(), c, "", nil)
			if err != nil {
				t.Fatal(err)
			}
			var held time.Duration
			for p := range phones.All() {
				if p.Start < 250*time.Millisecond || p.End > 750*time.Millisecond {
					t.Errorf("phone %v outside the tone", p)
				}
				if p.Value == tt.want {
					held += p.Len()
				}
			}
			if held < 300*time.Millisecond {
				t.Fatalf("%v held %v, want most of the tone; phones: %v", tt.want, held, phones.items)
			}
		})
	}
}

func TestSpectralRecognizer_ContinuousTone(t *testing.T) {
	c := toneClip(t, 220, 0, time.Second)
	phones, err := (&SpectralRecognizer{}).RecognizePhones(context.Background(), c, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	var held time.Duration
	for p := range phones.All() {
		if p.Value == UW {
			held += p.Len()
		}
	}
	if held < 800*time.Millisecond {
		t.Fatalf("UW held %v of a 1s tone; phones: %v", held, phones.items)
	}
}

func TestSpectralRecognizer_DialogHint(t *testing.T) {
	c := toneClip(t, 220, 300*time.Millisecond, 700*time.Millisecond)
	phones, err := (&SpectralRecognizer{}).RecognizePhones(context.Background(), c, "bob", nil)
	if err != nil {
		t.Fatal(err)
	}
	if phones.Len() == 0 || phones.At(0).Value != B {
		t.Fatalf("phones = %v, want B first", phones.items)
	}
}

func TestSmoothClasses(t *testing.T) {
	in := []frameClass{0, 0, 0, 5, 0, 0, 0, 3, 3, 3, 3, 4, 3, 3, 3}
	want := []frameClass{0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3, 3, 3, 3}
	smoothClasses(in, 3)
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("smoothClasses = %v, want %v", in, want)
		}
	}
}

func TestNoiseFloor(t *testing.T) {
	tests := []struct {
		name   string
		energy []float64
		want   float64
	}{
		{"percentile", []float64{-45, -41, -49, -43, -47, -42, -48, -44, -46, -40}, -48},
		{"loud throughout", []float64{12, 10, 11, 14, 13}, maxNoiseFloor},
		{"empty", nil, maxNoiseFloor},
	}
	for _, tt := range tests {
		if got := noiseFloor(tt.energy); got != tt.want {
			t.Errorf("%s: noiseFloor = %v, want %v", tt.name, got, tt.want)
		}
	}
}
