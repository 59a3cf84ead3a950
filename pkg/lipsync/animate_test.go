package lipsync_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
)

func silence(t *testing.T, n, rate int) *pcm.Clip {
	t.Helper()
	c, err := pcm.NewClip(make([]int16, n), rate)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// burst returns a clip with a tone between from and to and silence elsewhere.
func burst(t *testing.T, d, from, to time.Duration) *pcm.Clip {
	t.Helper()
	const rate = 16000
	n := int(d * rate / time.Second)
	samples := make([]int16, n)
	for i := int(from * rate / time.Second); i < int(to*rate/time.Second); i++ {
		samples[i] = int16(8000 * math.Sin(2*math.Pi*220*float64(i)/rate))
	}
	c, err := pcm.NewClip(samples, rate)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestAnimateClip_Silence(t *testing.T) {
	full, _ := lipsync.ParseShapeSet("GHX")
	tests := []struct {
		name    string
		targets lipsync.ShapeSet
		want    lipsync.Shape
	}{
		{"basic", lipsync.BasicShapes(), lipsync.ShapeA},
		{"extended", full, lipsync.ShapeX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := silence(t, 16000, 16000)
			anim, err := lipsync.AnimateClip(context.Background(), clip, "", &lipsync.EnergyRecognizer{}, tt.targets, lipsync.NullProgress{})
			if err != nil {
				t.Fatalf("AnimateClip: %v", err)
			}
			cues := ranges.Collect(anim.All())
			if len(cues) != 1 {
				t.Fatalf("cues = %v, want one", cues)
			}
			if cues[0].Start != 0 || cues[0].End != time.Second || cues[0].Value != tt.want {
				t.Fatalf("cue = %v, want [0s, 1s) %v", cues[0], tt.want)
			}
		})
	}
}

func TestAnimateClip_Speech(t *testing.T) {
	clip := burst(t, time.Second, 200*time.Millisecond, 600*time.Millisecond)
	targets, _ := lipsync.ParseShapeSet("X")

	var last float64
	progress := lipsync.ProgressFunc(func(p float64) {
		if p < last {
			t.Fatalf("progress went backwards: %v after %v", p, last)
		}
		last = p
	})
	anim, err := lipsync.AnimateClip(context.Background(), clip, "", &lipsync.EnergyRecognizer{}, targets, progress)
	if err != nil {
		t.Fatalf("AnimateClip: %v", err)
	}
	if last != 1 {
		t.Fatalf("final progress = %v, want 1", last)
	}

	cues := ranges.Collect(anim.All())
	if len(cues) < 3 {
		t.Fatalf("cues = %v, want rest, speech, rest", cues)
	}
	first, end := cues[0], cues[len(cues)-1]
	if first.Value != lipsync.ShapeX || first.End != 200*time.Millisecond {
		t.Errorf("first cue = %v, want X until 200ms", first)
	}
	if end.Value != lipsync.ShapeX || end.Start != 600*time.Millisecond || end.End != time.Second {
		t.Errorf("last cue = %v, want X from 600ms", end)
	}
	for i := 1; i < len(cues); i++ {
		if cues[i].Start != cues[i-1].End {
			t.Fatalf("gap between %v and %v", cues[i-1], cues[i])
		}
		if cues[i].Value == cues[i-1].Value {
			t.Fatalf("unjoined neighbours %v and %v", cues[i-1], cues[i])
		}
	}
}

func TestAnimateClip_DialogHint(t *testing.T) {
	clip := burst(t, time.Second, 0, 160*time.Millisecond)
	rec := &lipsync.EnergyRecognizer{}
	phones, err := rec.RecognizePhones(context.Background(), clip, "  Mama ", nil)
	if err != nil {
		t.Fatal(err)
	}
	got := ranges.Collect(phones.All())
	if len(got) != 2 {
		t.Fatalf("phones = %v, want two", got)
	}
	if got[0].Value != lipsync.M || got[1].Value != lipsync.AE {
		t.Fatalf("phones = %v, want M AE", got)
	}
}

func TestAnimateClip_Resampled(t *testing.T) {
	clip := silence(t, 48000, 48000)
	anim, err := lipsync.AnimateClip(context.Background(), clip, "", &lipsync.EnergyRecognizer{}, lipsync.BasicShapes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if anim.Duration() != time.Second {
		t.Fatalf("Duration = %v, want 1s", anim.Duration())
	}
}

func TestAnimateClip_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lipsync.AnimateClip(ctx, silence(t, 16000, 16000), "", &lipsync.EnergyRecognizer{}, lipsync.BasicShapes(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
