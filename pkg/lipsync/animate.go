package lipsync

import (
	"context"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
)

// Animate maps phones to mouth shapes for the given target set. Gaps between
// phones become the rest shape X, every shape is converted to the target
// set, and equal neighbours are joined.
func Animate(phones *Timeline[Phone], targets ShapeSet) *Timeline[Shape] {
	shapes := NewTimeline[Shape](phones.Duration())
	for p := range phones.All() {
		// Phones are sorted and in range, so Add cannot fail.
		_ = shapes.Add(p.Start, p.End, ShapeFor(p.Value))
	}
	filled := shapes.Fill(ShapeX)
	converted := NewTimeline[Shape](filled.Duration())
	for s := range filled.All() {
		_ = converted.Add(s.Start, s.End, targets.Convert(s.Value))
	}
	return converted.Join()
}

// AnimateClip recognizes phones in clip and animates them.
func AnimateClip(ctx context.Context, clip *pcm.Clip, dialog string, rec Recognizer, targets ShapeSet, progress ProgressSink) (*Timeline[Shape], error) {
	phones, err := rec.RecognizePhones(ctx, clip, dialog, progress)
	if err != nil {
		return nil, err
	}
	return Animate(phones, targets), nil
}
