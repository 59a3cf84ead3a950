package lipsync

import (
	"errors"
	"testing"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
)

const cs = 10 * time.Millisecond

func TestTimeline_Add(t *testing.T) {
	tl := NewTimeline[int](100 * cs)
	if err := tl.Add(0, 10*cs, 1); err != nil {
		t.Fatal(err)
	}
	if err := tl.Add(5*cs, 20*cs, 2); !errors.Is(err, ErrOverlap) {
		t.Fatalf("overlapping Add error = %v", err)
	}
	if err := tl.Add(90*cs, 110*cs, 3); !errors.Is(err, ErrOverlap) {
		t.Fatalf("out of range Add error = %v", err)
	}
	if err := tl.Add(20*cs, 20*cs, 4); err != nil {
		t.Fatalf("empty Add error = %v", err)
	}
	if tl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tl.Len())
	}
}

func TestTimeline_FillJoin(t *testing.T) {
	tl := NewTimeline[string](100 * cs)
	_ = tl.Add(10*cs, 20*cs, "a")
	_ = tl.Add(20*cs, 30*cs, "a")
	_ = tl.Add(40*cs, 50*cs, "b")

	got := ranges.Collect(tl.Fill("-").Join().All())
	want := []Timed[string]{
		{0, 10 * cs, "-"},
		{10 * cs, 30 * cs, "a"},
		{30 * cs, 40 * cs, "-"},
		{40 * cs, 50 * cs, "b"},
		{50 * cs, 100 * cs, "-"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tl.Len() != 3 {
		t.Fatalf("Fill/Join modified the receiver: Len = %d", tl.Len())
	}
}
