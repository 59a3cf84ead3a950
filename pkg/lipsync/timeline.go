package lipsync

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

// ErrOverlap is returned when a timed value would overlap or precede the
// last value of a Timeline, or fall outside its range.
var ErrOverlap = errors.New("lipsync: timed value out of order")

// Timed is a value over the half-open interval [Start, End).
type Timed[T any] struct {
	Start time.Duration
	End   time.Duration
	Value T
}

// Len returns End - Start.
func (t Timed[T]) Len() time.Duration { return t.End - t.Start }

func (t Timed[T]) String() string {
	return fmt.Sprintf("[%v, %v) %v", t.Start, t.End, t.Value)
}

// Timeline is a sorted, non-overlapping sequence of timed values bounded by
// [0, Duration). Gaps are allowed.
type Timeline[T comparable] struct {
	items    []Timed[T]
	duration time.Duration
}

// NewTimeline returns an empty timeline covering [0, d).
func NewTimeline[T comparable](d time.Duration) *Timeline[T] {
	return &Timeline[T]{duration: d}
}

// Add appends v over [start, end). Empty intervals are ignored.
func (tl *Timeline[T]) Add(start, end time.Duration, v T) error {
	if end <= start {
		return nil
	}
	if start < 0 || end > tl.duration {
		return fmt.Errorf("%w: [%v, %v) outside [0, %v)", ErrOverlap, start, end, tl.duration)
	}
	if n := len(tl.items); n > 0 && start < tl.items[n-1].End {
		return fmt.Errorf("%w: %v starts before %v", ErrOverlap, start, tl.items[n-1].End)
	}
	tl.items = append(tl.items, Timed[T]{Start: start, End: end, Value: v})
	return nil
}

// Duration returns the end of the timeline's range.
func (tl *Timeline[T]) Duration() time.Duration { return tl.duration }

// Len returns the number of timed values.
func (tl *Timeline[T]) Len() int { return len(tl.items) }

// At returns the i-th timed value.
func (tl *Timeline[T]) At(i int) Timed[T] { return tl.items[i] }

// All yields the timed values in order.
func (tl *Timeline[T]) All() iter.Seq[Timed[T]] {
	return slices.Values(tl.items)
}

// Join returns a copy in which touching neighbours with equal values are
// merged into one.
func (tl *Timeline[T]) Join() *Timeline[T] {
	out := &Timeline[T]{duration: tl.duration, items: make([]Timed[T], 0, len(tl.items))}
	for _, it := range tl.items {
		if n := len(out.items); n > 0 {
			last := &out.items[n-1]
			if last.End == it.Start && last.Value == it.Value {
				last.End = it.End
				continue
			}
		}
		out.items = append(out.items, it)
	}
	return out
}

// Fill returns a copy with every gap in [0, Duration) covered by v.
func (tl *Timeline[T]) Fill(v T) *Timeline[T] {
	out := &Timeline[T]{duration: tl.duration}
	var at time.Duration
	for _, it := range tl.items {
		if it.Start > at {
			out.items = append(out.items, Timed[T]{Start: at, End: it.Start, Value: v})
		}
		out.items = append(out.items, it)
		at = it.End
	}
	if at < tl.duration {
		out.items = append(out.items, Timed[T]{Start: at, End: tl.duration, Value: v})
	}
	return out
}
