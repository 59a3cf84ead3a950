package ranges

import (
	"iter"
	"slices"
)

// Adaptor transforms a sequence of E into a lazy sequence of R.
type Adaptor[E, R any] func(iter.Seq[E]) iter.Seq[R]

// Pipe applies a to s.
func Pipe[E, R any](s iter.Seq[E], a Adaptor[E, R]) iter.Seq[R] {
	return a(s)
}

// Pipe2 applies a, then b.
func Pipe2[A, B, C any](s iter.Seq[A], a Adaptor[A, B], b Adaptor[B, C]) iter.Seq[C] {
	return b(a(s))
}

// Pipe3 applies a, then b, then c.
func Pipe3[A, B, C, D any](s iter.Seq[A], a Adaptor[A, B], b Adaptor[B, C], c Adaptor[C, D]) iter.Seq[D] {
	return c(b(a(s)))
}

// Then returns the pipeline "a then b" as a single adaptor.
func Then[A, B, C any](a Adaptor[A, B], b Adaptor[B, C]) Adaptor[A, C] {
	return func(s iter.Seq[A]) iter.Seq[C] {
		return b(a(s))
	}
}

// Transformed returns an adaptor yielding f(e) for each e of the source.
//
// f is called once per produced element per traversal and its results are
// never cached.
func Transformed[E, R any](f func(E) R) Adaptor[E, R] {
	return func(s iter.Seq[E]) iter.Seq[R] {
		return func(yield func(R) bool) {
			for e := range s {
				if !yield(f(e)) {
					return
				}
			}
		}
	}
}

// Filtered returns an adaptor that yields only the elements for which keep
// returns true.
func Filtered[E any](keep func(E) bool) Adaptor[E, E] {
	return func(s iter.Seq[E]) iter.Seq[E] {
		return func(yield func(E) bool) {
			for e := range s {
				if keep(e) && !yield(e) {
					return
				}
			}
		}
	}
}

// Indexed returns an adaptor that pairs each element with f(i, e), where i
// is the element's position in the source.
func Indexed[E, R any](f func(int, E) R) Adaptor[E, R] {
	return func(s iter.Seq[E]) iter.Seq[R] {
		return func(yield func(R) bool) {
			i := 0
			for e := range s {
				if !yield(f(i, e)) {
					return
				}
				i++
			}
		}
	}
}

// Collect materializes s into a newly allocated slice.
func Collect[E any](s iter.Seq[E]) []E {
	return slices.Collect(s)
}

// Count consumes s and returns the number of elements it produced.
func Count[E any](s iter.Seq[E]) int {
	n := 0
	for range s {
		n++
	}
	return n
}
