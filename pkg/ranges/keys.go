package ranges

import "iter"

// MapAdaptor transforms an associative sequence of (K, V) entries into a
// plain sequence of R.
type MapAdaptor[K, V, R any] func(iter.Seq2[K, V]) iter.Seq[R]

// PipeMap applies a to the associative sequence m.
func PipeMap[K, V, R any](m iter.Seq2[K, V], a MapAdaptor[K, V, R]) iter.Seq[R] {
	return a(m)
}

// ThenMap returns the pipeline "a then b", where a projects an associative
// sequence and b adapts the projection.
func ThenMap[K, V, A, B any](a MapAdaptor[K, V, A], b Adaptor[A, B]) MapAdaptor[K, V, B] {
	return func(m iter.Seq2[K, V]) iter.Seq[B] {
		return b(a(m))
	}
}

// Keys returns the key-view adaptor. Each key is yielded exactly once, in
// the container's native iteration order.
func Keys[K, V any]() MapAdaptor[K, V, K] {
	return KeysOf[K, V]
}

// Values returns the value-view adaptor.
func Values[K, V any]() MapAdaptor[K, V, V] {
	return ValuesOf[K, V]
}

// KeysOf is the key view of m.
func KeysOf[K, V any](m iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}

// ValuesOf is the value view of m.
func ValuesOf[K, V any](m iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}
