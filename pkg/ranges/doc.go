// Package ranges provides lazy, composable sequence adaptors built on the
// standard iter.Seq and iter.Seq2 iteration capabilities.
//
// An Adaptor turns one sequence into another without copying or
// materializing elements. Adaptors compose left to right:
//
//	names := ranges.Pipe2(slices.Values(users),
//	    ranges.Filtered(func(u User) bool { return u.Active }),
//	    ranges.Transformed(func(u User) string { return u.Name }),
//	)
//
// Go has no operator overloading, so Pipe, Pipe2 and Pipe3 play the role of
// a pipeline operator and Then builds a reusable pipeline out of two
// adaptors. Pipe(Pipe(s, a), b) and Pipe(s, Then(a, b)) yield the same
// values.
//
// Associative containers expose the iter.Seq2 capability. Keys and Values
// project them to plain sequences; applying either to an iter.Seq is a
// compile-time error rather than a runtime failure:
//
//	m := ranges.NewOrderedMap[string, int]()
//	m.Set("b", 2)
//	m.Set("a", 1)
//	for k := range ranges.PipeMap(m.All(), ranges.Keys[string, int]()) {
//	    fmt.Println(k) // b, a
//	}
//
// Views hold no elements. Every traversal re-runs the transformation;
// callers that need a stable snapshot must Collect it. Mutating the
// underlying container while a view is being iterated is undefined.
package ranges
