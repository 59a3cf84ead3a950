// Package lexcast converts between textual and typed representations of
// scalar values.
//
// Parsing is strict: Parse succeeds only when the whole input is a valid
// literal of the target type. Leftover characters, surrounding whitespace
// and empty input are all errors, and a failed parse never yields a
// partially converted value:
//
//	n, err := lexcast.Parse[int]("42")  // 42, nil
//	_, err = lexcast.Parse[int]("42x")  // *lexcast.Error
//	_, err = lexcast.Parse[int]("")     // *lexcast.Error
//	s, _ := lexcast.Parse[string]("42") // "42", never fails
//
// Floating point targets accept everything strconv.ParseFloat accepts as a
// whole literal, including hexadecimal mantissas ("0x1p4"), "inf",
// "infinity" and "nan" in any case, and underscores only in base-prefixed
// forms:
//
//	f, _ := lexcast.Parse[float64]("0x1p4") // 16
//	f, _ = lexcast.Parse[float64]("-Inf")   // math.Inf(-1)
//
// Format renders any value in its canonical textual form and cannot fail.
// Floating point values use the shortest representation that parses back
// to the same value, so Parse[float64](Format(x)) == x for every finite x.
//
// All conversions go through strconv and are independent of the process
// locale.
package lexcast
