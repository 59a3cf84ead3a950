package lexcast

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrConversion matches every error returned by this package.
var ErrConversion = errors.New("lexcast: bad conversion")

// Error describes a failed conversion.
type Error struct {
	// Input is the text that could not be converted.
	Input string
	// Target is the name of the requested type.
	Target string
	// Err is the underlying cause, usually strconv.ErrSyntax or
	// strconv.ErrRange.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexcast: cannot convert %q to %s: %v", e.Input, e.Target, e.Err)
}

// Unwrap allows errors.Is to match both ErrConversion and the cause.
func (e *Error) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

// Scalar is the set of types Parse and Cast can produce.
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Parse converts s to T. It fails unless all of s is a valid literal of T.
// Parsing into string returns s unchanged.
func Parse[T Scalar](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = s
		return v, nil
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		var zero T
		return zero, newError(s, zero, err)
	}
	return v, nil
}

// ParseBytes is Parse for byte slices. Parsing into string copies b and
// cannot fail.
func ParseBytes[T Scalar](b []byte) (T, error) {
	var v T
	if p, ok := any(&v).(*string); ok {
		*p = string(b)
		return v, nil
	}
	return Parse[T](string(b))
}

// ParseText converts s using T's encoding.TextUnmarshaler implementation.
func ParseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, newError(s, zero, err)
	}
	return v, nil
}

// Format returns the canonical textual form of v. It never fails.
func Format[S any](v S) string {
	switch x := any(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if isNilPointer(v) {
		// fmt recovers from methods called on nil receivers.
		return fmt.Sprint(v)
	}
	switch x := any(v).(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case encoding.TextMarshaler:
		if b, err := x.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

// Cast converts v to T by rendering it with Format and parsing the result
// strictly. Strings, byte slices and values that already have type T skip
// the rendering step.
func Cast[T Scalar, S any](v S) (T, error) {
	switch x := any(v).(type) {
	case T:
		return x, nil
	case string:
		return Parse[T](x)
	case []byte:
		return ParseBytes[T](x)
	}
	return Parse[T](Format(v))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func newError(input string, target any, err error) *Error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &Error{Input: input, Target: fmt.Sprintf("%T", target), Err: err}
}
