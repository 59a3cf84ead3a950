package iostate

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Flags select how numbers and booleans are rendered by Writer.
type Flags uint16

const (
	// Fixed renders floats with exactly Precision fractional digits.
	Fixed Flags = 1 << iota
	// Scientific renders floats in exponent notation.
	Scientific
	// ShowPos prefixes non-negative numbers with '+'.
	ShowPos
	// Uppercase uses upper-case exponent and hex digits.
	Uppercase
	// Hex renders integers in base 16.
	Hex
	// BoolAlpha renders booleans as true/false instead of 1/0.
	BoolAlpha
)

// DefaultPrecision is the float precision of a new Writer.
const DefaultPrecision = 6

// State is the complete formatting state of a Writer.
type State struct {
	Flags     Flags
	Precision int
	Width     int
	Fill      rune
}

// DefaultState returns the state of a newly created Writer.
func DefaultState() State {
	return State{Precision: DefaultPrecision, Fill: ' '}
}

// Writer is an io.Writer with stream-style formatting state. Formatting
// errors are sticky: after the first failed write every later call is a
// no-op and Err reports the failure.
type Writer struct {
	w   io.Writer
	st  State
	err error
}

var _ Stateful[State] = (*Writer)(nil)

// NewWriter wraps w with the default formatting state.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, st: DefaultState()}
}

// State implements Stateful.
func (w *Writer) State() State { return w.st }

// SetState implements Stateful.
func (w *Writer) SetState(s State) { w.st = s }

// Save captures the current state of w.
func (w *Writer) Save() *Saver[State] { return Save[State](w) }

// Guard runs fn with the state of w restored afterwards.
func (w *Writer) Guard(fn func() error) error { return Guard[State](w, fn) }

// Flags returns the current flags.
func (w *Writer) Flags() Flags { return w.st.Flags }

// SetFlags replaces all flags and returns the previous ones.
func (w *Writer) SetFlags(f Flags) Flags {
	old := w.st.Flags
	w.st.Flags = f
	return old
}

// Setf turns on f.
func (w *Writer) Setf(f Flags) { w.st.Flags |= f }

// Unsetf turns off f.
func (w *Writer) Unsetf(f Flags) { w.st.Flags &^= f }

// SetPrecision sets the float precision and returns the previous value.
func (w *Writer) SetPrecision(p int) int {
	old := w.st.Precision
	w.st.Precision = p
	return old
}

// SetWidth sets the minimum width of the next formatted value. The width
// resets to zero after each formatted write.
func (w *Writer) SetWidth(n int) { w.st.Width = n }

// SetFill sets the padding character used to reach Width.
func (w *Writer) SetFill(r rune) { w.st.Fill = r }

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

// Write writes p unformatted.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}

// Str writes s, padded to the pending width.
func (w *Writer) Str(s string) *Writer {
	w.emit(s)
	return w
}

// Printf writes formatted text without applying the writer's state.
func (w *Writer) Printf(format string, args ...any) *Writer {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
	return w
}

// Int writes v according to the Hex, ShowPos and Uppercase flags.
func (w *Writer) Int(v int64) *Writer {
	var s string
	if w.st.Flags&Hex != 0 {
		s = strconv.FormatInt(v, 16)
		if w.st.Flags&Uppercase != 0 {
			s = strings.ToUpper(s)
		}
	} else {
		s = strconv.FormatInt(v, 10)
	}
	if v >= 0 && w.st.Flags&ShowPos != 0 {
		s = "+" + s
	}
	w.emit(s)
	return w
}

// Float writes v according to the Fixed, Scientific, ShowPos and Uppercase
// flags and the current precision.
func (w *Writer) Float(v float64) *Writer {
	var verb byte
	switch {
	case w.st.Flags&Fixed != 0:
		verb = 'f'
	case w.st.Flags&Scientific != 0:
		verb = 'e'
	default:
		verb = 'g'
	}
	if w.st.Flags&Uppercase != 0 && verb != 'f' {
		verb -= 'a' - 'A'
	}
	s := strconv.FormatFloat(v, verb, w.st.Precision, 64)
	if v >= 0 && w.st.Flags&ShowPos != 0 {
		s = "+" + s
	}
	w.emit(s)
	return w
}

// Bool writes b as true/false with BoolAlpha set, 1/0 otherwise.
func (w *Writer) Bool(b bool) *Writer {
	switch {
	case w.st.Flags&BoolAlpha != 0:
		w.emit(strconv.FormatBool(b))
	case b:
		w.emit("1")
	default:
		w.emit("0")
	}
	return w
}

func (w *Writer) emit(s string) {
	if pad := w.st.Width - utf8.RuneCountInString(s); pad > 0 {
		s = strings.Repeat(string(w.st.Fill), pad) + s
	}
	w.st.Width = 0
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}
