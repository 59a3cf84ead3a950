package ranges

import (
	"errors"
	"iter"
)

// ErrPastEnd is the panic value of Cursor.Value when the cursor is not
// positioned on an element.
var ErrPastEnd = errors.New("ranges: dereference past end")

// Cursor is a single-pass forward iterator over a sequence. Cursors compare
// by position only; the values they refer to are never compared.
//
// A Cursor holds iteration state for the underlying sequence until it is
// exhausted or Stop is called.
type Cursor[E any] struct {
	next func() (E, bool)
	stop func()
	cur  E
	pos  int
	done bool
}

// NewCursor returns a cursor positioned before the first element of s.
func NewCursor[E any](s iter.Seq[E]) *Cursor[E] {
	next, stop := iter.Pull(s)
	return &Cursor[E]{next: next, stop: stop, pos: -1}
}

// Next advances to the next element and reports whether there is one.
func (c *Cursor[E]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	c.pos++
	if !ok {
		var zero E
		c.cur = zero
		c.done = true
		c.stop()
		return false
	}
	c.cur = v
	return true
}

// Value returns the current element. It panics with ErrPastEnd before the
// first call to Next and after Next has returned false.
func (c *Cursor[E]) Value() E {
	if c.pos < 0 || c.done {
		panic(ErrPastEnd)
	}
	return c.cur
}

// Pos returns the zero-based position of the cursor. It is -1 before the
// first Next and equals the element count once the end is reached.
func (c *Cursor[E]) Pos() int {
	return c.pos
}

// Done reports whether the cursor has reached the end.
func (c *Cursor[E]) Done() bool {
	return c.done
}

// Equal reports whether c and o are at the same position.
func (c *Cursor[E]) Equal(o *Cursor[E]) bool {
	return c.pos == o.pos
}

// Stop releases the underlying iteration early. Value panics afterwards.
func (c *Cursor[E]) Stop() {
	if !c.done {
		c.done = true
		c.stop()
	}
}
