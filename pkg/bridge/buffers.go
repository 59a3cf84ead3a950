package bridge

import (
	"log/slog"
	"unsafe"
)

// Buffers keeps byte buffers handed to the host reachable until the host
// releases them. Buffers are identified by the address of their first byte.
type Buffers struct {
	live   map[unsafe.Pointer][]byte
	logger *slog.Logger
}

// NewBuffers returns an empty table. A nil logger means slog.Default().
func NewBuffers(logger *slog.Logger) *Buffers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Buffers{live: make(map[unsafe.Pointer][]byte), logger: logger}
}

// Alloc returns a zeroed buffer of n bytes owned by the table. It returns
// nil when n is not positive.
func (t *Buffers) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	t.live[unsafe.Pointer(&buf[0])] = buf
	return buf
}

// CString copies b into a table-owned buffer followed by a NUL byte and
// returns the copy without the terminator.
func (t *Buffers) CString(b []byte) []byte {
	buf := t.Alloc(len(b) + 1)
	copy(buf, b)
	return buf[:len(b)]
}

// Release drops the buffer starting at p and reports whether it was live.
// Releasing nil is a no-op. Releasing an unknown or already released
// pointer is logged and ignored.
func (t *Buffers) Release(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	if _, ok := t.live[p]; !ok {
		t.logger.Warn("bridge: release of unknown buffer", "ptr", uintptr(p))
		return false
	}
	delete(t.live, p)
	return true
}

// Lookup returns the live buffer starting at p.
func (t *Buffers) Lookup(p unsafe.Pointer) ([]byte, bool) {
	buf, ok := t.live[p]
	return buf, ok
}

// Len returns the number of live buffers.
func (t *Buffers) Len() int { return len(t.live) }
