package bridge

import (
	"testing"
	"unsafe"
)

func TestBuffers(t *testing.T) {
	bufs := NewBuffers(nil)
	if bufs.Alloc(0) != nil {
		t.Fatal("Alloc(0) should return nil")
	}

	s := bufs.CString([]byte("hello"))
	if string(s) != "hello" {
		t.Fatalf("CString = %q", s)
	}
	p := unsafe.Pointer(unsafe.SliceData(s))
	full, ok := bufs.Lookup(p)
	if !ok || len(full) != 6 || full[5] != 0 {
		t.Fatalf("Lookup = %q, %v", full, ok)
	}

	if !bufs.Release(p) {
		t.Fatal("first Release should succeed")
	}
	if bufs.Release(p) {
		t.Fatal("double Release should be ignored")
	}
	if bufs.Len() != 0 {
		t.Fatalf("Len = %d, want 0", bufs.Len())
	}
}

func TestErrorState(t *testing.T) {
	var s ErrorState
	if s.Has() || s.Last() != "" {
		t.Fatal("zero ErrorState holds an error")
	}
	s.Set("x")
	s.Set("y")
	if s.Last() != "y" {
		t.Fatalf("Last = %q, want y", s.Last())
	}
	s.Clear()
	if s.Has() {
		t.Fatal("Clear did not clear")
	}
}
