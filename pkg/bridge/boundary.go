package bridge

import (
	"context"
	"unsafe"
)

const (
	initPrefix     = "Initialization error: "
	analyzePrefix  = "Analysis error: "
	unknownInit    = "Unknown initialization error"
	unknownAnalyze = "Unknown analysis error"
)

// Boundary adapts a Bridge to the host calling convention. Every call
// clears the last error first and records a new one on failure.
type Boundary struct {
	bridge *Bridge
	errs   ErrorState
	bufs   *Buffers
}

// NewBoundary wraps b.
func NewBoundary(b *Bridge) *Boundary {
	return &Boundary{bridge: b, bufs: NewBuffers(nil)}
}

// Bridge returns the wrapped Bridge.
func (bd *Boundary) Bridge() *Bridge { return bd.bridge }

// Buffers returns the table holding buffers returned to the host.
func (bd *Boundary) Buffers() *Buffers { return bd.bufs }

// Init initializes the bridge and returns 0 on success or -1 on failure.
func (bd *Boundary) Init(modelsPath string) (status int32) {
	bd.errs.Clear()
	defer func() {
		if r := recover(); r != nil {
			bd.errs.Set(recovered(initPrefix, unknownInit, r))
			status = -1
		}
	}()
	if err := bd.bridge.Init(modelsPath); err != nil {
		bd.errs.Set(describe(initPrefix, err))
		return -1
	}
	return 0
}

// AnalyzePCM16 returns the exported animation, or nil on failure. The
// returned slice is followed in memory by a NUL byte and stays valid until
// passed to Free.
func (bd *Boundary) AnalyzePCM16(pcm16 []int16, sampleCount, sampleRate int32, dialog string) (out []byte) {
	bd.errs.Clear()
	defer func() {
		if r := recover(); r != nil {
			bd.errs.Set(recovered(analyzePrefix, unknownAnalyze, r))
			out = nil
		}
	}()
	res, err := bd.bridge.AnalyzePCM16(context.Background(), pcm16, sampleCount, sampleRate, dialog)
	if err != nil {
		bd.errs.Set(describe(analyzePrefix, err))
		return nil
	}
	return bd.bufs.CString(res)
}

// Free releases a buffer returned by AnalyzePCM16. Nil is ignored.
func (bd *Boundary) Free(p unsafe.Pointer) {
	bd.bufs.Release(p)
}

// LastError returns the message of the last failed call, or "".
func (bd *Boundary) LastError() string { return bd.errs.Last() }
