//go:build wasip1

// Command lipsync-wasm builds the lip-sync engine as a WebAssembly module
// for WASI hosts. It exports a C-style API:
//
//	lipsync_malloc(size) ptr
//	lipsync_init(models_path ptr) int32
//	lipsync_analyze_pcm16(pcm16 ptr, sample_count, sample_rate int32, dialog ptr) ptr
//	lipsync_free(ptr)
//	lipsync_get_last_error() ptr
//
// Strings cross the boundary as NUL-terminated UTF-8. Buffers returned by
// lipsync_malloc and lipsync_analyze_pcm16 stay valid until passed to
// lipsync_free. The last-error string is owned by the module and valid until
// the next call.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o lip-sync.wasm ./cmd/lipsync-wasm
package main

import (
	"unsafe"

	"github.com/biolimbo/lip-sync-engine/pkg/bridge"
)

var (
	boundary = bridge.NewBoundary(bridge.New(bridge.Options{}))

	// lastError holds the NUL-terminated copy handed out by
	// lipsync_get_last_error.
	lastError []byte
)

func main() {}

//go:wasmexport lipsync_malloc
func lipsyncMalloc(size int32) unsafe.Pointer {
	buf := boundary.Buffers().Alloc(int(size))
	if buf == nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(buf))
}

//go:wasmexport lipsync_init
func lipsyncInit(modelsPath unsafe.Pointer) int32 {
	return boundary.Init(goString(modelsPath))
}

//go:wasmexport lipsync_analyze_pcm16
func lipsyncAnalyzePCM16(pcm16 unsafe.Pointer, sampleCount, sampleRate int32, dialog unsafe.Pointer) unsafe.Pointer {
	var samples []int16
	if pcm16 != nil {
		// A non-positive count is rejected by the boundary; only the
		// pointer's presence matters then.
		samples = unsafe.Slice((*int16)(pcm16), max(sampleCount, 0))
	}
	out := boundary.AnalyzePCM16(samples, sampleCount, sampleRate, goString(dialog))
	if out == nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(out))
}

//go:wasmexport lipsync_free
func lipsyncFree(p unsafe.Pointer) {
	boundary.Free(p)
}

//go:wasmexport lipsync_get_last_error
func lipsyncGetLastError() unsafe.Pointer {
	msg := boundary.LastError()
	if msg == "" {
		return nil
	}
	lastError = append(append(lastError[:0], msg...), 0)
	return unsafe.Pointer(unsafe.SliceData(lastError))
}

// goString copies the NUL-terminated string at p. Nil yields "".
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
