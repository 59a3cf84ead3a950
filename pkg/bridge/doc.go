// Package bridge exposes the lip-sync engine through a narrow C-style
// surface suitable for a WebAssembly export table.
//
// Bridge is the Go API: it validates input, builds a clip, animates it and
// exports JSON, returning ordinary errors. Boundary wraps a Bridge with the
// foreign-function contract: status codes instead of errors, a last-error
// slot that every call overwrites, panics recovered at the edge, and result
// buffers kept alive in a Buffers table until the host frees them.
//
// Neither type is safe for concurrent use. The target runtime is single
// threaded.
package bridge
