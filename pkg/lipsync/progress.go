package lipsync

// ProgressSink receives progress reports in [0, 1].
type ProgressSink interface {
	Report(progress float64)
}

// NullProgress discards progress reports.
type NullProgress struct{}

func (NullProgress) Report(float64) {}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(float64)

func (f ProgressFunc) Report(p float64) { f(p) }
