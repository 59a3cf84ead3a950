package bridge

import (
	"errors"
	"fmt"
)

// Validation errors. Their messages are part of the host contract and are
// reported without a prefix.
var (
	ErrInvalidModelsPath = errors.New("models_path cannot be NULL or empty")
	ErrNotInitialized    = errors.New("Module not initialized. Call lipsync_init() first")
	ErrNilPCM            = errors.New("pcm16 cannot be NULL")
	ErrSampleCount       = errors.New("sample_count must be positive")
	ErrSampleRate        = errors.New("sample_rate must be positive")
	ErrShortPCM          = errors.New("pcm16 holds fewer samples than sample_count")
)

var validationErrors = []error{
	ErrInvalidModelsPath,
	ErrNotInitialized,
	ErrNilPCM,
	ErrSampleCount,
	ErrSampleRate,
	ErrShortPCM,
}

// IsValidation reports whether err is one of the validation errors.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ErrorState holds the message of the most recent failure. The zero value
// holds no error.
type ErrorState struct {
	msg string
}

// Set records msg as the last error.
func (s *ErrorState) Set(msg string) { s.msg = msg }

// Clear forgets the last error.
func (s *ErrorState) Clear() { s.msg = "" }

// Last returns the last error message, or "" when there is none.
func (s *ErrorState) Last() string { return s.msg }

// Has reports whether an error is recorded.
func (s *ErrorState) Has() bool { return s.msg != "" }

// describe renders err for the host. Validation errors keep their message;
// anything else is prefixed with the failing phase.
func describe(prefix string, err error) string {
	if IsValidation(err) {
		return err.Error()
	}
	return prefix + err.Error()
}

// recovered renders a recovered panic value. Errors and strings carry a
// message; anything else is reported as unknown.
func recovered(prefix, unknown string, r any) string {
	switch v := r.(type) {
	case error:
		return describe(prefix, v)
	case string:
		return prefix + v
	case fmt.Stringer:
		return prefix + v.String()
	}
	return unknown
}
