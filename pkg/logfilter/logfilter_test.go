package logfilter

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Suppress(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(&buf, Options{})
	log := slog.New(h)

	log.Info("Failed to unmap 4096 bytes at 0x1000")
	log.Info("recognition done", "frames", 100)
	log.Debug("frame energy", "rms", 0.1)

	out := buf.String()
	if strings.Contains(out, "unmap") {
		t.Errorf("suppressed message leaked: %q", out)
	}
	if strings.Contains(out, "frame energy") {
		t.Errorf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "recognition done") {
		t.Errorf("info record missing: %q", out)
	}
	if got := h.Suppressed(); got != 1 {
		t.Errorf("Suppressed = %d, want 1", got)
	}
}

func TestHandler_Options(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		level slog.Level
		msg   string
		want  bool
	}{
		{"default drops unmap", Options{}, slog.LevelError, "Failed to unmap", false},
		{"empty suppress keeps unmap", Options{Suppress: []string{}}, slog.LevelInfo, "Failed to unmap", true},
		{"custom suppress", Options{Suppress: []string{"noisy"}}, slog.LevelWarn, "a noisy line", false},
		{"debug level", Options{Level: slog.LevelDebug}, slog.LevelDebug, "detail", true},
		{"warn level drops info", Options{Level: slog.LevelWarn}, slog.LevelInfo, "detail", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewConsole(&buf, tt.opts))
			log.Log(t.Context(), tt.level, tt.msg)
			if got := buf.Len() > 0; got != tt.want {
				t.Fatalf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestHandler_WithAttrsSharesCount(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(&buf, Options{})
	slog.New(h).With("component", "bridge").WithGroup("g").Info("Failed to unmap x")
	if got := h.Suppressed(); got != 1 {
		t.Fatalf("Suppressed = %d, want 1", got)
	}
	slog.New(h).With("component", "bridge").Info("kept")
	if !strings.Contains(buf.String(), "component=bridge") {
		t.Fatalf("attrs missing: %q", buf.String())
	}
}
