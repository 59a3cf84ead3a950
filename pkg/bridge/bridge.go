package bridge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync/export"
	"github.com/biolimbo/lip-sync-engine/pkg/logfilter"
	"github.com/biolimbo/lip-sync-engine/pkg/platform"
)

// Options configures a Bridge. The zero value selects the energy
// recognizer, the basic shape set and JSON output.
type Options struct {
	Recognizer lipsync.Recognizer
	Targets    lipsync.ShapeSet
	Exporter   export.Exporter

	// LogOutput receives filtered log output once Init succeeds. Nil means
	// os.Stderr.
	LogOutput io.Writer

	// LogLevel is the minimum level logged. Zero means Info.
	LogLevel slog.Level
}

// Bridge runs analyses after a successful Init.
type Bridge struct {
	opts        Options
	modelsPath  string
	initialized bool
	logger      *slog.Logger
	filter      *logfilter.Handler
}

// New returns an uninitialized Bridge.
func New(opts Options) *Bridge {
	if opts.Recognizer == nil {
		opts.Recognizer = &lipsync.EnergyRecognizer{}
	}
	if opts.Targets.Len() == 0 {
		opts.Targets = lipsync.BasicShapes()
	}
	if opts.Exporter == nil {
		opts.Exporter = export.JSON{}
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	return &Bridge{opts: opts, logger: slog.Default()}
}

// Init records the models path and installs the filtered log sink. Calling
// Init again replaces the path.
func (b *Bridge) Init(modelsPath string) error {
	if modelsPath == "" {
		return ErrInvalidModelsPath
	}
	b.modelsPath = modelsPath
	b.filter = logfilter.NewConsole(b.opts.LogOutput, logfilter.Options{Level: b.opts.LogLevel})
	b.logger = slog.New(b.filter).With("component", "lipsync")
	switch r := b.opts.Recognizer.(type) {
	case *lipsync.EnergyRecognizer:
		if r.Logger == nil {
			r.Logger = b.logger
		}
	case *lipsync.SpectralRecognizer:
		if r.Logger == nil {
			r.Logger = b.logger
		}
	}
	b.initialized = true
	b.logger.Debug("bridge initialized", "models_path", modelsPath)
	return nil
}

// Initialized reports whether Init has succeeded.
func (b *Bridge) Initialized() bool { return b.initialized }

// ModelsPath returns the path given to Init.
func (b *Bridge) ModelsPath() string { return b.modelsPath }

// Suppressed returns how many log records the sink has dropped.
func (b *Bridge) Suppressed() int64 {
	if b.filter == nil {
		return 0
	}
	return b.filter.Suppressed()
}

// AnalyzePCM16 animates the first sampleCount samples of pcm16 and returns
// the exported document. dialog is an optional transcript; empty means none.
func (b *Bridge) AnalyzePCM16(ctx context.Context, pcm16 []int16, sampleCount, sampleRate int32, dialog string) ([]byte, error) {
	switch {
	case !b.initialized:
		return nil, ErrNotInitialized
	case pcm16 == nil:
		return nil, ErrNilPCM
	case sampleCount <= 0:
		return nil, ErrSampleCount
	case sampleRate <= 0:
		return nil, ErrSampleRate
	case int(sampleCount) > len(pcm16):
		return nil, fmt.Errorf("%w: have %d, want %d", ErrShortPCM, len(pcm16), sampleCount)
	}

	id := platform.GenerateUUID()
	start := time.Now()

	clip, err := pcm.NewClip(pcm16[:sampleCount], int(sampleRate))
	if err != nil {
		return nil, err
	}
	anim, err := lipsync.AnimateClip(ctx, clip, dialog, b.opts.Recognizer, b.opts.Targets, lipsync.NullProgress{})
	if err != nil {
		return nil, fmt.Errorf("animate: %w", err)
	}

	var buf bytes.Buffer
	in := export.Input{Name: export.MemoryName, Animation: anim, Targets: b.opts.Targets}
	if err := b.opts.Exporter.Export(in, &buf); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	b.logger.Info("analysis done",
		"id", id,
		"samples", sampleCount,
		"sample_rate", sampleRate,
		"dialog", dialog != "",
		"cues", anim.Len(),
		"elapsed", time.Since(start),
	)
	return buf.Bytes(), nil
}
