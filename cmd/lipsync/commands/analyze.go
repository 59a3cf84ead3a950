package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/biolimbo/lip-sync-engine/pkg/audio/pcm"
	"github.com/biolimbo/lip-sync-engine/pkg/bridge"
	"github.com/biolimbo/lip-sync-engine/pkg/cli"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync/export"
	"github.com/biolimbo/lip-sync-engine/pkg/textutil"
)

var analyzeFlags struct {
	rate       int
	dialog     string
	dialogFile string
	format     string
	query      string
	shapes     string
	recognizer string
	summary    bool
	output     string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Animate raw PCM16 audio",
	Long: `Animate raw 16-bit little-endian mono PCM read from a file or stdin.

The result is the Rhubarb JSON document unless --format selects tsv or
msgpack. --query runs a jq expression over the JSON document and prints
each result on its own line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVarP(&analyzeFlags.rate, "rate", "r", 16000, "sample rate of the input in Hz")
	f.StringVarP(&analyzeFlags.dialog, "dialog", "d", "", "transcript of the audio (optional)")
	f.StringVar(&analyzeFlags.dialogFile, "dialog-file", "", "read the transcript from a file")
	f.StringVarP(&analyzeFlags.format, "format", "F", "", "output format: json, tsv or msgpack (default from config, else json)")
	f.StringVarP(&analyzeFlags.query, "query", "q", "", "jq expression applied to the JSON document")
	f.StringVar(&analyzeFlags.shapes, "shapes", "", "extended shapes to target, e.g. GHX (default from config)")
	f.StringVar(&analyzeFlags.recognizer, "recognizer", "", "phone recognizer: energy or spectral (default from config)")
	f.BoolVar(&analyzeFlags.summary, "summary", false, "print a summary to stderr")
	f.StringVarP(&analyzeFlags.output, "output", "o", "", "output file (default: stdout)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	if cmd.Flags().Changed("shapes") {
		if err := cfg.Set("shapes", analyzeFlags.shapes); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("recognizer") {
		if err := cfg.Set("recognizer", analyzeFlags.recognizer); err != nil {
			return err
		}
	}
	targets, err := cfg.ShapeSet()
	if err != nil {
		return err
	}

	format := analyzeFlags.format
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		format = "json"
	}
	exporter, err := export.ByName(format)
	if err != nil {
		return err
	}
	if analyzeFlags.query != "" && format != "json" {
		return fmt.Errorf("--query needs json output, got %s", format)
	}

	dialog, err := readDialog()
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	samples, err := readSamples(source)
	if err != nil {
		return err
	}
	if len(samples) > math.MaxInt32 {
		return fmt.Errorf("%s: too many samples (%d)", source, len(samples))
	}

	level, _ := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	b := bridge.New(bridge.Options{
		Recognizer: cfg.NewRecognizer(nil),
		Targets:    targets,
		LogOutput:  os.Stderr,
		LogLevel:   level,
	})
	if err := b.Init(cfg.Models()); err != nil {
		return err
	}

	start := time.Now()
	out, err := b.AnalyzePCM16(cmd.Context(), samples, int32(len(samples)), int32(analyzeFlags.rate), dialog)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var doc export.Document
	if err := json.Unmarshal(out, &doc); err != nil {
		return fmt.Errorf("decode analysis: %w", err)
	}

	w, err := cli.OpenOutput(analyzeFlags.output)
	if err != nil {
		return err
	}
	defer w.Close()

	switch {
	case analyzeFlags.query != "":
		err = runQuery(cmd.Context(), w, analyzeFlags.query, out)
	case format == "json":
		err = cli.Output(w, cli.FormatRaw, out)
	default:
		err = reexport(w, exporter, doc, targets)
	}
	if err != nil {
		return err
	}

	if analyzeFlags.summary {
		s := cli.Summary{
			Source:     source,
			SampleRate: analyzeFlags.rate,
			Bytes:      int64(len(out)),
			Elapsed:    elapsed,
			Document:   doc,
		}
		fmt.Fprintln(os.Stderr, s.Render(cli.NewStyles(cli.DefaultTheme), 60))
	}
	return w.Close()
}

func readDialog() (string, error) {
	dialog := analyzeFlags.dialog
	if analyzeFlags.dialogFile != "" {
		if dialog != "" {
			return "", fmt.Errorf("--dialog and --dialog-file are mutually exclusive")
		}
		data, err := os.ReadFile(analyzeFlags.dialogFile)
		if err != nil {
			return "", fmt.Errorf("failed to read dialog: %w", err)
		}
		dialog = string(data)
	}
	textutil.Trim(&dialog)
	return dialog, nil
}

func readSamples(source string) ([]int16, error) {
	var r io.Reader = os.Stdin
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	samples, err := pcm.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return samples, nil
}

func reexport(w io.Writer, exporter export.Exporter, doc export.Document, targets lipsync.ShapeSet) error {
	tl, err := doc.Timeline()
	if err != nil {
		return err
	}
	return exporter.Export(export.Input{Name: doc.Metadata.SoundFile, Animation: tl, Targets: targets}, w)
}

func runQuery(ctx context.Context, w io.Writer, expr string, doc []byte) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}
	var input any
	if err := json.Unmarshal(doc, &input); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	iter := query.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("query: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
}
