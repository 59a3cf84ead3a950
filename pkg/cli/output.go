package cli

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how Output encodes a value.
type OutputFormat string

const (
	// FormatYAML is the default for terminal output.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON is indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatRaw writes bytes, strings and text marshalers unchanged and
	// falls back to YAML for anything else.
	FormatRaw OutputFormat = "raw"
)

// ParseOutputFormat validates s. The empty string selects YAML.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case "":
		return FormatYAML, nil
	case FormatYAML, FormatJSON, FormatRaw:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Output encodes v to w.
func Output(w io.Writer, f OutputFormat, v any) error {
	switch f {
	case FormatYAML, "":
		return writeYAML(w, v)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatRaw:
		return writeRaw(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// OpenOutput opens path for writing. An empty path or "-" is stdout, which
// Close leaves open.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func writeRaw(w io.Writer, v any) error {
	switch v := v.(type) {
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		_, err := io.WriteString(w, v)
		return err
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return err
		}
		_, err = w.Write(text)
		return err
	default:
		return writeYAML(w, v)
	}
}

// PrintSuccess prints a success message with checkmark to stderr
func PrintSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✓ "+format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
