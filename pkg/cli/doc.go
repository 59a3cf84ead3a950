// Package cli provides the shared pieces of the lipsync command-line tool.
//
// This package includes:
//   - Configuration loaded from ~/.lipsync/config.yaml with LIPSYNC_*
//     environment overrides
//   - Output formatting (JSON, YAML, raw)
//   - A lipgloss-styled summary of an analysis
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
//	    return err
//	}
//	targets, err := cfg.ShapeSet()
package cli
