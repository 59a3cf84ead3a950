// Package main provides the lipsync CLI, a host-side harness for the
// lip-sync engine.
//
// Usage:
//
//	lipsync [flags] <command> [args]
//
// Commands:
//
//	analyze  - Animate raw PCM16 audio
//	schema   - Print the JSON Schema of the output document
//	shapes   - List the target mouth shapes
//	config   - Show or change configuration
//
// Configuration:
//
//	The CLI reads ~/.lipsync/config.yaml. LIPSYNC_* environment variables
//	override individual settings.
package main

import (
	"os"

	"github.com/biolimbo/lip-sync-engine/cmd/lipsync/commands"
	"github.com/biolimbo/lip-sync-engine/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
