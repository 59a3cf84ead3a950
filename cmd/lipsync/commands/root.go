package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/biolimbo/lip-sync-engine/pkg/cli"
	"github.com/biolimbo/lip-sync-engine/pkg/logfilter"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lipsync",
	Short: "Lip-sync animation from raw PCM audio",
	Long: `lipsync - mouth animation for speech audio.

Reads raw 16-bit little-endian mono PCM and prints mouth cues in the
Rhubarb Lip Sync JSON layout (or TSV / MessagePack).

Configuration is read from ~/.lipsync/config.yaml. Environment variables
LIPSYNC_MODELS_PATH, LIPSYNC_RECOGNIZER, LIPSYNC_THRESHOLD, LIPSYNC_FRAME_MS,
LIPSYNC_SHAPES, LIPSYNC_FORMAT and LIPSYNC_LOG_LEVEL override it.

Examples:
  # Analyze a 16 kHz recording
  lipsync analyze speech.pcm

  # Convert with ffmpeg and pipe in, targeting extended shapes
  ffmpeg -i speech.wav -f s16le -ac 1 -ar 16000 - | lipsync analyze - --shapes GHX

  # Pick fields with a jq query
  lipsync analyze speech.pcm -q '.mouthCues[] | select(.value == "D")'
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.lipsync/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and installs the process logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	globalConfig = cfg

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logfilter.NewConsole(os.Stderr, logfilter.Options{Level: level})))
	return nil
}

// getConfig returns the global configuration
func getConfig() *cli.Config {
	return globalConfig
}
