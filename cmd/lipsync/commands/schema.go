package commands

import (
	"github.com/spf13/cobra"

	"github.com/biolimbo/lip-sync-engine/pkg/cli"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync/export"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the analysis document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := export.Schema()
		if err != nil {
			return err
		}
		return cli.Output(cmd.OutOrStdout(), cli.FormatJSON, s)
	},
}
