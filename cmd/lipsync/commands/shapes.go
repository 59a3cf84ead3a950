package commands

import (
	"github.com/spf13/cobra"

	"github.com/biolimbo/lip-sync-engine/pkg/cli"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
)

var shapeDescriptions = map[lipsync.Shape]string{
	lipsync.ShapeA: "closed mouth (P, B, M)",
	lipsync.ShapeB: "slightly open, clenched teeth",
	lipsync.ShapeC: "open mouth (EH, AE)",
	lipsync.ShapeD: "wide open (AA)",
	lipsync.ShapeE: "slightly rounded (AO, ER)",
	lipsync.ShapeF: "puckered (UW, OW, W)",
	lipsync.ShapeG: "upper teeth on lower lip (F, V)",
	lipsync.ShapeH: "tongue raised (L)",
	lipsync.ShapeX: "idle, mouth at rest",
}

type shapeInfo struct {
	Shape       string `json:"shape" yaml:"shape"`
	Description string `json:"description" yaml:"description"`
	Extended    bool   `json:"extended" yaml:"extended"`
}

var shapesFormat string

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the target mouth shapes",
	Long:  "List the mouth shapes targeted with the current configuration and --shapes value.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := getConfig().ShapeSet()
		if err != nil {
			return err
		}
		var infos []shapeInfo
		for sh := range set.Shapes() {
			infos = append(infos, shapeInfo{
				Shape:       sh.String(),
				Description: shapeDescriptions[sh],
				Extended:    !sh.IsBasic(),
			})
		}
		format, err := cli.ParseOutputFormat(shapesFormat)
		if err != nil {
			return err
		}
		return cli.Output(cmd.OutOrStdout(), format, infos)
	},
}

func init() {
	shapesCmd.Flags().StringVarP(&shapesFormat, "format", "F", "yaml", "output format: yaml or json")
}
