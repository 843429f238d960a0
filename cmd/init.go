package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/carbon-design-system/carb/internal/exec"
	"github.com/carbon-design-system/carb/pkg/schema"
)

func newInitCmd(cfg *schema.CliConfiguration) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize carb for the current workspace",
		Long: `Writes the default configuration to .carb/config.yml at the workspace root.
Outside a workspace the configuration is written to the current directory.`,
		Example: "carb init",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.ExecuteInit(cfg, force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	return initCmd
}
