package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbon-design-system/carb/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Display the version of carb you are running",
		Example: "carb version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "carb %s\n", version.Version)
			return err
		},
	}
}
