package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/carbon-design-system/carb/internal/exec"
	"github.com/carbon-design-system/carb/pkg/schema"
)

func newPlanCmd(cfg *schema.CliConfiguration) *cobra.Command {
	var opts e.PlanOptions

	planCmd := &cobra.Command{
		Use:   "plan <task>",
		Short: "Show the order a package script would run in across the workspace",
		Long: `Lists the packages that define the given script in dependency order,
together with the command each one would run. Nothing is executed.`,
		Example: "carb plan build --filter '@carbon/react' --with-deps",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Task = args[0]
			return e.ExecutePlan(cfg, opts, cmd.OutOrStdout())
		},
	}
	planCmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "The output format: table or json")
	planCmd.Flags().StringSliceVar(&opts.Filter, "filter", nil, "Only plan packages whose name matches the glob (repeatable)")
	planCmd.Flags().BoolVar(&opts.WithDependencies, "with-deps", false, "Include the workspace dependencies of the filtered packages")
	return planCmd
}
