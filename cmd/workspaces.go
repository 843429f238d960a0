package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/carbon-design-system/carb/internal/exec"
	"github.com/carbon-design-system/carb/pkg/schema"
)

func newWorkspacesCmd(cfg *schema.CliConfiguration) *cobra.Command {
	workspacesCmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"ws"},
		Short:   "Explore the workspaces in your project",
	}
	workspacesCmd.AddCommand(
		newWorkspacesListCmd(cfg),
		newWorkspacesOrderCmd(cfg),
		newWorkspacesCheckCmd(cfg),
	)
	return workspacesCmd
}

func newWorkspacesListCmd(cfg *schema.CliConfiguration) *cobra.Command {
	var opts e.WorkspacesListOptions

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the workspaces in your project",
		Example: "carb workspaces list --format list --filter '@carbon/*'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.ExecuteWorkspacesList(cfg, opts, cmd.OutOrStdout())
		},
	}
	listCmd.Flags().StringVarP(&opts.Format, "format", "f", "tree", "The output format: tree, list or json")
	listCmd.Flags().StringSliceVar(&opts.Filter, "filter", nil, "Only show packages whose name matches the glob (repeatable)")
	return listCmd
}

func newWorkspacesOrderCmd(cfg *schema.CliConfiguration) *cobra.Command {
	var format string

	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Print the workspaces in dependency order",
		Long:  `Prints every workspace package so that each one comes after the workspace packages it depends on.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.ExecuteWorkspacesOrder(cfg, format, cmd.OutOrStdout())
		},
	}
	orderCmd.Flags().StringVarP(&format, "format", "f", "list", "The output format: list or json")
	return orderCmd
}

func newWorkspacesCheckCmd(cfg *schema.CliConfiguration) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check workspace dependency ranges against local versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.ExecuteWorkspacesCheck(cfg, cmd.OutOrStdout())
		},
	}
}
