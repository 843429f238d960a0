package exec

import (
	"fmt"
	"io"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/list"
	"github.com/carbon-design-system/carb/pkg/resolver"
	"github.com/carbon-design-system/carb/pkg/schema"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// WorkspacesListOptions configures `carb workspaces list`.
type WorkspacesListOptions struct {
	Format string
	Filter []string
}

// ExecuteWorkspacesList prints the discovered workspace packages.
func ExecuteWorkspacesList(cfg *schema.CliConfiguration, opts WorkspacesListOptions, out io.Writer) error {
	format, err := list.ParseFormat(opts.Format, list.FormatTree, list.FormatList, list.FormatJSON)
	if err != nil {
		return err
	}
	filter, err := workspace.NewFilter(opts.Filter...)
	if err != nil {
		return err
	}

	tree, err := discoverWorkspace(cfg)
	if err != nil {
		return err
	}

	switch format {
	case list.FormatJSON:
		s, err := list.RenderWorkspacesJSON(tree, filter)
		if err != nil {
			return err
		}
		return writeString(out, s)
	case list.FormatList:
		return writeString(out, list.RenderWorkspaceList(tree, filter))
	default:
		return writeString(out, list.RenderWorkspaceTree(tree, filter))
	}
}

// ExecuteWorkspacesOrder prints every package in dependency order.
func ExecuteWorkspacesOrder(cfg *schema.CliConfiguration, format string, out io.Writer) error {
	f, err := list.ParseFormat(format, list.FormatList, list.FormatJSON)
	if err != nil {
		return err
	}

	tree, err := discoverWorkspace(cfg)
	if err != nil {
		return err
	}
	order, err := resolver.ResolveOrder(tree)
	if err != nil {
		return enrichResolveError(err)
	}

	if f == list.FormatJSON {
		s, err := list.RenderOrderJSON(order)
		if err != nil {
			return err
		}
		return writeString(out, s)
	}
	return writeString(out, list.RenderOrderList(order))
}

// ExecuteWorkspacesCheck reports workspace dependency ranges that the local
// versions do not satisfy. Mismatches are printed and returned as an error
// wrapping errUtils.ErrRangeMismatch.
func ExecuteWorkspacesCheck(cfg *schema.CliConfiguration, out io.Writer) error {
	tree, err := discoverWorkspace(cfg)
	if err != nil {
		return err
	}
	mismatches, err := resolver.CheckRanges(tree)
	if err != nil {
		return enrichResolveError(err)
	}

	if err := writeString(out, list.RenderMismatches(mismatches)); err != nil {
		return err
	}
	if len(mismatches) > 0 {
		return errUtils.Build(fmt.Errorf("%w: %d found", errUtils.ErrRangeMismatch, len(mismatches))).
			WithHint("Bump the dependent's range or the dependency's version so they agree").
			WithExitCode(1).
			Err()
	}
	return nil
}
