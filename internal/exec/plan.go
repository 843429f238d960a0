package exec

import (
	"io"

	"github.com/carbon-design-system/carb/pkg/list"
	"github.com/carbon-design-system/carb/pkg/resolver"
	"github.com/carbon-design-system/carb/pkg/schema"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// PlanOptions configures `carb plan`.
type PlanOptions struct {
	Task             string
	Filter           []string
	WithDependencies bool
	Format           string
}

// ExecutePlan prints the ordered steps that running Task across the
// workspace would take. Nothing is executed.
func ExecutePlan(cfg *schema.CliConfiguration, opts PlanOptions, out io.Writer) error {
	format, err := list.ParseFormat(opts.Format, list.FormatTable, list.FormatJSON)
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
	steps, err := resolver.Plan(tree, opts.Task, resolver.PlanOptions{
		Filter:           filter,
		WithDependencies: opts.WithDependencies,
	})
	if err != nil {
		return enrichResolveError(err)
	}

	if format == list.FormatJSON {
		s, err := list.RenderPlanJSON(steps)
		if err != nil {
			return err
		}
		return writeString(out, s)
	}
	return writeString(out, list.RenderPlanTable(opts.Task, steps, tree.Dir))
}
