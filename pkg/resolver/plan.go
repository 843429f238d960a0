package resolver

import (
	"github.com/samber/lo"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/dependency"
	"github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// Step is one package task in a plan.
type Step struct {
	Package PackageID `json:"package"`
	Task    string    `json:"task"`
	Command string    `json:"command"`
}

// PlanOptions narrows a plan.
type PlanOptions struct {
	// Filter selects packages by name. Nil selects every package.
	Filter *workspace.Filter
	// WithDependencies adds the workspace dependencies of the selected
	// packages, transitively.
	WithDependencies bool
}

// Plan lists, in dependency order, the selected packages whose manifest
// defines task together with the command each would run. Packages without
// the script are left out.
func (r *Resolver) Plan(root *workspace.Node, task string, opts PlanOptions) ([]Step, error) {
	if task == "" {
		return nil, errUtils.ErrMissingTaskName
	}
	log := logger.OrDefault(r.Logger)

	idx, err := r.build(root)
	if err != nil {
		return nil, err
	}
	order, err := idx.order(log)
	if err != nil {
		return nil, err
	}

	var selected []dependency.NodeHandle
	for i, node := range idx.nodes {
		if opts.Filter.Match(node.Name()) {
			selected = append(selected, dependency.NodeHandle(i))
		}
	}
	if opts.WithDependencies {
		selected = idx.graph.Reachable(selected...)
	}
	include := lo.SliceToMap(selected, func(h dependency.NodeHandle) (dependency.NodeHandle, bool) {
		return h, true
	})

	var steps []Step
	for _, h := range order {
		if !include[h] {
			continue
		}
		node := idx.nodes[h]
		command, ok := node.Manifest.Script(task)
		if !ok {
			log.Trace("Package has no script for task", "package", node.Name(), "task", task)
			continue
		}
		id, _ := idx.graph.Get(h)
		steps = append(steps, Step{Package: id, Task: task, Command: command})
	}

	log.Debug("Planned task", "task", task, "steps", len(steps))
	return steps, nil
}

// Plan runs Resolver.Plan with the default logger.
func Plan(root *workspace.Node, task string, opts PlanOptions) ([]Step, error) {
	return (&Resolver{}).Plan(root, task, opts)
}
