package resolver

import (
	"errors"
	"fmt"
	"strings"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/dependency"
	"github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// CycleError names the packages on a dependency cycle. The first package
// is repeated at the end.
type CycleError struct {
	Packages []PackageID

	cause *dependency.CycleError
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Packages))
	for i, p := range e.Packages {
		names[i] = p.Name
	}
	return fmt.Sprintf("%s: %s", errUtils.ErrContainsCycle, strings.Join(names, " -> "))
}

func (e *CycleError) Unwrap() error {
	return e.cause
}

// ResolveOrder returns every named package of the tree with each package
// after all of the workspace packages it depends on.
func (r *Resolver) ResolveOrder(root *workspace.Node) ([]PackageID, error) {
	idx, err := r.build(root)
	if err != nil {
		return nil, err
	}
	order, err := idx.order(logger.OrDefault(r.Logger))
	if err != nil {
		return nil, err
	}

	out := make([]PackageID, len(order))
	for i, h := range order {
		out[i], _ = idx.graph.Get(h)
	}
	return out, nil
}

// ResolveOrder runs Resolver.ResolveOrder with the default logger.
func ResolveOrder(root *workspace.Node) ([]PackageID, error) {
	return (&Resolver{}).ResolveOrder(root)
}

func (idx *index) order(log *logger.Logger) ([]dependency.NodeHandle, error) {
	order, err := idx.graph.Topological()
	if err == nil {
		return order, nil
	}

	var cycleErr *dependency.CycleError
	if !errors.As(err, &cycleErr) {
		return nil, err
	}
	packages := make([]PackageID, len(cycleErr.Cycle))
	for i, h := range cycleErr.Cycle {
		packages[i], _ = idx.graph.Get(h)
	}
	resolved := &CycleError{Packages: packages, cause: cycleErr}
	log.Debug("Dependency cycle detected", "err", resolved)
	return nil, resolved
}
