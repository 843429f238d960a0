package list

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/carbon-design-system/carb/pkg/resolver"
)

// RenderPlanTable renders the steps of a task plan as a table with package
// paths relative to rootDir.
func RenderPlanTable(task string, steps []resolver.Step, rootDir string) string {
	if len(steps) == 0 {
		return warnStyle.Render(fmt.Sprintf("No packages define a %q script.", task)) + newline
	}

	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = []string{fmt.Sprint(i + 1), s.Package.Name, relPath(rootDir, s.Package.Dir), s.Command}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("#", "Package", "Path", "Command").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if row == table.HeaderRow {
				return style.Inherit(headerStyle)
			}
			return style
		})

	return t.String() + newline
}

// RenderPlanJSON prints the plan as a JSON array of steps.
func RenderPlanJSON(steps []resolver.Step) (string, error) {
	if steps == nil {
		steps = []resolver.Step{}
	}
	return marshalJSON(steps)
}
