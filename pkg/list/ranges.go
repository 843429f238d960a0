package list

import (
	"fmt"
	"strings"

	"github.com/carbon-design-system/carb/pkg/resolver"
)

// RenderMismatches lists workspace dependency ranges that the local
// package versions do not satisfy.
func RenderMismatches(mismatches []resolver.RangeMismatch) string {
	if len(mismatches) == 0 {
		return "All workspace dependency ranges are satisfied." + newline
	}

	var b strings.Builder
	b.WriteString(warnStyle.Render(fmt.Sprintf("%d workspace dependency range(s) not satisfied:", len(mismatches))))
	b.WriteString(newline)
	for _, m := range mismatches {
		fmt.Fprintf(&b, "  %s -> %s %s %s", nameStyle.Render(m.Package.Name), m.Dependency, m.Range, mutedStyle.Render("("+string(m.Group)+")"))
		b.WriteString(newline)
		fmt.Fprintf(&b, "    %s", mutedStyle.Render(m.Reason))
		b.WriteString(newline)
	}
	return b.String()
}
