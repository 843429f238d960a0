package list

import (
	"fmt"
	"strings"

	"github.com/carbon-design-system/carb/pkg/resolver"
)

// RenderOrderList prints the build order, one numbered package per line.
func RenderOrderList(order []resolver.PackageID) string {
	width := len(fmt.Sprint(len(order)))

	var b strings.Builder
	for i, id := range order {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*d.", width, i+1)))
		b.WriteString(" ")
		b.WriteString(id.Name)
		b.WriteString(newline)
	}
	return b.String()
}

// RenderOrderJSON prints the build order as a JSON array.
func RenderOrderJSON(order []resolver.PackageID) (string, error) {
	if order == nil {
		order = []resolver.PackageID{}
	}
	return marshalJSON(order)
}
