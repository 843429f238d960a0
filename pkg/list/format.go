// Package list renders workspace trees, build orders and task plans for
// the terminal and as JSON.
package list

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/carbon-design-system/carb/errors"
)

const newline = "\n"

// Format is an output format name accepted by --format.
type Format string

const (
	FormatTree  Format = "tree"
	FormatList  Format = "list"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates value against the formats a command supports.
func ParseFormat(value string, allowed ...Format) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(value)))
	if slices.Contains(allowed, f) {
		return f, nil
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", errUtils.ErrInvalidOutputFormat, value, strings.Join(names, ", "))
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + newline, nil
}

const (
	colorMuted  = "#808080"
	colorName   = "#5FAFFF"
	colorWarn   = "#FFA500"
	colorHeader = "#FFFFFF"
)

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorName)).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHeader)).Bold(true)
)
