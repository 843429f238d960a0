package exec

import "github.com/charmbracelet/lipgloss"

var checkMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D700")).Render("✓")
