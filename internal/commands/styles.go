package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/carlislejd/analystkit/colors"
)

// Shared styles used across command output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Palette[10])).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	OkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Palette[0]))
)
