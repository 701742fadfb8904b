package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	PassStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	BlockStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
)
