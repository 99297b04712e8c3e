package style

import "github.com/charmbracelet/lipgloss"

var (
	CrossIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗ ").Bold(true)
	TodoIcon    = lipgloss.NewStyle().SetString("- ").Bold(true)
	ChevronIcon = lipgloss.NewStyle().Foreground(accent).SetString("> ").Bold(true)
	BlankIcon   = lipgloss.NewStyle().SetString("  ")
)
