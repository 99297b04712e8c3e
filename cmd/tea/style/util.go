package style

import "github.com/charmbracelet/lipgloss"

func ForegroundPrint(text string, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// ErrorText renders an inline error line.
func ErrorText(text string) string {
	return CrossIcon.String() + ForegroundPrint(text, "9")
}
