package style

import "github.com/charmbracelet/lipgloss"

const accent = lipgloss.Color("#E8590C")

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2). //nolint:mnd
			Bold(true).
			Align(lipgloss.Center).
			Width(40) //nolint:mnd
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Header renders a boxed screen title with an optional line below it.
func Header(title string, description string) string {
	if description == "" {
		return headerStyle.Render(title)
	}
	return headerStyle.Render(title) + "\n" + description
}

// Hint renders key help at the bottom of a screen.
func Hint(text string) string {
	return hintStyle.Render(text)
}
