package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor       = lipgloss.Color("7")
	accentColor    = lipgloss.Color("12")
	successColor   = lipgloss.Color("10")
	warningColor   = lipgloss.Color("11")
	dangerColor    = lipgloss.Color("9")
	highlightColor = lipgloss.Color("13")

	// User message style
	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Assistant message style
	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	// "AI" in the header
	TitleAccentStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)

// FormatFooter formats a footer string with alternating keys and descriptions.
// Usage: FormatFooter("Enter", "Send", "Tab", "Service")
func FormatFooter(parts ...string) string {
	descStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	var result []string
	for i := 0; i < len(parts); i += 2 {
		if i+1 < len(parts) {
			result = append(result, parts[i]+" "+descStyle.Render(parts[i+1]))
		}
	}
	return strings.Join(result, "  ")
}
