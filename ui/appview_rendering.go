package ui

import (
	"fmt"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	appmodel "sportai/model"
)

func (a AppView) View() string {
	if !a.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	switch {
	case a.showModelSelector:
		b.WriteString(a.renderModelSelector())
	case a.showTokenDetails:
		b.WriteString(a.renderTokenDetails())
	default:
		b.WriteString(a.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a AppView) renderHeader() string {
	title := TitleStyle.Render("SPORT ") + TitleAccentStyle.Render("AI ") + TitleStyle.Render("ANALYST")

	var tabs []string
	for _, sel := range appmodel.Selections {
		if sel == a.dataModel.Selection() {
			tabs = append(tabs, SelectedStyle.Render("["+sel.String()+"]"))
		} else {
			tabs = append(tabs, DimStyle.Render(" "+sel.String()+" "))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "))
}

func (a AppView) renderFooter() string {
	var b strings.Builder

	b.WriteString(a.renderStatus())
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(HelpLine(FormatFooter("Enter", "Send", "Tab", "Service", "^K", "Key/URL", "^D", "Detect", "^P", "Ping", "^O", "Model")))
	b.WriteString("\n")
	b.WriteString(HelpLine(FormatFooter("^T", "Tokens", "^Y", "Copy", "^R", "Reset", "^C", "Quit")))
	return b.String()
}

// HelpLine renders a footer line in the dim help color.
func HelpLine(s string) string {
	return StatusStyle.Render(s)
}

// renderStatus shows the current notice, or a summary of the active service.
func (a AppView) renderStatus() string {
	text := a.notice
	style := StatusStyle
	if strings.HasPrefix(text, "Error:") {
		style = ErrorStyle
	}

	if text == "" {
		sel := a.dataModel.Selection()
		creds := a.dataModel.Credentials()
		switch sel {
		case appmodel.SelectionOllama:
			modelName := a.dataModel.SelectedModel()
			if modelName == "" {
				modelName = "no model"
			}
			text = fmt.Sprintf("Ollama %s · %s", valueOrUnset(creds.OllamaURL), modelName)
		default:
			key := "key set"
			if strings.TrimSpace(creds.Get(sel)) == "" {
				key = "no API key"
			}
			text = fmt.Sprintf("%s · %s", sel, key)
		}
	}

	if a.width > 0 {
		text = runewidth.Truncate(text, a.width, "…")
	}
	return style.Render(text)
}

func valueOrUnset(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(no URL)"
	}
	return s
}

// refreshViewport re-renders the conversation into the viewport.
func (a *AppView) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(a.renderMessages())
	a.viewport.GotoBottom()
}

func (a AppView) renderMessages() string {
	width := a.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range a.dataModel.Messages() {
		switch {
		case msg.IsUser:
			b.WriteString(UserStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Render(msg.Text))
			b.WriteString("\n\n")
		case msg.IsPlaceholder():
			b.WriteString(AssistantStyle.Render("Analyst"))
			b.WriteString("\n")
			b.WriteString(a.spinner.View() + DimStyle.Render(" Analyzing..."))
			b.WriteString("\n\n")
		default:
			b.WriteString(AssistantStyle.Render("Analyst"))
			b.WriteString("\n")
			b.WriteString(strings.TrimRight(string(markdown.Render(msg.Text, width, 0)), "\n"))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (a AppView) renderTokenDetails() string {
	details := a.dataModel.TokenDetails()

	content := TitleStyle.Render("Token Details") + "\n\n" +
		fmt.Sprintf("%-24s %s tokens\n", "Model Token Limit:", details.ModelLimit) +
		fmt.Sprintf("%-24s %d tokens\n\n", "Last Query Token Count:", details.LastQueryCount) +
		DimStyle.Render("Press any key to close")

	return lipgloss.Place(a.viewport.Width, a.viewport.Height, lipgloss.Center, lipgloss.Center, ModalStyle.Render(content))
}

func (a AppView) renderModelSelector() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Select Ollama model"))
	b.WriteString("\n")
	b.WriteString(a.modelFilter.View())
	b.WriteString("\n\n")

	if len(a.filteredModels) == 0 {
		b.WriteString(DimStyle.Render("No matching models"))
	}
	for i, name := range a.filteredModels {
		line := "  " + name
		if name == a.dataModel.SelectedModel() {
			line += DimStyle.Render(" (current)")
		}
		if i == a.selectedModelIdx {
			line = HighlightStyle.Render("> " + name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.Place(a.viewport.Width, a.viewport.Height, lipgloss.Center, lipgloss.Center, ModalStyle.Render(b.String()))
}
