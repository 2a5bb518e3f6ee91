package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// filterModels returns the models matching pattern, best match first.
// An empty pattern returns every model in server order.
func filterModels(models []string, pattern string) []string {
	if pattern == "" {
		return append([]string(nil), models...)
	}

	matches := fuzzy.Find(pattern, models)
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Str
	}
	return out
}

func (a *AppView) openModelSelector() {
	a.showModelSelector = true
	a.modelFilter.SetValue("")
	a.modelFilter.Focus()
	a.input.Blur()
	a.filteredModels = a.dataModel.DiscoveredModels()
	a.selectedModelIdx = 0
	for i, name := range a.filteredModels {
		if name == a.dataModel.SelectedModel() {
			a.selectedModelIdx = i
		}
	}
}

func (a *AppView) closeModelSelector() {
	a.showModelSelector = false
	a.modelFilter.Blur()
	a.input.Focus()
}

func (a AppView) handleModelSelectorUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.closeModelSelector()
		return a, nil

	case "up", "ctrl+k":
		if a.selectedModelIdx > 0 {
			a.selectedModelIdx--
		}
		return a, nil

	case "down", "ctrl+j":
		if a.selectedModelIdx < len(a.filteredModels)-1 {
			a.selectedModelIdx++
		}
		return a, nil

	case "enter":
		if len(a.filteredModels) == 0 {
			return a, nil
		}
		name := a.filteredModels[a.selectedModelIdx]
		a.closeModelSelector()
		if err := a.dataModel.SelectModel(name); err != nil {
			return a, a.showNotice(err.Error())
		}
		return a, a.showNotice("Using model " + name)
	}

	var cmd tea.Cmd
	a.modelFilter, cmd = a.modelFilter.Update(msg)
	a.filteredModels = filterModels(a.dataModel.DiscoveredModels(), a.modelFilter.Value())
	if a.selectedModelIdx >= len(a.filteredModels) {
		a.selectedModelIdx = max(len(a.filteredModels)-1, 0)
	}
	return a, cmd
}
