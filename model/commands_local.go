package model

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sportai/config"
)

// localTimeout bounds discovery and ping calls.
const localTimeout = 10 * time.Second

// NoModelsText is shown when discovery succeeds with an empty list.
const NoModelsText = "No models found on the Ollama server."

// DetectModels queries the local server for its installed models.
// Discovery runs independently of the submission in-flight flag.
func (m *Model) DetectModels(baseURL string) tea.Cmd {
	local := m.local
	return func() tea.Msg {
		if local == nil {
			return ModelsDetectedMsg{BaseURL: baseURL, Err: &ProviderError{Message: "local server client not configured"}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), localTimeout)
		defer cancel()

		models, err := local.ListModels(ctx, baseURL)
		if err != nil {
			return ModelsDetectedMsg{BaseURL: baseURL, Err: AsFailure(err)}
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] Discovered %d models at %s", len(models), baseURL)
		}
		return ModelsDetectedMsg{BaseURL: baseURL, Models: models}
	}
}

// ApplyModels replaces the discovered model list. On success the first model
// becomes the selected one; on failure the selection is cleared.
func (m *Model) ApplyModels(msg ModelsDetectedMsg) tea.Cmd {
	m.discovered = nil
	m.credentials.OllamaModel = ""

	if msg.Err != nil {
		return notify(UserMessage(msg.Err))
	}

	m.discovered = append([]string(nil), msg.Models...)
	if len(m.discovered) == 0 {
		return notify(NoModelsText)
	}

	m.credentials.OllamaModel = m.discovered[0]
	return notify(fmt.Sprintf("Found %d models. Using %s.", len(m.discovered), m.discovered[0]))
}

// Ping checks that the local server at baseURL answers.
func (m *Model) Ping(baseURL string) tea.Cmd {
	local := m.local
	return func() tea.Msg {
		if local == nil {
			return PingResultMsg{BaseURL: baseURL, Err: &ProviderError{Message: "local server client not configured"}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), localTimeout)
		defer cancel()

		err := local.Ping(ctx, baseURL)
		if err != nil {
			err = AsFailure(err)
		}
		return PingResultMsg{BaseURL: baseURL, Err: err}
	}
}

// ApplyPing surfaces the probe result. It does not modify any state.
func (m *Model) ApplyPing(msg PingResultMsg) tea.Cmd {
	if msg.Err != nil {
		return notify(UserMessage(msg.Err))
	}
	return notify("Connected to " + msg.BaseURL)
}
