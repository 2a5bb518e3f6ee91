package provider

import (
	"fmt"

	"sportai/config"
	"sportai/model"
	"sportai/ollama"
)

// NewProvider creates the adapter for sel using creds.
//
// Construction never validates credentials: a blank API key or missing model
// is reported by Complete, so the failure lands in the conversation like any
// other request error.
func NewProvider(cfg Config, local *ollama.Client, sel model.Selection, creds model.Credentials) (model.Provider, error) {
	switch sel {
	case model.SelectionOpenAI:
		return NewOpenAIProvider(cfg.OpenAIBaseURL, creds.OpenAIKey, cfg.OpenAIModel), nil
	case model.SelectionGemini:
		return NewGeminiProvider(cfg.GeminiBaseURL, creds.GeminiKey, cfg.GeminiModel), nil
	case model.SelectionOllama:
		if local == nil {
			local = ollama.NewClient(0)
		}
		return NewOllamaProvider(local, creds.OllamaURL, creds.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unknown provider selection: %s", sel)
	}
}

// NewFactory binds cfg and the shared Ollama client into a model.ProviderFactory.
func NewFactory(cfg Config, local *ollama.Client) model.ProviderFactory {
	return func(sel model.Selection, creds model.Credentials) (model.Provider, error) {
		p, err := NewProvider(cfg, local, sel, creds)
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Provider] %v", err)
			}
			return nil, err
		}
		return p, nil
	}
}
