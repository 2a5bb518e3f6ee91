package provider

import (
	"context"
	"strings"

	"sportai/model"
	"sportai/ollama"
)

// OllamaProvider answers queries with a model hosted on an Ollama server.
type OllamaProvider struct {
	client  *ollama.Client
	baseURL string
	model   string
}

// NewOllamaProvider creates an Ollama adapter for the given server and model.
func NewOllamaProvider(client *ollama.Client, baseURL, model string) *OllamaProvider {
	return &OllamaProvider{
		client:  client,
		baseURL: baseURL,
		model:   model,
	}
}

// Complete implements model.Provider. The server URL and model are checked
// before any request is made.
func (p *OllamaProvider) Complete(ctx context.Context, query string) (model.Reply, error) {
	if strings.TrimSpace(p.baseURL) == "" {
		return model.Reply{}, &model.MissingConfigurationError{Field: model.FieldServerURL}
	}
	if p.model == "" {
		return model.Reply{}, &model.MissingConfigurationError{Field: model.FieldModel}
	}

	text, err := p.client.Generate(ctx, p.baseURL, p.model, query)
	if err != nil {
		return model.Reply{}, model.AsFailure(err)
	}
	return model.Reply{Text: text}, nil
}
