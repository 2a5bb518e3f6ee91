package provider

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"sportai/model"
)

// GeminiProvider answers queries through the Gemini generate content API.
// The query is the only input; no system prompt is attached. The SDK version
// in use does not surface usage metadata we rely on, so usage is always zero.
type GeminiProvider struct {
	baseURL string
	apiKey  string
	model   string
}

// NewGeminiProvider creates a Gemini adapter. An empty model selects DefaultGeminiModel.
func NewGeminiProvider(baseURL, apiKey, model string) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Complete implements model.Provider.
func (p *GeminiProvider) Complete(ctx context.Context, query string) (model.Reply, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return model.Reply{}, &model.MissingCredentialError{Provider: "Gemini"}
	}

	cc := &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return model.Reply{}, &model.ProviderError{Message: err.Error()}
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(query), nil)
	if err != nil {
		return model.Reply{}, &model.ProviderError{Message: err.Error()}
	}

	text := resp.Text()
	if text == "" {
		text = model.NoResponseText
	}
	return model.Reply{Text: text}, nil
}
