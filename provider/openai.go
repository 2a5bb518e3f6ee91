package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"sportai/model"
)

// OpenAIProvider answers queries through the OpenAI chat completion API.
// Only the current query is sent, preceded by SystemPrompt.
type OpenAIProvider struct {
	baseURL string
	apiKey  string
	model   string
}

// NewOpenAIProvider creates an OpenAI adapter. An empty model selects DefaultOpenAIModel.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Complete implements model.Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, query string) (model.Reply, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return model.Reply{}, &model.MissingCredentialError{Provider: "OpenAI"}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(p.apiKey),
		option.WithMaxRetries(0),
	}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	client := openai.NewClient(opts...)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(query),
		},
	})
	if err != nil {
		return model.Reply{}, openAIFailure(err)
	}

	text := model.NoResponseText
	if len(completion.Choices) > 0 && completion.Choices[0].Message.Content != "" {
		text = completion.Choices[0].Message.Content
	}

	return model.Reply{
		Text: text,
		Usage: model.UsageMetrics{
			PromptTokens:   int(completion.Usage.PromptTokens),
			ResponseTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

// openAIFailure prefers the API's own error message over the SDK's verbose form.
func openAIFailure(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &model.ProviderError{Message: apiErr.Message}
	}
	return &model.ProviderError{Message: err.Error()}
}
