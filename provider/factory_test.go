package provider

import (
	"testing"

	"sportai/model"
	"sportai/ollama"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		selection   model.Selection
		expectError bool
	}{
		{"openai", model.SelectionOpenAI, false},
		{"gemini", model.SelectionGemini, false},
		{"ollama", model.SelectionOllama, false},
		{"unknown", model.Selection(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(Config{}, ollama.NewClient(0), tt.selection, model.Credentials{})

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if p != nil {
					t.Error("expected nil provider, got non-nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch p.(type) {
			case *OpenAIProvider, *GeminiProvider, *OllamaProvider:
			default:
				t.Errorf("unexpected provider type %T", p)
			}
		})
	}
}

func TestNewProviderPassesCredentials(t *testing.T) {
	creds := model.Credentials{
		OpenAIKey:   "sk",
		GeminiKey:   "gk",
		OllamaURL:   "http://h:11434",
		OllamaModel: "llama3",
	}
	cfg := Config{OpenAIModel: "gpt-4o-mini"}

	p, _ := NewProvider(cfg, nil, model.SelectionOpenAI, creds)
	if oa := p.(*OpenAIProvider); oa.apiKey != "sk" || oa.model != "gpt-4o-mini" {
		t.Errorf("openai provider = %+v", oa)
	}

	p, _ = NewProvider(cfg, nil, model.SelectionGemini, creds)
	if g := p.(*GeminiProvider); g.apiKey != "gk" || g.model != DefaultGeminiModel {
		t.Errorf("gemini provider = %+v", g)
	}

	p, _ = NewProvider(cfg, nil, model.SelectionOllama, creds)
	if o := p.(*OllamaProvider); o.baseURL != "http://h:11434" || o.model != "llama3" || o.client == nil {
		t.Errorf("ollama provider = %+v", o)
	}
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory(Config{}, ollama.NewClient(0))

	p, err := factory(model.SelectionOllama, model.Credentials{})
	if err != nil || p == nil {
		t.Fatalf("factory(ollama) = (%v, %v)", p, err)
	}
	if _, err := factory(model.Selection(-1), model.Credentials{}); err == nil {
		t.Error("expected error for unknown selection")
	}
}
