// Package provider implements the backends behind model.Provider.
//
// Each model.Selection has exactly one adapter:
//   - OpenAIProvider: chat completion with a fixed sports-assistant system prompt
//   - GeminiProvider: single-prompt content generation
//   - OllamaProvider: non-streaming generate against a user-supplied server
//
// Adapters check their credentials before touching the network and translate
// every failure into the model failure types, so the orchestrator never has to
// know which backend produced an error.
//
// # Usage
//
//	factory := provider.NewFactory(provider.Config{}, ollama.NewClient(0))
//	p, err := factory(model.SelectionOllama, model.Credentials{
//	    OllamaURL:   "http://localhost:11434",
//	    OllamaModel: "llama3",
//	})
//	if err != nil {
//	    // handle error
//	}
//	reply, err := p.Complete(ctx, "Who won the 2022 World Cup?")
package provider

// Fixed request parameters.
const (
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-2.5-flash"
	SystemPrompt       = "You are a helpful sports AI assistant."
)

// Config holds the non-secret backend settings loaded from the config file.
type Config struct {
	OpenAIBaseURL string // Empty uses the SDK default
	OpenAIModel   string
	GeminiBaseURL string // Empty uses the SDK default
	GeminiModel   string
}
