package model

// Credentials holds the per-backend settings supplied by the user.
// Values live in memory for the session only.
type Credentials struct {
	OpenAIKey   string
	GeminiKey   string
	OllamaURL   string
	OllamaModel string // Empty means no model selected
}

// Set stores value as the primary credential of the given backend: the API
// key for cloud backends, the base URL for Ollama.
func (c *Credentials) Set(sel Selection, value string) {
	switch sel {
	case SelectionOpenAI:
		c.OpenAIKey = value
	case SelectionGemini:
		c.GeminiKey = value
	case SelectionOllama:
		c.OllamaURL = value
	}
}

// Get returns the primary credential of the given backend.
func (c Credentials) Get(sel Selection) string {
	switch sel {
	case SelectionOpenAI:
		return c.OpenAIKey
	case SelectionGemini:
		return c.GeminiKey
	case SelectionOllama:
		return c.OllamaURL
	default:
		return ""
	}
}
