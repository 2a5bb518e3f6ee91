package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterModels(t *testing.T) {
	models := []string{"llama3:latest", "mistral:7b", "llama3.2:3b", "qwen2.5-coder"}

	assert.Equal(t, models, filterModels(models, ""))
	assert.ElementsMatch(t, []string{"llama3:latest", "llama3.2:3b"}, filterModels(models, "llama"))
	assert.Equal(t, []string{"mistral:7b"}, filterModels(models, "mis"))
	assert.Empty(t, filterModels(models, "zzz"))
}

func TestCredentialPrompt(t *testing.T) {
	assert.Contains(t, credentialPrompt(0), "OpenAI API Key")
	assert.Contains(t, credentialLabel(2), "Ollama server URL")
}
