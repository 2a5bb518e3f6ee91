package config

const (
	DefaultService        = "openai"
	DefaultOllamaHost     = "http://localhost:11434"
	DefaultRequestTimeout = 120
	DefaultOllamaTimeout  = 120
)

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		DefaultService:        DefaultService,
		DataDirectory:         GetDefaultDataDir(),
		RequestTimeoutSeconds: DefaultRequestTimeout,
		Ollama: OllamaConfig{
			Host:           DefaultOllamaHost,
			TimeoutSeconds: DefaultOllamaTimeout,
		},
	}
}

func GenerateConfigTemplate() string {
	return `# Sport AI Analyst Configuration
# Location: ~/.config/sportai/config.toml
# This file uses TOML format: https://toml.io
#
# API keys are never stored here. Provide them at runtime or through
# SPORTAI_OPENAI_API_KEY / SPORTAI_GEMINI_API_KEY.

# Service selected at startup: "openai", "gemini" or "ollama"
default_service = "openai"

# Directory for the debug log (SPORTAI_DEBUG=1)
data_directory = "~/.local/share/sportai"

# Upper bound for a single chat request
request_timeout_seconds = 120

[openai]
# Leave empty for https://api.openai.com/v1
base_url = ""
model = "gpt-3.5-turbo"

[gemini]
# Leave empty for the public Gemini endpoint
base_url = ""
model = "gemini-2.5-flash"

[ollama]
# Ollama server URL
host = "http://localhost:11434"
timeout_seconds = 120
`
}
