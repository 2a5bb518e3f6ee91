package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sportai/config"
	"sportai/model"
	"sportai/ollama"
	"sportai/provider"
	"sportai/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	service := flag.String("service", "", "service selected at startup: openai, gemini or ollama")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sportai %s (%s)\n", Version, License)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	config.InitDebugLog(cfg.DataDir())

	// The launch parameter wins over the configured default
	selection, ok := model.ParseService(*service)
	if !ok {
		selection, ok = model.ParseService(cfg.DefaultService)
		if !ok && config.DebugLog != nil {
			config.DebugLog.Printf("Unknown default_service %q, using %s", cfg.DefaultService, selection)
		}
	}

	local := ollama.NewClient(cfg.OllamaTimeout())
	factory := provider.NewFactory(provider.Config{
		OpenAIBaseURL: cfg.OpenAI.BaseURL,
		OpenAIModel:   cfg.OpenAI.Model,
		GeminiBaseURL: cfg.Gemini.BaseURL,
		GeminiModel:   cfg.Gemini.Model,
	}, local)

	orchestrator := model.NewModel(factory, local,
		model.WithSelection(selection),
		model.WithRequestTimeout(cfg.RequestTimeout()),
		model.WithCredentials(model.Credentials{
			OpenAIKey: cfg.OpenAIAPIKey,
			GeminiKey: cfg.GeminiAPIKey,
			OllamaURL: cfg.Ollama.Host,
		}),
	)

	if config.DebugLog != nil {
		config.DebugLog.Printf("sportai %s starting with service %s", Version, selection)
	}

	p := tea.NewProgram(ui.NewAppView(orchestrator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running sportai: %v\n", err)
		os.Exit(1)
	}
}
