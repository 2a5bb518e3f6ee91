package model

import (
	"fmt"
	"strings"
)

// Selection identifies the backend that answers the next submission.
type Selection int

const (
	SelectionOpenAI Selection = iota // Cloud provider A
	SelectionGemini                  // Cloud provider B
	SelectionOllama                  // Locally hosted inference server
)

// Selections lists every backend in display order.
var Selections = []Selection{SelectionOpenAI, SelectionGemini, SelectionOllama}

func (s Selection) String() string {
	switch s {
	case SelectionOpenAI:
		return "OpenAI"
	case SelectionGemini:
		return "Gemini"
	case SelectionOllama:
		return "Ollama"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Valid reports whether s is one of the known backends.
func (s Selection) Valid() bool {
	return s >= SelectionOpenAI && s <= SelectionOllama
}

// Next returns the following backend, wrapping around.
func (s Selection) Next() Selection {
	return Selections[(int(s)+1)%len(Selections)]
}

// TokenLimit returns the context size label shown in the token details view.
func (s Selection) TokenLimit() string {
	switch s {
	case SelectionOpenAI:
		return "4,096"
	case SelectionGemini:
		return "32,768"
	default:
		return "N/A"
	}
}

// ParseService maps a launch "service" parameter to a Selection.
// Accepted values are "openai", "gemini" and "ollama" (case-insensitive).
func ParseService(service string) (Selection, bool) {
	switch strings.ToLower(strings.TrimSpace(service)) {
	case "openai":
		return SelectionOpenAI, true
	case "gemini":
		return SelectionGemini, true
	case "ollama":
		return SelectionOllama, true
	default:
		return SelectionOpenAI, false
	}
}
