package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sportai/config"
)

// DefaultRequestTimeout bounds a single dispatched request.
const DefaultRequestTimeout = 120 * time.Second

// Model is the chat orchestrator. It owns the provider selection, the
// credentials, the conversation log and the request lifecycle.
//
// All state is mutated on the caller's goroutine. Network work is handed back
// as a tea.Cmd; its result message must be passed to the matching Apply method.
type Model struct {
	conversation *Conversation
	selection    Selection
	credentials  Credentials
	usage        UsageMetrics
	discovered   []string
	inFlight     bool

	newProvider    ProviderFactory
	local          LocalServer
	requestTimeout time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.requestTimeout = d
		}
	}
}

// WithSelection sets the initial backend.
func WithSelection(sel Selection) Option {
	return func(m *Model) {
		if sel.Valid() {
			m.selection = sel
		}
	}
}

// WithCredentials seeds the session credentials.
func WithCredentials(creds Credentials) Option {
	return func(m *Model) {
		m.credentials = creds
	}
}

// NewModel creates an orchestrator with a greeting-only conversation.
func NewModel(factory ProviderFactory, local LocalServer, opts ...Option) *Model {
	m := &Model{
		conversation:   NewConversation(),
		selection:      SelectionOpenAI,
		newProvider:    factory,
		local:          local,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Messages returns the conversation log for rendering.
func (m *Model) Messages() []ChatMessage {
	return m.conversation.Messages()
}

// Conversation exposes the underlying log.
func (m *Model) Conversation() *Conversation {
	return m.conversation
}

// Selection returns the active backend.
func (m *Model) Selection() Selection {
	return m.selection
}

// Credentials returns a copy of the session credentials.
func (m *Model) Credentials() Credentials {
	return m.credentials
}

// Usage returns the metrics of the last completed request.
func (m *Model) Usage() UsageMetrics {
	return m.usage
}

// DiscoveredModels returns the model names from the last discovery call.
func (m *Model) DiscoveredModels() []string {
	out := make([]string, len(m.discovered))
	copy(out, m.discovered)
	return out
}

// SelectedModel returns the local model in use, or "" when none is selected.
func (m *Model) SelectedModel() string {
	return m.credentials.OllamaModel
}

// InFlight reports whether a submission is awaiting its response.
func (m *Model) InFlight() bool {
	return m.inFlight
}

// TokenDetails returns the token usage summary for the active backend.
func (m *Model) TokenDetails() TokenDetails {
	return TokenDetails{
		Selection:      m.selection,
		ModelLimit:     m.selection.TokenLimit(),
		LastQueryCount: m.usage.Total(),
	}
}

// SetProvider switches the active backend. The log and credentials are kept.
func (m *Model) SetProvider(sel Selection) {
	if !sel.Valid() {
		return
	}
	m.selection = sel

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Switched provider to %s", sel)
	}
}

// SetCredential stores the API key (cloud backends) or base URL (Ollama).
func (m *Model) SetCredential(sel Selection, value string) {
	m.credentials.Set(sel, value)
}

// SelectModel chooses a local model. Only names returned by the most recent
// discovery call are accepted.
func (m *Model) SelectModel(name string) error {
	for _, candidate := range m.discovered {
		if candidate == name {
			m.credentials.OllamaModel = name
			return nil
		}
	}
	return fmt.Errorf("model %q was not reported by the server", name)
}

// Submit starts a request for query against the active backend.
//
// The user message and an empty AI placeholder are appended before anything
// else happens. Submit returns nil, leaving state untouched, when query is
// blank or another submission is still in flight.
func (m *Model) Submit(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" || m.inFlight {
		return nil
	}

	index, err := m.conversation.appendTurn(query)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] Submit rejected: %v", err)
		}
		return nil
	}
	m.inFlight = true

	requestID := uuid.NewString()
	generation := m.conversation.Generation()
	sel := m.selection
	creds := m.credentials
	factory := m.newProvider
	timeout := m.requestTimeout

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Request %s dispatched to %s (placeholder %d)", requestID, sel, index)
	}

	return func() tea.Msg {
		msg := ResponseMsg{
			RequestID:  requestID,
			Generation: generation,
			Index:      index,
		}

		if factory == nil {
			msg.Err = &ProviderError{Message: "no provider configured"}
			return msg
		}
		p, err := factory(sel, creds)
		if err != nil {
			msg.Err = AsFailure(err)
			return msg
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		msg.Reply, msg.Err = p.Complete(ctx, query)
		if msg.Err != nil {
			msg.Err = AsFailure(msg.Err)
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] Request %s finished in %v (err=%v)", requestID, time.Since(start), msg.Err)
		}
		return msg
	}
}

// ApplyResponse splices a submission result into the log and ends the
// in-flight interval. A failure also produces a notification command.
func (m *Model) ApplyResponse(msg ResponseMsg) tea.Cmd {
	m.inFlight = false

	var text string
	if msg.Err != nil {
		text = UserMessage(msg.Err)
	} else {
		text = msg.Reply.Text
		if text == "" {
			text = NoResponseText
		}
		m.usage = msg.Reply.Usage
	}

	if !m.conversation.resolve(msg.Generation, msg.Index, text) && config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Request %s result dropped: conversation was reset", msg.RequestID)
	}

	if msg.Err != nil {
		return notify(text)
	}
	return nil
}

// ResetConversation replaces the log with the greeting. An outstanding
// request keeps running; its result is discarded when it arrives.
func (m *Model) ResetConversation() {
	m.conversation.Reset()
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: text}
	}
}
