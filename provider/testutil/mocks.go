package testutil

import (
	"context"
	"sync"

	"sportai/model"
)

// MockProvider is a scripted model.Provider that records its calls.
type MockProvider struct {
	mu      sync.Mutex
	Reply   model.Reply
	Err     error
	Queries []string
}

// NewMockProvider creates a provider that answers every query with reply.
func NewMockProvider(reply string) *MockProvider {
	return &MockProvider{Reply: model.Reply{Text: reply}}
}

// NewFailingProvider creates a provider that fails every query with err.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{Err: err}
}

// Complete implements model.Provider.
func (m *MockProvider) Complete(ctx context.Context, query string) (model.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return model.Reply{}, m.Err
	}
	return m.Reply, nil
}

// Calls returns how many times Complete ran.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// MockFactory hands out one provider per selection and records each request.
type MockFactory struct {
	Providers map[model.Selection]*MockProvider
	Requests  []FactoryRequest
}

// FactoryRequest is one recorded factory invocation.
type FactoryRequest struct {
	Selection   model.Selection
	Credentials model.Credentials
}

// NewMockFactory creates a factory that returns p for every selection.
func NewMockFactory(p *MockProvider) *MockFactory {
	return &MockFactory{
		Providers: map[model.Selection]*MockProvider{
			model.SelectionOpenAI: p,
			model.SelectionGemini: p,
			model.SelectionOllama: p,
		},
	}
}

// Factory returns the model.ProviderFactory view of f.
func (f *MockFactory) Factory() model.ProviderFactory {
	return func(sel model.Selection, creds model.Credentials) (model.Provider, error) {
		f.Requests = append(f.Requests, FactoryRequest{Selection: sel, Credentials: creds})
		return f.Providers[sel], nil
	}
}

// MockLocalServer is a scripted model.LocalServer.
type MockLocalServer struct {
	Models  []string
	ListErr error
	PingErr error
	Pinged  []string
}

// ListModels implements model.LocalServer.
func (m *MockLocalServer) ListModels(ctx context.Context, baseURL string) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Models, nil
}

// Ping implements model.LocalServer.
func (m *MockLocalServer) Ping(ctx context.Context, baseURL string) error {
	m.Pinged = append(m.Pinged, baseURL)
	return m.PingErr
}
