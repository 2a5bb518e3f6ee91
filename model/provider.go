package model

import "context"

// Reply is a normalized backend response.
type Reply struct {
	Text  string
	Usage UsageMetrics
}

// Provider produces a completion for a single query. Implementations return
// one of the failure types from errors.go, never a bare error.
//
// This interface lives in the model package so that provider implementations
// can import model without a cycle.
type Provider interface {
	Complete(ctx context.Context, query string) (Reply, error)
}

// ProviderFactory builds the adapter for a backend from the current credentials.
type ProviderFactory func(sel Selection, creds Credentials) (Provider, error)

// LocalServer is the discovery and reachability surface of the local backend.
type LocalServer interface {
	ListModels(ctx context.Context, baseURL string) ([]string, error)
	Ping(ctx context.Context, baseURL string) error
}
