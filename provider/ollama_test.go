package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportai/model"
	"sportai/ollama"
	"sportai/provider/testutil"
)

func TestOllamaProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate/", r.URL.Path)
		w.Write([]byte(testutil.OllamaGenerateJSON))
	}))
	defer srv.Close()

	p := NewOllamaProvider(ollama.NewClient(0), srv.URL, "llama3")
	reply, err := p.Complete(context.Background(), "What is the answer?")

	require.NoError(t, err)
	assert.Equal(t, "42", reply.Text)
	assert.Equal(t, model.UsageMetrics{}, reply.Usage)
}

func TestOllamaProviderMissingConfiguration(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	tests := []struct {
		name      string
		baseURL   string
		model     string
		wantField string
	}{
		{"blank url", "", "llama3", model.FieldServerURL},
		{"whitespace url", "   ", "llama3", model.FieldServerURL},
		{"no model", srv.URL, "", model.FieldModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewOllamaProvider(ollama.NewClient(0), tt.baseURL, tt.model)
			_, err := p.Complete(context.Background(), "q")

			var cfgErr *model.MissingConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
	assert.Zero(t, hits, "no request may be sent without configuration")
}

func TestOllamaProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	p := NewOllamaProvider(ollama.NewClient(0), base, "llama3")
	_, err := p.Complete(context.Background(), "q")

	var connErr *model.ConnectionFailedError
	assert.ErrorAs(t, err, &connErr)
}
