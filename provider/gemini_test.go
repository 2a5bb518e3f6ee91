package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportai/model"
	"sportai/provider/testutil"
)

func TestGeminiProviderMissingKey(t *testing.T) {
	p := NewGeminiProvider("", "", "")
	_, err := p.Complete(context.Background(), "q")

	var credErr *model.MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "Gemini", credErr.Provider)
	assert.Equal(t, "Error: Gemini API Key is missing.", model.UserMessage(err))
}

func TestGeminiProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, DefaultGeminiModel+":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testutil.GeminiResponseJSON))
	}))
	defer srv.Close()

	p := NewGeminiProvider(srv.URL, "g-key", "")
	reply, err := p.Complete(context.Background(), "How many European Cups?")

	require.NoError(t, err)
	assert.Equal(t, "Real Madrid have won 15 European Cups.", reply.Text)
	assert.Equal(t, model.UsageMetrics{}, reply.Usage)
}

func TestGeminiProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiProvider(srv.URL, "bad", "").Complete(context.Background(), "q")

	var provErr *model.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "API key not valid")
}
