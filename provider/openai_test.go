package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportai/model"
	"sportai/provider/testutil"
)

func TestOpenAIProviderMissingKey(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	for _, key := range []string{"", "  "} {
		p := NewOpenAIProvider(srv.URL, key, "")
		_, err := p.Complete(context.Background(), "q")

		var credErr *model.MissingCredentialError
		require.ErrorAs(t, err, &credErr)
		assert.Equal(t, "OpenAI", credErr.Provider)
	}
	assert.Zero(t, hits)
}

func TestOpenAIProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultOpenAIModel, body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, SystemPrompt, body.Messages[0].Content)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "Who won in 2022?", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testutil.OpenAICompletionJSON))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "")
	reply, err := p.Complete(context.Background(), "Who won in 2022?")

	require.NoError(t, err)
	assert.Equal(t, "Argentina won the 2022 World Cup.", reply.Text)
	assert.Equal(t, model.UsageMetrics{PromptTokens: 21, ResponseTokens: 9}, reply.Usage)
}

func TestOpenAIProviderNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testutil.OpenAIEmptyChoicesJSON))
	}))
	defer srv.Close()

	reply, err := NewOpenAIProvider(srv.URL, "sk-test", "").Complete(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, model.NoResponseText, reply.Text)
	assert.Equal(t, model.UsageMetrics{}, reply.Usage)
}

func TestOpenAIProviderAPIError(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(testutil.OpenAIErrorJSON))
	}))
	defer srv.Close()

	_, err := NewOpenAIProvider(srv.URL, "sk-bad", "").Complete(context.Background(), "q")

	var provErr *model.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "Incorrect API key")
	assert.Equal(t, 1, hits, "requests are never retried")
}
