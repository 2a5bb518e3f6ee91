package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/ollama/ollama/api"

	"sportai/config"
	"sportai/model"
)

// DefaultTimeout bounds every HTTP exchange with the server.
const DefaultTimeout = 120 * time.Second

// Client talks to an Ollama server. The base URL is passed per call because
// the user may edit it at any time.
type Client struct {
	http *http.Client
}

// NewClient creates a client whose requests time out after timeout.
// A zero timeout selects DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// NormalizeBaseURL strips surrounding whitespace and a single trailing slash.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
}

// Generate sends a non-streaming generate request and returns the response text.
func (c *Client) Generate(ctx context.Context, baseURL, modelName, prompt string) (string, error) {
	base := NormalizeBaseURL(baseURL)

	body, err := json.Marshal(api.GenerateRequest{
		Model:  modelName,
		Prompt: prompt,
		Stream: func(b bool) *bool { return &b }(false),
	})
	if err != nil {
		return "", &model.ProviderError{Message: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/generate/", bytes.NewReader(body))
	if err != nil {
		return "", &model.ProviderError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var resp api.GenerateResponse
	if err := c.do(req, base, &resp); err != nil {
		return "", err
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Ollama] Generate with %s done=%v (%d chars)", modelName, resp.Done, len(resp.Response))
	}
	return resp.Response, nil
}

// ListModels returns the model names installed on the server in server order.
func (c *Client) ListModels(ctx context.Context, baseURL string) ([]string, error) {
	base := NormalizeBaseURL(baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/tags/", nil)
	if err != nil {
		return nil, &model.ProviderError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	var resp api.ListResponse
	if err := c.do(req, base, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Ping succeeds only when the bare base URL answers with HTTP 200.
func (c *Client) Ping(ctx context.Context, baseURL string) error {
	base := NormalizeBaseURL(baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base, nil)
	if err != nil {
		return &model.ProviderError{Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &model.ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &model.ProviderError{Message: fmt.Sprintf("Server responded with %d", resp.StatusCode)}
	}
	return nil
}

// do executes req and decodes a JSON body into out. Unknown fields are ignored.
func (c *Client) do(req *http.Request, base string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionFailure(err) {
			return &model.ConnectionFailedError{URL: base, Err: err}
		}
		return &model.ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.ProviderError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		statusErr := api.StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			statusErr.ErrorMessage = errBody.Error
		}
		return &model.ProviderError{Message: statusErr.Error()}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &model.ProviderError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// isConnectionFailure reports whether err means the server could not be reached at all.
func isConnectionFailure(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
