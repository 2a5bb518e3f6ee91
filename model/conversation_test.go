package model

import (
	"errors"
	"testing"
)

func TestConversationSinglePlaceholder(t *testing.T) {
	c := NewConversation()

	idx, err := c.appendTurn("first")
	if err != nil {
		t.Fatalf("appendTurn: %v", err)
	}
	if idx != 2 {
		t.Fatalf("placeholder index = %d, want 2", idx)
	}
	if _, err := c.appendTurn("second"); err == nil {
		t.Fatal("expected error while placeholder is unresolved")
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	if !c.resolve(c.Generation(), idx, "answer") {
		t.Fatal("resolve returned false")
	}
	if _, ok := c.Pending(); ok {
		t.Error("placeholder still pending after resolve")
	}
	if reply, ok := c.LastReply(); !ok || reply != "answer" {
		t.Errorf("LastReply() = (%q, %v)", reply, ok)
	}
}

func TestConversationResolveRejectsStaleGeneration(t *testing.T) {
	c := NewConversation()
	gen := c.Generation()
	idx, _ := c.appendTurn("q")

	c.Reset()

	if c.resolve(gen, idx, "late") {
		t.Error("resolve accepted a result from before Reset")
	}
	if c.Len() != 1 || c.Messages()[0].Text != Greeting {
		t.Errorf("log changed after stale resolve: %+v", c.Messages())
	}
}

func TestConversationMessagesIsCopy(t *testing.T) {
	c := NewConversation()
	msgs := c.Messages()
	msgs[0].Text = "mutated"

	if c.Messages()[0].Text != Greeting {
		t.Error("Messages() exposed internal storage")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&MissingCredentialError{Provider: "Gemini"}, "Error: Gemini API Key is missing."},
		{&MissingConfigurationError{Field: FieldServerURL}, "Error: Ollama server URL is missing."},
		{&ConnectionFailedError{URL: "http://h:1"}, "Error: Could not connect to the Ollama server at http://h:1. Check the address and make sure your firewall allows the connection."},
		{&ProviderError{Message: "Server responded with 503"}, "Error: Server responded with 503"},
		{errors.New("dial tcp: timeout"), "Error: dial tcp: timeout"},
	}

	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%T) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestAsFailureKeepsWrappedType(t *testing.T) {
	inner := &ConnectionFailedError{URL: "http://h"}
	wrapped := errors.Join(errors.New("context"), inner)

	var connErr *ConnectionFailedError
	if !errors.As(AsFailure(wrapped), &connErr) {
		t.Errorf("AsFailure lost the connection failure: %T", AsFailure(wrapped))
	}
}
