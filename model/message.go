package model

// Greeting is the opening AI message of every conversation.
const Greeting = "Hello! I am your **Advanced Sport AI Analyst**. Select a service and provide the necessary info to get started."

// ChatMessage represents a single entry in the conversation log
type ChatMessage struct {
	Text    string
	IsUser  bool
	Sources []string // Reserved for citations, currently never populated
}

// IsPlaceholder reports whether the message is an unresolved AI reply.
func (m ChatMessage) IsPlaceholder() bool {
	return !m.IsUser && m.Text == ""
}
