package model

import "fmt"

// Conversation is the in-memory chat log.
//
// The log is append-only except for one operation: the AI placeholder inserted
// by a submission is replaced in place once its result arrives. At most one
// placeholder exists at a time and it is always the tail entry when created.
//
// Reset bumps the generation counter so that a result belonging to a log that
// has since been discarded is dropped instead of overwriting an unrelated entry.
type Conversation struct {
	messages   []ChatMessage
	pending    int // index of the unresolved placeholder, -1 when none
	generation uint64
}

// NewConversation returns a log holding only the greeting.
func NewConversation() *Conversation {
	c := &Conversation{}
	c.Reset()
	return c
}

// Reset replaces the log with the greeting message.
func (c *Conversation) Reset() {
	c.messages = []ChatMessage{{Text: Greeting, IsUser: false}}
	c.pending = -1
	c.generation++
}

// Messages returns a copy of the log for rendering.
func (c *Conversation) Messages() []ChatMessage {
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the log.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Pending returns the placeholder index, if one is outstanding.
func (c *Conversation) Pending() (int, bool) {
	return c.pending, c.pending >= 0
}

// Generation identifies the current incarnation of the log.
func (c *Conversation) Generation() uint64 {
	return c.generation
}

// LastReply returns the text of the most recent resolved AI message.
func (c *Conversation) LastReply() (string, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		msg := c.messages[i]
		if !msg.IsUser && msg.Text != "" {
			return msg.Text, true
		}
	}
	return "", false
}

// appendTurn appends the user message followed by an empty AI placeholder and
// returns the placeholder index.
func (c *Conversation) appendTurn(query string) (int, error) {
	if c.pending >= 0 {
		return -1, fmt.Errorf("placeholder at index %d is still unresolved", c.pending)
	}

	c.messages = append(c.messages,
		ChatMessage{Text: query, IsUser: true},
		ChatMessage{Text: "", IsUser: false},
	)
	c.pending = len(c.messages) - 1
	return c.pending, nil
}

// resolve replaces the placeholder at index with text. It reports false when
// the placeholder no longer exists (the log was reset in the meantime).
func (c *Conversation) resolve(generation uint64, index int, text string) bool {
	if generation != c.generation || index != c.pending {
		return false
	}
	if index < 0 || index >= len(c.messages) {
		return false
	}

	c.messages[index].Text = text
	c.pending = -1
	return true
}
