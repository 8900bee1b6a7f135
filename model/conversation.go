package model

// Conversation is the append-only, chronologically ordered transcript for
// one widget instance. Messages are never reordered or deleted.
type Conversation struct {
	messages []*Message
}

// Append adds a message to the end of the transcript.
func (c *Conversation) Append(m *Message) {
	c.messages = append(c.messages, m)
}

// Len reports the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the most recent message, or nil for an empty transcript.
func (c *Conversation) Last() *Message {
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// ByID returns the message with the given id, or nil.
func (c *Conversation) ByID(id string) *Message {
	for _, m := range c.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Snapshot returns a value copy of the transcript in insertion order,
// safe for the UI to render without touching live state.
func (c *Conversation) Snapshot() []Message {
	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = *m
	}
	return out
}
