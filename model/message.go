package model

import "github.com/google/uuid"

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RevealState tracks the progressive display of a message's text.
type RevealState string

const (
	RevealPending   RevealState = "pending"
	RevealRevealing RevealState = "revealing"
	RevealComplete  RevealState = "complete"
)

// Message represents one transcript entry. Text is the final content;
// Visible is the prefix currently on screen while a reveal runs. A message
// that reached RevealComplete is never mutated again.
type Message struct {
	ID          string
	Role        Role
	Text        string
	Visible     string
	RevealState RevealState
}

// NewMessage creates a message with a fresh id. Messages created complete
// are fully visible from the start.
func NewMessage(role Role, text string, state RevealState) *Message {
	visible := ""
	if state == RevealComplete {
		visible = text
	}
	return &Message{
		ID:          uuid.New().String(),
		Role:        role,
		Text:        text,
		Visible:     visible,
		RevealState: state,
	}
}

// Suggestion is a follow-up prompt offered beside the transcript. It is
// regenerated each turn and never stored in the conversation.
type Suggestion struct {
	Label string
}
