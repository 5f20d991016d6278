package pdfchat

import "time"

// Message roles for chat history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one entry in a chat session's history.
// History is held in memory per session and is not persisted.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
