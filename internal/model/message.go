package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one durable message of a conversation.
type Turn struct {
	ID        int64
	UserID    string
	Role      string // RoleUser or RoleAssistant
	Text      string
	CreatedAt time.Time
}

// Summary is the generated digest of a user's skills and preferences.
type Summary struct {
	ID        int64
	UserID    string
	Text      string
	CreatedAt time.Time
}
