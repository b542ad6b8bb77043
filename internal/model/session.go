package model

import "time"

// Role tags one side of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message within a conversation. Immutable once
// created.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the persisted conversation state keyed by an opaque identifier.
// The JSON tags are the at-rest record layout and must not change without a
// store migration. After a successful turn Conversation always has an even
// length (matched user/assistant pairs).
type Session struct {
	SessionID    string    `json:"sessionId"`
	Conversation []Turn    `json:"conversation"`
	LastUpdated  time.Time `json:"lastUpdated"`
}
