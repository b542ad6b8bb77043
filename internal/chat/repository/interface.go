package repository

import (
	"context"

	"ai-chat-service/internal/model"
)

// SessionRepository is the key-value session store contract.
//
// GetSession never reports absence as an error: an unknown id yields a fresh
// session with an empty conversation under that id. Underlying store errors
// are returned; the use case degrades them to an empty session.
//
// SaveSession overwrites the full conversation and stamps LastUpdated.
type SessionRepository interface {
	GetSession(ctx context.Context, sessionID string) (model.Session, error)
	SaveSession(ctx context.Context, sessionID string, conversation []model.Turn) error
}
