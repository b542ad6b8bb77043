package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-chat-service/internal/chat/repository"
	"ai-chat-service/internal/model"
)

const (
	// Bounded capacity so a long-running dev process cannot grow unbounded
	defaultMaxSessions = 1024
	defaultTTL         = 24 * time.Hour
)

type sessionRepository struct {
	sessions *expirable.LRU[string, model.Session]
}

// New creates an in-memory session repository for development and tests.
// Sessions are evicted least-recently-used or after ttl of inactivity,
// mirroring the TTL behavior of the Redis driver.
func New(maxSessions int, ttl time.Duration) repository.SessionRepository {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &sessionRepository{
		sessions: expirable.NewLRU[string, model.Session](maxSessions, nil, ttl),
	}
}

// GetSession implements repository.SessionRepository.
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (model.Session, error) {
	session, ok := r.sessions.Get(sessionID)
	if !ok {
		return model.Session{SessionID: sessionID}, nil
	}
	// Copy the conversation so callers cannot mutate the stored slice
	conversation := make([]model.Turn, len(session.Conversation))
	copy(conversation, session.Conversation)
	session.Conversation = conversation
	return session, nil
}

// SaveSession implements repository.SessionRepository.
func (r *sessionRepository) SaveSession(ctx context.Context, sessionID string, conversation []model.Turn) error {
	stored := make([]model.Turn, len(conversation))
	copy(stored, conversation)

	r.sessions.Add(sessionID, model.Session{
		SessionID:    sessionID,
		Conversation: stored,
		LastUpdated:  time.Now(),
	})
	return nil
}
