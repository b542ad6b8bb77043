package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-chat-service/internal/chat/repository"
	"ai-chat-service/internal/model"
)

const (
	// Redis key prefix for sessions
	sessionKeyPrefix = "session:"
	// Default TTL for session keys
	defaultTTL = 24 * time.Hour
)

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed session repository. Sessions are stored as one
// JSON record per key and expire after ttl of inactivity.
func New(client *redis.Client, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &sessionRepository{client: client, ttl: ttl}
}

// GetSession implements repository.SessionRepository.
// An unknown session id yields a fresh empty session, not an error.
// Refreshes TTL on every read.
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (model.Session, error) {
	key := r.key(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return model.Session{SessionID: sessionID}, nil
	}
	if err != nil {
		return model.Session{SessionID: sessionID}, fmt.Errorf("redis repository: failed to get session %s: %w", sessionID, err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return model.Session{SessionID: sessionID}, fmt.Errorf("redis repository: failed to unmarshal session %s: %w", sessionID, err)
	}

	// Best-effort TTL refresh on read
	_ = r.client.Expire(ctx, key, r.ttl).Err()

	return session, nil
}

// SaveSession implements repository.SessionRepository.
// Overwrites the full conversation and stamps a fresh LastUpdated.
func (r *sessionRepository) SaveSession(ctx context.Context, sessionID string, conversation []model.Turn) error {
	session := model.Session{
		SessionID:    sessionID,
		Conversation: conversation,
		LastUpdated:  time.Now(),
	}

	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis repository: failed to marshal session %s: %w", sessionID, err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis repository: failed to save session %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepository) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
