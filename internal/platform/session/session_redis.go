package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard/internal/feature/auth/domain/entity"
	"taskboard/internal/feature/auth/usecase"
)

// RedisStore implements usecase.SessionStore on Redis. Expiry is handled
// by the key TTL, so expired sessions simply stop resolving.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// Compile-time check that RedisStore implements SessionStore.
var _ usecase.SessionStore = (*RedisStore)(nil)

// NewRedisStore creates a new RedisStore with the given key prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (s *RedisStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

// Create persists a new session with a TTL matching its expiry.
func (s *RedisStore) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	return s.client.Set(ctx, s.sessionKey(session.ID), data, ttl).Err()
}

// FindByID retrieves a session by its ID.
func (s *RedisStore) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete removes a session. A missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.sessionKey(id)).Err()
}
