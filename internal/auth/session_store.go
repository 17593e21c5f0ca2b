package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStore defines persistence of session state.
type SessionStore interface {
	// Load returns the stored session, or nil when it does not exist.
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON documents in Redis.
type RedisSessionStore struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store whose entries expire after ttl.
func NewRedisSessionStore(cache *cache.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionStore{cache: cache, ttl: ttl}
}

// Load retrieves a session. An unreadable entry is treated as missing.
func (s *RedisSessionStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, nil
	}
	sess.ID = id
	return &sess, nil
}

// Save writes the session and refreshes its TTL. When Login rotated the ID the
// old entry is removed.
func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+sess.ID, payload, s.ttl); err != nil {
		return err
	}
	if prev := sess.PreviousID(); prev != "" {
		return s.Delete(ctx, prev)
	}
	return nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}
