package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weathertrack/internal/cache"
)

// SessionTTL is the fixed lifetime of a session, set at login and not
// refreshed by later requests.
const SessionTTL = 30 * time.Minute

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a token is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore associates opaque client-held tokens with user ids. Entries
// expire after their TTL; Invalidate is idempotent.
type SessionStore interface {
	Create(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (uint, error)
	Invalidate(ctx context.Context, token string) error
}

// RedisSessionStore keeps sessions in Redis so they survive server restarts
// and can be shared between instances.
type RedisSessionStore struct {
	cache *cache.Client
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

type sessionData struct {
	UserID uint `json:"user_id"`
}

// Create stores the token with expiry handled by Redis.
func (s *RedisSessionStore) Create(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	payload, err := json.Marshal(sessionData{UserID: userID})
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+token, payload, ttl)
}

// Resolve returns the user id bound to token, or ErrSessionNotFound.
func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, ErrSessionNotFound
	}
	var sess sessionData
	if err := json.Unmarshal(data, &sess); err != nil {
		return 0, fmt.Errorf("unmarshal session data: %w", err)
	}
	return sess.UserID, nil
}

// Invalidate removes the token. Unknown tokens succeed silently.
func (s *RedisSessionStore) Invalidate(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
