package auth

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

// MemorySessionStore keeps sessions in process memory. Used when no Redis
// address is configured; sessions are lost on restart, which is acceptable
// for a single-instance deployment.
type MemorySessionStore struct {
	cache *bigcache.BigCache
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an in-memory store whose entries expire after
// ttl. The per-call TTL passed to Create is ignored: bigcache applies one
// life window to the whole cache, so construct the store with SessionTTL.
func NewMemorySessionStore(ttl time.Duration) (*MemorySessionStore, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}
	return &MemorySessionStore{cache: cache}, nil
}

// Create stores the token.
func (s *MemorySessionStore) Create(ctx context.Context, token string, userID uint, _ time.Duration) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(userID))
	return s.cache.Set(token, buf)
}

// Resolve returns the user id bound to token, or ErrSessionNotFound.
func (s *MemorySessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	buf, err := s.cache.Get(token)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}
	if len(buf) != 8 {
		return 0, ErrSessionNotFound
	}
	return uint(binary.BigEndian.Uint64(buf)), nil
}

// Invalidate removes the token. Unknown tokens succeed silently.
func (s *MemorySessionStore) Invalidate(ctx context.Context, token string) error {
	err := s.cache.Delete(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}
