package snapshots

import (
	"context"
	"errors"

	"github.com/lateladelgol/storefront-backend/pkg/redis"
)

// Store persists full client-state snapshots (cart, wishlist) as JSON
// blobs under fixed string keys. Concurrent writers to the same key are
// last-write-wins; the stored value must round-trip losslessly.
type Store interface {
	Load(ctx context.Context, kind, clientID string) ([]byte, bool, error)
	Save(ctx context.Context, kind, clientID string, data []byte) error
}

// RedisStore keeps snapshots in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the shared redis client.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

// Load fetches the snapshot blob; a miss is not an error.
func (s *RedisStore) Load(ctx context.Context, kind, clientID string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.client.SnapshotKey(kind, clientID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(raw), true, nil
}

// Save overwrites the snapshot blob. Snapshots never expire; the client
// owns their lifetime the way browser-local storage would.
func (s *RedisStore) Save(ctx context.Context, kind, clientID string, data []byte) error {
	return s.client.Set(ctx, s.client.SnapshotKey(kind, clientID), string(data), 0)
}
