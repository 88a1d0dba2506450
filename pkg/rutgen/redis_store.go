package rutgen

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// DefaultKey is the Redis set used when no key is configured.
const DefaultKey = "rut:issued"

// RedisStore keeps reservations as members of a Redis set, keyed by the
// bare notation of each RUT.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey sets the Redis key of the reservation set.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTTL expires the whole reservation set ttl after the latest reservation.
// Zero keeps it until Reset.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = max(ttl, 0) }
}

// NewRedisStore returns a Store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the Redis key of the reservation set.
func (s *RedisStore) Key() string { return s.key }

func (s *RedisStore) Reserve(ctx context.Context, r rut.RUT) (bool, error) {
	var added *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		added = p.SAdd(ctx, s.key, r.String())
		if s.ttl > 0 {
			p.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}
	return added.Val() == 1, nil
}

func (s *RedisStore) Release(ctx context.Context, r rut.RUT) error {
	if err := s.client.SRem(ctx, s.key, r.String()).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

// Len returns the number of reservations held.
func (s *RedisStore) Len(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, s.key).Result()
	if err != nil {
		return 0, errors.Join(ErrStore, err)
	}
	return n, nil
}
