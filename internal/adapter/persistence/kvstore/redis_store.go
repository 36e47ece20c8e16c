package kvstore

import (
	"context"
	"errors"

	"contractor_pro/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each storage key as a plain string under a prefix.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(rdb redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.redisKey(key), value, 0).Err()
}
