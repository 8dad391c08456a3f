package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const maxUpdateRetries = 10

// RedisStore persists records as plain string values under prefix+key.
type RedisStore struct {
	redis  *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		redis:  client,
		prefix: prefix,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.redis.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get record")
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.redis.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to set record")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete record")
	}
	return nil
}

// Update applies fn under WATCH so a concurrent writer forces a retry
// instead of silently overwriting.
func (s *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	fullKey := s.prefix + key

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Result()
		found := true
		if err == redis.Nil {
			found = false
		} else if err != nil {
			return errors.Wrap(err, "failed to read record")
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.redis.Watch(ctx, txf, fullKey)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return err
	}

	return ErrConflict
}
