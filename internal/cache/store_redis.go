package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for cached upstream responses
	redisKeyPrefix = "pokedex:cache:"

	fieldValue    = "v"
	fieldStoredAt = "t"
)

// RedisStore is a Store shared by every instance of the service. Redis key
// expiry implements the GC time.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	vals, err := s.client.HMGet(ctx, redisKeyPrefix+key, fieldValue, fieldStoredAt).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return Entry{}, false, nil
	}
	value, _ := vals[0].(string)
	storedAtRaw, _ := vals[1].(string)
	nanos, err := strconv.ParseInt(storedAtRaw, 10, 64)
	if err != nil {
		// unreadable entry: treat as a miss so it gets refetched
		return Entry{}, false, nil
	}
	return Entry{Value: []byte(value), StoredAt: time.Unix(0, nanos)}, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	full := redisKeyPrefix + key
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, full,
			fieldValue, entry.Value,
			fieldStoredAt, strconv.FormatInt(entry.StoredAt.UnixNano(), 10),
		)
		pipe.Expire(ctx, full, ttl)
		return nil
	})
	return err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
