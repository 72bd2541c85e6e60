package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Keys persisted per session.
const (
	KeyCart        = "foodCourtCart"
	KeyUserType    = "userType"
	KeyUserName    = "userName"
	KeyDarkMode    = "darkMode"
	KeyAccessToken = "access_token"
	KeyUser        = "user"
)

func ReceiptKey(number string) string {
	return "receipt:" + number
}

// Store is a string key/value space partitioned by session id.
type Store interface {
	Get(ctx context.Context, sid, key string) (string, bool, error)
	// Set stores value under key. A zero ttl uses the store default.
	Set(ctx context.Context, sid, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, sid string, keys ...string) error
}

type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) key(sid, key string) string {
	return "session:" + sid + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, sid, key string) (string, bool, error) {
	value, err := s.Client.Get(ctx, s.key(sid, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = s.TTL
	}
	return s.Client.Set(ctx, s.key(sid, key), value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, s.key(sid, k))
	}
	return s.Client.Del(ctx, full...).Err()
}

var _ Store = (*RedisStore)(nil)
