package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"employee_management/internal/utils"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "session:"
	redisUserPrefix = "session-user:" // set of session ids per user
)

// RedisStore keeps sessions in Redis as JSON values with a TTL, plus a set of
// session ids per user
type RedisStore struct {
	rdb   *redis.Client
	cache *utils.Cache[Session]
}

// NewRedisStore returns a Store backed by rdb
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, cache: utils.NewCache[Session](rdb, redisKeyPrefix)}
}

func userKey(userID uint) string {
	return redisUserPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (r *RedisStore) Save(ctx context.Context, s Session, ttl time.Duration) error {
	if err := r.cache.Set(ctx, s.ID, s, ttl); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	// The index expires with the user's latest session
	until := time.Now().Add(ttl)
	if s.ExpiresAt.After(until) {
		until = s.ExpiresAt
	}
	key := userKey(s.UserID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, s.ID)
		pipe.ExpireAt(ctx, key, until)
		return nil
	})
	if err != nil {
		return fmt.Errorf("indexing session: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (Session, error) {
	s, found, err := r.cache.Get(ctx, id)
	if err != nil {
		return Session{}, fmt.Errorf("loading session: %w", err)
	}
	if !found {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *RedisStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ok, err := r.cache.Touch(ctx, id, ttl)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *RedisStore) DeleteByUser(ctx context.Context, userID uint) error {
	key := userKey(userID)
	ids, err := r.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("listing sessions of user %d: %w", userID, err)
	}
	keys := []string{key}
	for _, id := range ids {
		keys = append(keys, redisKeyPrefix+id)
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting sessions of user %d: %w", userID, err)
	}
	return nil
}
