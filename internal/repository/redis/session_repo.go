package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const SessionKeyPrefix = "login:session"

// SessionRepository records issued session tokens so that logout revokes
// them server-side. Keys expire with the token.
type SessionRepository struct {
	Client *redis.Client
}

func (r *SessionRepository) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", SessionKeyPrefix, tokenID)
}

func (r *SessionRepository) Add(ctx context.Context, tokenID, username string, ttl time.Duration) error {
	if err := r.Client.Set(ctx, r.key(tokenID), username, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Lookup returns the username a live token was issued to.
func (r *SessionRepository) Lookup(ctx context.Context, tokenID string) (string, error) {
	username, err := r.Client.Get(ctx, r.key(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return username, nil
}

// Delete is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, tokenID string) error {
	if err := r.Client.Del(ctx, r.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (r *SessionRepository) Health(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}
