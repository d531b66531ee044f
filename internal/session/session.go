// Package session issues and checks the opaque tokens clients present in
// X-Token. Tokens live in Redis and expire through Redis TTLs.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"filesmanager/internal/model"
)

// TTL is the lifetime of a session. Validation never extends it.
const TTL = 24 * time.Hour

const keyPrefix = "auth_"

// ErrInvalidToken means the token is empty, unknown, revoked or expired.
var ErrInvalidToken = errors.New("invalid session token")

// Store is the session lifecycle.
type Store interface {
	Issue(ctx context.Context, userID string) (*model.Session, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// RedisStore keeps token -> user id associations in Redis.
type RedisStore struct {
	client redis.Cmdable
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func key(token string) string {
	return keyPrefix + token
}

// Issue creates a random token for userID. A colliding key is overwritten.
func (s *RedisStore) Issue(ctx context.Context, userID string) (*model.Session, error) {
	token := uuid.NewString()
	if err := s.client.SetEx(ctx, key(token), userID, TTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &model.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(TTL),
	}, nil
}

// Validate resolves token to its user id.
func (s *RedisStore) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	userID, err := s.client.Get(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("lookup session: %w", err)
	}
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Revoke deletes the token. Unknown tokens are ignored.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
