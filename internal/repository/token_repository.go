package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenStore anchors refresh-token validity in Redis. A token is
// valid only while its ID maps to a user; rotation saves the new ID and
// deletes the old one, logout just deletes.
type RefreshTokenStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	UserID(ctx context.Context, tokenID string) (string, error)
	Delete(ctx context.Context, tokenID string) error
}

type refreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore returns a Redis-backed implementation.
func NewRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	return &refreshTokenStore{client: client}
}

func (s *refreshTokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+tokenID, userID, ttl).Err()
}

// UserID resolves the owning user, or "" when the token is unknown,
// expired or revoked.
func (s *refreshTokenStore) UserID(ctx context.Context, tokenID string) (string, error) {
	val, err := s.client.Get(ctx, refreshKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *refreshTokenStore) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, refreshKeyPrefix+tokenID).Err()
}
