package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cezeus/club-api/internal/core/domain"
)

const resetTokenPrefix = "credential_reset:"

// ResetTokenStore keeps one-shot credential-reset tokens in Redis. Each token
// maps to the account email it was issued for and disappears on expiry or on
// first consumption, whichever comes first.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Issue(ctx context.Context, email string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, resetTokenPrefix+token, email, ttl).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// Consume atomically retrieves and deletes the token so it cannot be replayed.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, resetTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return email, nil
}
