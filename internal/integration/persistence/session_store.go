package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hexapixel/backend/internal/application/adapter"
)

// revokedTokenKeyPrefix namespaces revocation entries in redis.
const revokedTokenKeyPrefix = "revoked_token:"

// sessionStore implements the adapter.SessionStore interface on redis.
// Revocation entries expire together with the token they block, so the set
// never needs pruning.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new session store instance.
func NewSessionStore(client *redis.Client) adapter.SessionStore {
	return &sessionStore{
		client: client,
	}
}

// RevokeToken marks a token ID as revoked for the given lifetime.
func (s *sessionStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to block.
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token ID has been revoked.
func (s *sessionStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, revokedTokenKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}
