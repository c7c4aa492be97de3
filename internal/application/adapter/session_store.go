package adapter

import (
	"context"
	"time"
)

// SessionStore defines the interface for the revoked-token store.
type SessionStore interface {
	// RevokeToken marks a token ID as revoked for the given time to live.
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsTokenRevoked reports whether a token ID has been revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
