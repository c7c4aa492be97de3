package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	TokenID   string
	UserID    uuid.UUID
	Role      entity.UserRole
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// Generate issues a signed access token for the user.
	Generate(ctx context.Context, userID uuid.UUID, role entity.UserRole) (string, error)

	// Validate parses and verifies a token, including its revocation status.
	Validate(ctx context.Context, token string) (*TokenClaims, error)

	// Revoke invalidates a token for the remainder of its lifetime.
	Revoke(ctx context.Context, token string) error
}
