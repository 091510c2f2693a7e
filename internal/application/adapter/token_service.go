// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_token_service.go -package=mocks -source=token_service.go TokenService

// TokenClaims represents the claims contained in a manager access token.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateManagerToken issues an access token for the property manager.
	GenerateManagerToken(ctx context.Context, email string) (string, time.Time, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
