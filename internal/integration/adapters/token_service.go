// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parsonage/property-ops/internal/application/adapter"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
)

const (
	// managerSubject is the subject of every token issued to the property manager.
	managerSubject = "manager"

	tokenTypeAccess = "access"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret       []byte
	issuer       string
	expiry       time.Duration
	managerEmail string
	clock        adapter.Clock
}

// NewTokenService creates a new token service instance. When managerEmail is set, only tokens
// minted for that address validate.
func NewTokenService(secret, issuer string, expiry time.Duration, managerEmail string, clock adapter.Clock) adapter.TokenService {
	return &tokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		expiry:       expiry,
		managerEmail: managerEmail,
		clock:        clock,
	}
}

// GenerateManagerToken issues an access token for the property manager.
func (s *tokenService) GenerateManagerToken(_ context.Context, email string) (string, time.Time, error) {
	if s.managerEmail != "" && !strings.EqualFold(email, s.managerEmail) {
		return "", time.Time{}, domainerror.ErrNotManager
	}

	now := s.clock.Now().UTC()
	expiresAt := now.Add(s.expiry)
	claims := CustomClaims{
		Email:     email,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   managerSubject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess || claims.Subject != managerSubject {
		return nil, domainerror.ErrInvalidToken
	}
	if s.managerEmail != "" && !strings.EqualFold(claims.Email, s.managerEmail) {
		return nil, domainerror.ErrNotManager
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, errors.Join(domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}
