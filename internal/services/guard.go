package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/jwt"
	"github.com/jylee2/record-api/internal/logger"
)

// TokenVerifier defines the token parsing the guard delegates to.
type TokenVerifier interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthGuard resolves a bearer token to an authenticated user identity.
// It does not re-check that the user still exists in storage.
type AuthGuard struct {
	tokens TokenVerifier
}

// NewAuthGuard creates a new AuthGuard instance.
func NewAuthGuard(tokens TokenVerifier) *AuthGuard {
	return &AuthGuard{tokens: tokens}
}

// Authenticate verifies the token and returns the user id it carries.
// An empty token fails with ErrMissingToken; any verification failure
// fails with ErrInvalidToken.
func (g *AuthGuard) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrMissingToken
	}

	claims, err := g.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Errorw("token verification failed", "err", err)
		return uuid.Nil, ErrInvalidToken
	}

	return claims.UserID, nil
}
