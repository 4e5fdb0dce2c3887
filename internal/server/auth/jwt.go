// Package auth mints and verifies caller identity tokens and carries the
// verified identity through a request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signly/internal/common"
	"github.com/dmitrijs2005/signly/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the account the token speaks for.
type Claims struct {
	jwt.RegisteredClaims
	Account string `json:"account"`
}

// GenerateToken signs an HS256 token for account valid for validityDuration.
func GenerateToken(account models.Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	if account == "" {
		return "", fmt.Errorf("%w: empty account", common.ErrInvalidToken)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(account),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Account: string(account),
	})

	return token.SignedString(secretKey)
}

// GetAccountFromToken verifies tokenString and returns its account.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// verification yields common.ErrInvalidToken.
func GetAccountFromToken(tokenString string, secretKey []byte) (models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Account == "" {
		return "", common.ErrInvalidToken
	}

	return models.Identity(claims.Account), nil
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the verified caller identity.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(models.Identity)
	return id, ok && id != ""
}
