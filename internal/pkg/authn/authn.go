// Package authn verifies and issues HS256 access tokens carrying the
// backend user id in "sub" and the address in "email".
package authn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Claims are the access token claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIdentity implements contracts.IdentityProvider with a shared secret.
type JWTIdentity struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

var _ contracts.IdentityProvider = (*JWTIdentity)(nil)

// NewJWTIdentity creates a verifier/issuer. ttl applies to issued tokens only.
func NewJWTIdentity(secret string, ttl time.Duration, clk clock.Clock) (*JWTIdentity, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &JWTIdentity{secret: []byte(secret), ttl: ttl, clock: clk}, nil
}

// CurrentUser validates accessToken and returns its user.
func (j *JWTIdentity) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(accessToken, claims,
		func(*jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	return &domain.User{ID: claims.Subject, Email: claims.Email}, nil
}

// Issue signs a token for the user that expires after the configured ttl.
func (j *JWTIdentity) Issue(user *domain.User) (string, error) {
	now := j.clock.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
