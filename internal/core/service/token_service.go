package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// TokenService implements the identity token codec with HS256 JWTs.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// tokenPayload mirrors domain.User minus the password hash. The payload is
// nested under a "payload" claim so the token shape stays independent of the
// registered claim names.
type tokenPayload struct {
	ID            string          `json:"id"`
	DisplayedName string          `json:"displayedName"`
	Email         string          `json:"email"`
	Roles         []domain.RoleId `json:"roles"`
}

type tokenClaims struct {
	Payload tokenPayload `json:"payload"`
	jwt.RegisteredClaims
}

// Issue serializes user (password excluded) into a signed token string.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	claims := tokenClaims{
		Payload: tokenPayload{
			ID:            user.ID,
			DisplayedName: user.DisplayedName,
			Email:         user.Email,
			Roles:         user.Roles,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user payload.
func (s *TokenService) Verify(raw string) (*domain.User, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}

	return &domain.User{
		ID:            claims.Payload.ID,
		DisplayedName: claims.Payload.DisplayedName,
		Email:         claims.Payload.Email,
		Roles:         claims.Payload.Roles,
	}, nil
}
