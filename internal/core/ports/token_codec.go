package ports

import "github.com/issue-tracker/users-api/internal/core/domain"

// TokenCookieName is the cookie carrying the signed identity token.
const TokenCookieName = "token"

// TokenCodec signs and verifies identity tokens. The token payload is the
// user record with the password hash excluded.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	// Verify checks the signature and expiry and returns the embedded user
	// payload. The returned error message is safe to surface to clients.
	Verify(raw string) (*domain.User, error)
}
