package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

// TokenCodec issues and decodes signed access tokens. Decode never checks expiry.
type TokenCodec interface {
	Issue(subject int64) (string, error)
	Decode(token string) (*domain.Claims, error)
}

// PasswordHasher is the credential store: one-way salted hashes only.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// RevocationLedger marks tokens revoked until their natural expiry.
type RevocationLedger interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.AccessToken, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
