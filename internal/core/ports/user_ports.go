package ports

import (
	"context"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

// IdentityFinder is the lookup capability the auth core depends on.
type IdentityFinder interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type UserRepository interface {
	IdentityFinder
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}
