package ports

import (
	"context"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

type PreferenceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Preference, error)
	GetByID(ctx context.Context, id int64) (*domain.Preference, error)
	Upsert(ctx context.Context, pref *domain.Preference) error
	Delete(ctx context.Context, id int64) error
}

type SavedRecipeRepository interface {
	IsSaved(ctx context.Context, userID, recipeID int64) (bool, error)
	Save(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
}
