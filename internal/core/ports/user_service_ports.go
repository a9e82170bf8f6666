package ports

import (
	"context"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

type SetPreferenceInput struct {
	IngredientID int64
	Type         domain.PreferenceType
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Preferences(ctx context.Context, userID int64) ([]domain.Preference, error)
	SetPreference(ctx context.Context, userID int64, input SetPreferenceInput) error
	DeletePreference(ctx context.Context, userID, preferenceID int64) error
	SavedRecipes(ctx context.Context, userID int64, page int) (*domain.Page[*domain.Recipe], error)
	SaveRecipe(ctx context.Context, userID, recipeID int64) error
	UnsaveRecipe(ctx context.Context, userID, recipeID int64) error
}
