package ports

import (
	"context"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *domain.Ingredient) error
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	// CountExisting returns how many of the given distinct ids exist.
	CountExisting(ctx context.Context, ids []int64) (int, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Ingredient, error)
	Update(ctx context.Context, ingredient *domain.Ingredient) error
	Delete(ctx context.Context, id int64) error
}

type IngredientInput struct {
	Name        string
	Description string
}

type UpdateIngredientInput struct {
	Name        *string
	Description *string
}

type IngredientService interface {
	Create(ctx context.Context, authorID int64, input IngredientInput) (*domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error)
	ListIngredients(ctx context.Context, page int) (*domain.Page[*domain.Ingredient], error)
	Update(ctx context.Context, actorID, id int64, input UpdateIngredientInput) (*domain.Ingredient, error)
	Delete(ctx context.Context, actorID, id int64) error
}
