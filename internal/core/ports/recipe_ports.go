package ports

import (
	"context"
	"io"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
)

type RecipeRepository interface {
	// Create stores the recipe and links it to ingredientIDs in one transaction.
	Create(ctx context.Context, recipe *domain.Recipe, ingredientIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Recipe, error)
	// Update writes the scalar fields; a nil ingredientIDs keeps the current links.
	Update(ctx context.Context, recipe *domain.Recipe, ingredientIDs []int64) error
	Delete(ctx context.Context, id int64) error
	SearchByPreferences(ctx context.Context, filter PreferenceFilter, limit, offset int) ([]*domain.Recipe, error)
	ListSaved(ctx context.Context, userID int64, limit, offset int) ([]*domain.Recipe, error)
}

type PreferenceFilter struct {
	Liked      []int64
	Disliked   []int64
	GlutenFree bool
	LowCarb    bool
}

type CreateRecipeInput struct {
	Title         string
	Instructions  string
	IngredientIDs []int64
	GlutenFree    bool
	LowCarb       bool
}

type UpdateRecipeInput struct {
	Title         *string
	Instructions  *string
	IngredientIDs *[]int64
	GlutenFree    *bool
	LowCarb       *bool
}

type UploadImageInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type SearchByPreferencesInput struct {
	GlutenFree bool
	LowCarb    bool
	Page       int
}

type RecipeService interface {
	Create(ctx context.Context, authorID int64, input CreateRecipeInput) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, page int) (*domain.Page[*domain.Recipe], error)
	Update(ctx context.Context, actorID, id int64, input UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, actorID, id int64) error
	SetImage(ctx context.Context, actorID, id int64, input UploadImageInput) (*domain.Recipe, error)
	ImageURL(ctx context.Context, id int64) (*domain.RecipeImage, error)
	SearchByPreferences(ctx context.Context, userID int64, input SearchByPreferencesInput) (*domain.Page[*domain.Recipe], error)
}

// ImageStore keeps recipe images as opaque objects addressed by key.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
}
