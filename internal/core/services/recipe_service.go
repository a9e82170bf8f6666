package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type recipeService struct {
	recipes     ports.RecipeRepository
	ingredients ports.IngredientRepository
	preferences ports.PreferenceRepository
	images      ports.ImageStore
	logger      logging.Logger
}

func NewRecipeService(
	recipes ports.RecipeRepository,
	ingredients ports.IngredientRepository,
	preferences ports.PreferenceRepository,
	images ports.ImageStore,
	logger logging.Logger,
) ports.RecipeService {
	return &recipeService{
		recipes:     recipes,
		ingredients: ingredients,
		preferences: preferences,
		images:      images,
		logger:      logger.With("component", "recipes"),
	}
}

func (s *recipeService) Create(ctx context.Context, authorID int64, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&input.Instructions, validation.Required),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ids, err := s.checkIngredients(ctx, input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &domain.Recipe{
		Title:        input.Title,
		Instructions: input.Instructions,
		AuthorID:     authorID,
		GlutenFree:   input.GlutenFree,
		LowCarb:      input.LowCarb,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.recipes.Create(ctx, recipe, ids); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return s.recipes.GetByID(ctx, recipe.ID)
}

func (s *recipeService) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) ListRecipes(ctx context.Context, page int) (*domain.Page[*domain.Recipe], error) {
	if page < 1 {
		page = 1
	}
	recipes, err := s.recipes.List(ctx, domain.PageSize, domain.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return newPage(recipes, page), nil
}

func (s *recipeService) Update(ctx context.Context, actorID, id int64, input ports.UpdateRecipeInput) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwner(recipe, actorID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title: cannot be blank", domain.ErrValidation)
		}
		recipe.Title = *input.Title
	}
	if input.Instructions != nil {
		if strings.TrimSpace(*input.Instructions) == "" {
			return nil, fmt.Errorf("%w: instructions: cannot be blank", domain.ErrValidation)
		}
		recipe.Instructions = *input.Instructions
	}
	if input.GlutenFree != nil {
		recipe.GlutenFree = *input.GlutenFree
	}
	if input.LowCarb != nil {
		recipe.LowCarb = *input.LowCarb
	}

	var ids []int64
	if input.IngredientIDs != nil {
		ids, err = s.checkIngredients(ctx, *input.IngredientIDs)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []int64{}
		}
	}

	recipe.UpdatedAt = time.Now()
	if err := s.recipes.Update(ctx, recipe, ids); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, actorID, id int64) error {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := RequireOwner(recipe, actorID); err != nil {
		return err
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if recipe.ImageName != nil {
		s.removeImage(ctx, *recipe.ImageName)
	}
	return nil
}

func (s *recipeService) SetImage(ctx context.Context, actorID, id int64, input ports.UploadImageInput) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwner(recipe, actorID); err != nil {
		return nil, err
	}

	key := uuid.NewString() + strings.ToLower(path.Ext(input.Filename))
	if err := s.images.Put(ctx, key, input.ContentType, input.Content); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	previous := recipe.ImageName
	recipe.ImageName = &key
	recipe.UpdatedAt = time.Now()
	if err := s.recipes.Update(ctx, recipe, nil); err != nil {
		s.removeImage(ctx, key)
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if previous != nil {
		s.removeImage(ctx, *previous)
	}

	return recipe, nil
}

func (s *recipeService) ImageURL(ctx context.Context, id int64) (*domain.RecipeImage, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.ImageName == nil {
		return nil, fmt.Errorf("%w: recipe has no image", domain.ErrNotFound)
	}

	url, err := s.images.URL(ctx, *recipe.ImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to sign image url: %w", err)
	}

	return &domain.RecipeImage{ID: recipe.ID, ImageURL: url}, nil
}

func (s *recipeService) SearchByPreferences(ctx context.Context, userID int64, input ports.SearchByPreferencesInput) (*domain.Page[*domain.Recipe], error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	prefs, err := s.preferences.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	filter := ports.PreferenceFilter{GlutenFree: input.GlutenFree, LowCarb: input.LowCarb}
	for _, p := range prefs {
		switch p.Type {
		case domain.PreferenceLike:
			filter.Liked = append(filter.Liked, p.IngredientID)
		case domain.PreferenceDislike, domain.PreferenceAllergy:
			filter.Disliked = append(filter.Disliked, p.IngredientID)
		}
	}

	if len(filter.Liked) == 0 {
		return newPage([]*domain.Recipe{}, page), nil
	}

	recipes, err := s.recipes.SearchByPreferences(ctx, filter, domain.PageSize, domain.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return newPage(recipes, page), nil
}

// checkIngredients deduplicates ids and fails unless every one of them exists.
func (s *recipeService) checkIngredients(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	count, err := s.ingredients.CountExisting(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to check ingredients: %w", err)
	}
	if count != len(unique) {
		return nil, domain.ErrInvalidIngredients
	}
	return unique, nil
}

func (s *recipeService) removeImage(ctx context.Context, key string) {
	if err := s.images.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "failed to delete recipe image", "key", key, "error", err)
	}
}
