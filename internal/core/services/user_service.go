package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type userService struct {
	users       ports.UserRepository
	hasher      ports.PasswordHasher
	preferences ports.PreferenceRepository
	saved       ports.SavedRecipeRepository
	recipes     ports.RecipeRepository
	ingredients ports.IngredientRepository
}

func NewUserService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	preferences ports.PreferenceRepository,
	saved ports.SavedRecipeRepository,
	recipes ports.RecipeRepository,
	ingredients ports.IngredientRepository,
) ports.UserService {
	return &userService{
		users:       users,
		hasher:      hasher,
		preferences: preferences,
		saved:       saved,
		recipes:     recipes,
		ingredients: ingredients,
	}
}

func validateRegister(input *ports.RegisterInput) error {
	return validation.ValidateStruct(input,
		validation.Field(&input.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&input.Email, validation.Required, is.Email),
		validation.Field(&input.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&input.Password, validation.Required, validation.Length(4, 0)),
	)
}

func (s *userService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := validateRegister(&input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	exists, err := s.users.Exists(ctx, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrIdentityNotFound
	}
	return user, nil
}

func (s *userService) Preferences(ctx context.Context, userID int64) ([]domain.Preference, error) {
	prefs, err := s.preferences.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	if prefs == nil {
		prefs = []domain.Preference{}
	}
	return prefs, nil
}

func (s *userService) SetPreference(ctx context.Context, userID int64, input ports.SetPreferenceInput) error {
	if !input.Type.Valid() {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidPreference)
	}

	if _, err := s.ingredients.GetByID(ctx, input.IngredientID); err != nil {
		return err
	}

	pref := &domain.Preference{
		UserID:       userID,
		IngredientID: input.IngredientID,
		Type:         input.Type,
	}
	if err := s.preferences.Upsert(ctx, pref); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

func (s *userService) DeletePreference(ctx context.Context, userID, preferenceID int64) error {
	pref, err := s.preferences.GetByID(ctx, preferenceID)
	if err != nil {
		return err
	}
	if err := RequireOwner(pref, userID); err != nil {
		return err
	}
	return s.preferences.Delete(ctx, preferenceID)
}

func (s *userService) SavedRecipes(ctx context.Context, userID int64, page int) (*domain.Page[*domain.Recipe], error) {
	if page < 1 {
		page = 1
	}
	recipes, err := s.recipes.ListSaved(ctx, userID, domain.PageSize, domain.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return newPage(recipes, page), nil
}

func (s *userService) SaveRecipe(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}

	saved, err := s.saved.IsSaved(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check saved recipe: %w", err)
	}
	if saved {
		return domain.ErrAlreadySaved
	}

	if err := s.saved.Save(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

func (s *userService) UnsaveRecipe(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}

	saved, err := s.saved.IsSaved(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check saved recipe: %w", err)
	}
	if !saved {
		return domain.ErrNotSaved
	}

	return s.saved.Remove(ctx, userID, recipeID)
}

func newPage[T any](items []T, page int) *domain.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{Items: items, Page: page, Size: domain.PageSize}
}
