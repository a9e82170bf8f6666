package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type ingredientService struct {
	repo ports.IngredientRepository
}

func NewIngredientService(repo ports.IngredientRepository) ports.IngredientService {
	return &ingredientService{
		repo: repo,
	}
}

func (s *ingredientService) Create(ctx context.Context, authorID int64, input ports.IngredientInput) (*domain.Ingredient, error) {
	input.Name = strings.TrimSpace(input.Name)
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ingredient := &domain.Ingredient{
		Name:        input.Name,
		Description: input.Description,
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ingredientService) ListIngredients(ctx context.Context, page int) (*domain.Page[*domain.Ingredient], error) {
	if page < 1 {
		page = 1
	}
	items, err := s.repo.List(ctx, domain.PageSize, domain.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return newPage(items, page), nil
}

func (s *ingredientService) Update(ctx context.Context, actorID, id int64, input ports.UpdateIngredientInput) (*domain.Ingredient, error) {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwner(ingredient, actorID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name: cannot be blank", domain.ErrValidation)
		}
		ingredient.Name = name
	}
	if input.Description != nil {
		ingredient.Description = *input.Description
	}

	if err := s.repo.Update(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *ingredientService) Delete(ctx context.Context, actorID, id int64) error {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := RequireOwner(ingredient, actorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
