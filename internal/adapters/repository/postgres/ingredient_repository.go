package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type ingredientRepository struct {
	db *sql.DB
}

func NewIngredientRepository(db *sql.DB) ports.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, description, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, ingredient.Name, ingredient.Description, ingredient.AuthorID).
		Scan(&ingredient.ID, &ingredient.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ingredient: %w", err)
	}
	return nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	query := `SELECT id, name, description, author_id, created_at FROM ingredients WHERE id = $1`

	var i domain.Ingredient
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Name, &i.Description, &i.AuthorID, &i.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	return &i, nil
}

func (r *ingredientRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	query := `SELECT COUNT(*) FROM ingredients WHERE id = ANY($1::bigint[])`

	var count int
	if err := r.db.QueryRowContext(ctx, query, pq.Array(ids)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}
	return count, nil
}

func (r *ingredientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ingredient, error) {
	query := `
		SELECT id, name, description, author_id, created_at
		FROM ingredients
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*domain.Ingredient
	for rows.Next() {
		var i domain.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.AuthorID, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	query := `UPDATE ingredients SET name = $1, description = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, ingredient.Name, ingredient.Description, ingredient.ID)
	if err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	return expectAffected(res)
}

func (r *ingredientRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return expectAffected(res)
}
