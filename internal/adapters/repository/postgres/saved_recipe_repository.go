package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type savedRecipeRepository struct {
	db *sql.DB
}

func NewSavedRecipeRepository(db *sql.DB) ports.SavedRecipeRepository {
	return &savedRecipeRepository{
		db: db,
	}
}

func (r *savedRecipeRepository) IsSaved(ctx context.Context, userID, recipeID int64) (bool, error) {
	query := `SELECT 1 FROM saved_recipes WHERE user_id = $1 AND recipe_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check saved recipe: %w", err)
	}
	return true, nil
}

func (r *savedRecipeRepository) Save(ctx context.Context, userID, recipeID int64) error {
	query := `INSERT INTO saved_recipes (user_id, recipe_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySaved
		}
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

func (r *savedRecipeRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	query := `DELETE FROM saved_recipes WHERE user_id = $1 AND recipe_id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove saved recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotSaved
	}
	return nil
}
