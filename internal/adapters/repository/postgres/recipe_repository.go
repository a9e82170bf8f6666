package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type recipeRepository struct {
	db *sql.DB
}

func NewRecipeRepository(db *sql.DB) ports.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

const recipeColumns = `r.id, r.title, r.instructions, r.author_id, r.image_name, r.gluten_free, r.low_carb, r.created_at, r.updated_at`

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe, ingredientIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryRecipe := `
		INSERT INTO recipes (title, instructions, author_id, image_name, gluten_free, low_carb)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, queryRecipe,
		recipe.Title, recipe.Instructions, recipe.AuthorID, recipe.ImageName, recipe.GlutenFree, recipe.LowCarb,
	).Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	if err := linkIngredients(ctx, tx, recipe.ID, ingredientIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func linkIngredients(ctx context.Context, tx *sql.Tx, recipeID int64, ingredientIDs []int64) error {
	if len(ingredientIDs) == 0 {
		return nil
	}

	queryLink := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
		SELECT $1, UNNEST($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, queryLink, recipeID, pq.Array(ingredientIDs)); err != nil {
		return fmt.Errorf("failed to link ingredients: %w", err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`

	var recipe domain.Recipe
	err := r.db.QueryRowContext(ctx, query, id).Scan(scanTargets(&recipe)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	ingredients, err := r.fetchIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients

	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, limit, offset int) ([]*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes r
		ORDER BY r.created_at, r.id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return r.scanRecipes(ctx, rows)
}

func (r *recipeRepository) Update(ctx context.Context, recipe *domain.Recipe, ingredientIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE recipes
		SET title = $1, instructions = $2, image_name = $3, gluten_free = $4, low_carb = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		recipe.Title, recipe.Instructions, recipe.ImageName, recipe.GlutenFree, recipe.LowCarb, recipe.ID,
	).Scan(&recipe.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	if ingredientIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("failed to unlink ingredients: %w", err)
		}
		if err := linkIngredients(ctx, tx, recipe.ID, ingredientIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return expectAffected(res)
}

// SearchByPreferences matches recipes with at least one liked ingredient and
// none of the disliked ones.
func (r *recipeRepository) SearchByPreferences(ctx context.Context, filter ports.PreferenceFilter, limit, offset int) ([]*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes r
		WHERE EXISTS (
			SELECT 1 FROM recipe_ingredients ri
			WHERE ri.recipe_id = r.id AND ri.ingredient_id = ANY($1::bigint[])
		)
		AND NOT EXISTS (
			SELECT 1 FROM recipe_ingredients ri
			WHERE ri.recipe_id = r.id AND ri.ingredient_id = ANY($2::bigint[])
		)
		AND ($3 = FALSE OR r.gluten_free)
		AND ($4 = FALSE OR r.low_carb)
		ORDER BY r.created_at, r.id
		LIMIT $5 OFFSET $6
	`
	rows, err := r.db.QueryContext(ctx, query,
		pq.Array(filter.Liked), pq.Array(filter.Disliked), filter.GlutenFree, filter.LowCarb, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return r.scanRecipes(ctx, rows)
}

func (r *recipeRepository) ListSaved(ctx context.Context, userID int64, limit, offset int) ([]*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes r
		JOIN saved_recipes s ON s.recipe_id = r.id
		WHERE s.user_id = $1
		ORDER BY s.saved_at, r.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	defer rows.Close()

	return r.scanRecipes(ctx, rows)
}

func scanTargets(recipe *domain.Recipe) []any {
	return []any{
		&recipe.ID, &recipe.Title, &recipe.Instructions, &recipe.AuthorID, &recipe.ImageName,
		&recipe.GlutenFree, &recipe.LowCarb, &recipe.CreatedAt, &recipe.UpdatedAt,
	}
}

func (r *recipeRepository) scanRecipes(ctx context.Context, rows *sql.Rows) ([]*domain.Recipe, error) {
	var recipes []*domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(scanTargets(&recipe)...); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}
	rows.Close()

	for _, recipe := range recipes {
		ingredients, err := r.fetchIngredients(ctx, recipe.ID)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
	}
	return recipes, nil
}

func (r *recipeRepository) fetchIngredients(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	query := `
		SELECT i.id, i.name, i.description, i.author_id, i.created_at
		FROM ingredients i
		JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
		WHERE ri.recipe_id = $1
		ORDER BY i.name
	`
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []domain.Ingredient{}
	for rows.Next() {
		var i domain.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.AuthorID, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}
	return ingredients, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
