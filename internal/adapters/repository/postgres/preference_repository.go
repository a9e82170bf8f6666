package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

type preferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) ports.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

func (r *preferenceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Preference, error) {
	query := `
		SELECT id, user_id, ingredient_id, preference_type
		FROM preferences
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.ID, &p.UserID, &p.IngredientID, &p.Type); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferences: %w", err)
	}
	return prefs, nil
}

func (r *preferenceRepository) GetByID(ctx context.Context, id int64) (*domain.Preference, error) {
	query := `SELECT id, user_id, ingredient_id, preference_type FROM preferences WHERE id = $1`

	var p domain.Preference
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.IngredientID, &p.Type)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &p, nil
}

// Upsert keeps one preference per user and ingredient; a second call changes its type.
func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (user_id, ingredient_id, preference_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, ingredient_id) DO UPDATE
		SET preference_type = EXCLUDED.preference_type
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, pref.UserID, pref.IngredientID, pref.Type).Scan(&pref.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return expectAffected(res)
}
