package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

var (
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository handles favorite persistence operations. The favorites
// table carries a unique key on (user_id, recipe_id).
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts a favorite and sets the generated ID on the struct. A
// concurrent duplicate insert for the same (user, recipe) pair trips the
// unique key and returns ErrDuplicateFavorite.
func (r *FavoriteRepository) Add(ctx context.Context, favorite *model.Favorite) error {
	query := `INSERT INTO favorites (user_id, recipe_id) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, favorite.UserID, favorite.RecipeID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateFavorite
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	favorite.ID = id
	favorite.CreatedAt = time.Now().UTC()
	return nil
}

// Get retrieves a favorite by its (user, recipe) pair.
func (r *FavoriteRepository) Get(ctx context.Context, userID, recipeID int64) (*model.Favorite, error) {
	query := `SELECT id, user_id, recipe_id, created_at FROM favorites WHERE user_id = ? AND recipe_id = ?`

	favorite := &model.Favorite{}
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(
		&favorite.ID, &favorite.UserID, &favorite.RecipeID, &favorite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	return favorite, nil
}

// Remove deletes a favorite by its (user, recipe) pair.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListByUser retrieves all favorites for a user in insertion order.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	query := `SELECT id, user_id, recipe_id, created_at FROM favorites WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.RecipeID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}
