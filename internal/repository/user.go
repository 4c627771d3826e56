package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations. Preference lists are
// stored as JSON columns alongside the user row.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// Emails carry a unique index; a duplicate insert returns ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	diet, ingredients, cuisines, err := marshalPreferenceColumns(user)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password_hash, diet_preferences, favorite_ingredients, favorite_cuisines)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordHash, diet, ingredients, cuisines)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByEmail retrieves a user by their email address. Emails are stored
// lowercased, so lookups are case-insensitive for callers that normalize.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := userSelect + ` WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := userSelect + ` WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// UpdatePreferences overwrites the stored preference columns for a user.
// Partial-merge semantics live in the service layer; the repository always
// writes all three lists.
func (r *UserRepository) UpdatePreferences(ctx context.Context, userID int64, prefs model.Preferences) error {
	diet, err := marshalList(prefs.DietPreferences)
	if err != nil {
		return err
	}
	ingredients, err := marshalList(prefs.FavoriteIngredients)
	if err != nil {
		return err
	}
	cuisines, err := marshalList(prefs.FavoriteCuisines)
	if err != nil {
		return err
	}

	query := `UPDATE users SET diet_preferences = ?, favorite_ingredients = ?, favorite_cuisines = ? WHERE id = ?`

	_, err = r.db.ExecContext(ctx, query, diet, ingredients, cuisines, userID)
	return err
}

const userSelect = `SELECT id, name, email, password_hash, diet_preferences, favorite_ingredients, favorite_cuisines, created_at, updated_at FROM users`

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var diet, ingredients, cuisines []byte

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&diet, &ingredients, &cuisines,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.DietPreferences, err = unmarshalList(diet); err != nil {
		return nil, err
	}
	if user.FavoriteIngredients, err = unmarshalList(ingredients); err != nil {
		return nil, err
	}
	if user.FavoriteCuisines, err = unmarshalList(cuisines); err != nil {
		return nil, err
	}

	return user, nil
}

func marshalPreferenceColumns(user *model.User) ([]byte, []byte, []byte, error) {
	diet, err := marshalList(user.DietPreferences)
	if err != nil {
		return nil, nil, nil, err
	}
	ingredients, err := marshalList(user.FavoriteIngredients)
	if err != nil {
		return nil, nil, nil, err
	}
	cuisines, err := marshalList(user.FavoriteCuisines)
	if err != nil {
		return nil, nil, nil, err
	}
	return diet, ingredients, cuisines, nil
}

// marshalList encodes a string list for a JSON column. Nil encodes as an
// empty array so the column is never SQL NULL.
func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

// unmarshalList decodes a JSON column into a string list. Empty or NULL
// columns decode to an empty list.
func unmarshalList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
