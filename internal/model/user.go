package model

import "time"

// User represents a user in the database.
type User struct {
	ID                  int64
	Name                string
	Email               string
	PasswordHash        string
	DietPreferences     []string
	FavoriteIngredients []string
	FavoriteCuisines    []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Preferences holds the preference fields a user can store to personalize search.
type Preferences struct {
	DietPreferences     []string `json:"dietPreferences"`
	FavoriteIngredients []string `json:"favoriteIngredients"`
	FavoriteCuisines    []string `json:"favoriteCuisines"`
}

// Preferences returns the user's stored preference fields.
func (u *User) Preferences() Preferences {
	return Preferences{
		DietPreferences:     u.DietPreferences,
		FavoriteIngredients: u.FavoriteIngredients,
		FavoriteCuisines:    u.FavoriteCuisines,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePreferencesRequest represents a partial preferences update.
// Nil fields are left untouched; empty slices clear the stored list.
type UpdatePreferencesRequest struct {
	DietPreferences     *[]string `json:"dietPreferences"`
	FavoriteIngredients *[]string `json:"favoriteIngredients"`
	FavoriteCuisines    *[]string `json:"favoriteCuisines"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	DietPreferences     []string  `json:"dietPreferences"`
	FavoriteIngredients []string  `json:"favoriteIngredients"`
	FavoriteCuisines    []string  `json:"favoriteCuisines"`
	CreatedAt           time.Time `json:"createdAt"`
}

// AuthResponse represents a successful login response.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// NewUserResponse converts a User to its API-safe representation.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		DietPreferences:     emptyIfNil(u.DietPreferences),
		FavoriteIngredients: emptyIfNil(u.FavoriteIngredients),
		FavoriteCuisines:    emptyIfNil(u.FavoriteCuisines),
		CreatedAt:           u.CreatedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
