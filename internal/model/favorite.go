package model

import "time"

// Favorite links a user to a recipe they have saved. At most one row exists
// per (user, recipe) pair.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddFavoriteRequest represents a request to save a recipe.
type AddFavoriteRequest struct {
	RecipeID int64 `json:"recipeId"`
}
