package service

import (
	"context"
	"errors"

	"github.com/recipefinder/recipefinder-go/internal/model"
	"github.com/recipefinder/recipefinder-go/internal/repository"
)

var (
	ErrAlreadyFavorite  = errors.New("recipe is already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidRecipeID  = errors.New("invalid recipe ID")
)

// FavoriteStore is the persistence contract the favorite service depends on.
// *repository.FavoriteRepository satisfies it.
type FavoriteStore interface {
	Add(ctx context.Context, favorite *model.Favorite) error
	Get(ctx context.Context, userID, recipeID int64) (*model.Favorite, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
}

// FavoriteService handles favorite membership business logic.
type FavoriteService struct {
	store FavoriteStore
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Add saves a recipe for a user. The existence check runs before the insert;
// a racing concurrent add for the same pair instead trips the storage unique
// key, which maps to the same ErrAlreadyFavorite.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID int64) (*model.Favorite, error) {
	if recipeID <= 0 {
		return nil, ErrInvalidRecipeID
	}

	_, err := s.store.Get(ctx, userID, recipeID)
	if err == nil {
		return nil, ErrAlreadyFavorite
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, err
	}

	favorite := &model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.store.Add(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	return favorite, nil
}

// Remove deletes a saved recipe for a user.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID int64) error {
	if recipeID <= 0 {
		return ErrInvalidRecipeID
	}

	err := s.store.Remove(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

// List returns the recipe ids a user has saved, in insertion order.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]int64, error) {
	favorites, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipeIDs := make([]int64, len(favorites))
	for i, f := range favorites {
		recipeIDs[i] = f.RecipeID
	}
	return recipeIDs, nil
}
