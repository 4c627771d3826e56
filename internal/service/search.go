package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

// RecipeClient is the upstream recipe API contract the search service
// depends on. *spoonacular.Client satisfies it.
type RecipeClient interface {
	Search(ctx context.Context, params model.SearchParams) (*model.SearchResponse, error)
	GetRecipe(ctx context.Context, recipeID int64) (*model.RecipeDetail, error)
}

// SearchService composes stored user preferences into search requests and
// forwards them upstream.
type SearchService struct {
	recipes RecipeClient
	users   UserStore
}

// NewSearchService creates a new SearchService. users may be nil when no
// database is available; searches then run without personalization.
func NewSearchService(recipes RecipeClient, users UserStore) *SearchService {
	return &SearchService{recipes: recipes, users: users}
}

// Search runs a recipe search for the given user. userID 0 means anonymous.
// A failed preference lookup (for example a user deleted after token
// issuance) degrades to an unpersonalized search rather than failing.
func (s *SearchService) Search(ctx context.Context, params model.SearchParams, userID int64) (*model.SearchResponse, error) {
	effective := MergePreferences(params, s.loadPreferences(ctx, userID))
	return s.recipes.Search(ctx, effective)
}

// GetRecipe fetches the detail view of a single recipe.
func (s *SearchService) GetRecipe(ctx context.Context, recipeID int64) (*model.RecipeDetail, error) {
	return s.recipes.GetRecipe(ctx, recipeID)
}

func (s *SearchService) loadPreferences(ctx context.Context, userID int64) *model.Preferences {
	if userID == 0 || s.users == nil {
		return nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		slog.Warn("preference lookup failed, searching without personalization", "user_id", userID, "error", err)
		return nil
	}
	prefs := user.Preferences()
	return &prefs
}

// MergePreferences combines an explicit search request with a user's stored
// preferences. Explicitly set fields always win; only unset fields are
// filled in, and then conservatively: a single cuisine and at most three
// ingredients, to avoid over-constraining results. The sort is always
// derived from the merged filters, replacing any explicit value: "relevance"
// when any filter is active, "popularity" otherwise. The input is never
// mutated.
func MergePreferences(explicit model.SearchParams, prefs *model.Preferences) model.SearchParams {
	merged := explicit
	merged.Diet = slices.Clone(explicit.Diet)
	merged.IncludeIngredients = slices.Clone(explicit.IncludeIngredients)

	if prefs != nil {
		if len(merged.Diet) == 0 && len(prefs.DietPreferences) > 0 {
			merged.Diet = slices.Clone(prefs.DietPreferences)
		}
		if merged.Cuisine == "" && len(prefs.FavoriteCuisines) > 0 {
			merged.Cuisine = prefs.FavoriteCuisines[0]
		}
		if len(merged.IncludeIngredients) == 0 && len(prefs.FavoriteIngredients) > 0 {
			n := min(3, len(prefs.FavoriteIngredients))
			merged.IncludeIngredients = slices.Clone(prefs.FavoriteIngredients[:n])
		}
	}

	if len(merged.Diet) > 0 || merged.Cuisine != "" || len(merged.IncludeIngredients) > 0 {
		merged.Sort = model.SortRelevance
	} else {
		merged.Sort = model.SortPopularity
	}

	return merged
}
