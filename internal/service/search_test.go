package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

func TestMergePreferences_NoPrefs(t *testing.T) {
	explicit := model.SearchParams{Query: "soup"}

	merged := MergePreferences(explicit, nil)

	if merged.Query != "soup" {
		t.Errorf("expected query 'soup', got %q", merged.Query)
	}
	if len(merged.Diet) != 0 || merged.Cuisine != "" || len(merged.IncludeIngredients) != 0 {
		t.Errorf("expected filter fields unset, got %+v", merged)
	}
	if merged.Sort != model.SortPopularity {
		t.Errorf("expected sort %q, got %q", model.SortPopularity, merged.Sort)
	}
}

func TestMergePreferences_FillsUnsetFields(t *testing.T) {
	prefs := &model.Preferences{
		DietPreferences:     []string{"vegan"},
		FavoriteCuisines:    []string{"italian", "thai"},
		FavoriteIngredients: []string{"egg", "milk", "soy", "rice"},
	}

	merged := MergePreferences(model.SearchParams{}, prefs)

	if !reflect.DeepEqual(merged.Diet, []string{"vegan"}) {
		t.Errorf("expected diet [vegan], got %v", merged.Diet)
	}
	if merged.Cuisine != "italian" {
		t.Errorf("expected first favorite cuisine 'italian', got %q", merged.Cuisine)
	}
	if !reflect.DeepEqual(merged.IncludeIngredients, []string{"egg", "milk", "soy"}) {
		t.Errorf("expected first 3 ingredients, got %v", merged.IncludeIngredients)
	}
	if merged.Sort != model.SortRelevance {
		t.Errorf("expected sort %q, got %q", model.SortRelevance, merged.Sort)
	}
}

func TestMergePreferences_ExplicitDietWins(t *testing.T) {
	explicit := model.SearchParams{Diet: []string{"glutenFree"}}
	prefs := &model.Preferences{DietPreferences: []string{"vegan", "vegetarian"}}

	merged := MergePreferences(explicit, prefs)

	if !reflect.DeepEqual(merged.Diet, []string{"glutenFree"}) {
		t.Errorf("explicit diet must never be overwritten, got %v", merged.Diet)
	}
}

func TestMergePreferences_ExplicitCuisineWins(t *testing.T) {
	explicit := model.SearchParams{Cuisine: "mexican"}
	prefs := &model.Preferences{
		DietPreferences:     []string{"vegan"},
		FavoriteCuisines:    []string{"italian", "thai"},
		FavoriteIngredients: []string{"egg", "milk", "soy", "rice"},
	}

	merged := MergePreferences(explicit, prefs)

	if merged.Cuisine != "mexican" {
		t.Errorf("explicit cuisine must stay 'mexican', got %q", merged.Cuisine)
	}
	// Other unset fields still adopt from preferences.
	if !reflect.DeepEqual(merged.Diet, []string{"vegan"}) {
		t.Errorf("expected diet adopted from preferences, got %v", merged.Diet)
	}
	if !reflect.DeepEqual(merged.IncludeIngredients, []string{"egg", "milk", "soy"}) {
		t.Errorf("expected ingredients adopted from preferences, got %v", merged.IncludeIngredients)
	}
}

func TestMergePreferences_SingleCuisineNarrowing(t *testing.T) {
	prefs := &model.Preferences{FavoriteCuisines: []string{"japanese", "korean", "indian"}}

	merged := MergePreferences(model.SearchParams{}, prefs)

	if merged.Cuisine != "japanese" {
		t.Errorf("expected exactly the first favorite cuisine, got %q", merged.Cuisine)
	}
}

func TestMergePreferences_IngredientCapPreservesOrder(t *testing.T) {
	prefs := &model.Preferences{
		FavoriteIngredients: []string{"basil", "tomato", "garlic", "onion", "pepper"},
	}

	merged := MergePreferences(model.SearchParams{}, prefs)

	want := []string{"basil", "tomato", "garlic"}
	if !reflect.DeepEqual(merged.IncludeIngredients, want) {
		t.Errorf("expected %v, got %v", want, merged.IncludeIngredients)
	}
}

func TestMergePreferences_SortDerivationOverridesExplicit(t *testing.T) {
	// Current behavior: the derivation replaces an explicit sort choice.
	explicit := model.SearchParams{Sort: model.SortTime}

	merged := MergePreferences(explicit, nil)
	if merged.Sort != model.SortPopularity {
		t.Errorf("expected derived sort %q, got %q", model.SortPopularity, merged.Sort)
	}

	merged = MergePreferences(model.SearchParams{Sort: model.SortTime, Cuisine: "thai"}, nil)
	if merged.Sort != model.SortRelevance {
		t.Errorf("expected derived sort %q, got %q", model.SortRelevance, merged.Sort)
	}
}

func TestMergePreferences_DoesNotMutateInput(t *testing.T) {
	explicit := model.SearchParams{Diet: []string{"vegan"}}
	prefs := &model.Preferences{FavoriteIngredients: []string{"egg", "milk"}}

	merged := MergePreferences(explicit, prefs)
	merged.Diet[0] = "changed"
	merged.IncludeIngredients[0] = "changed"

	if explicit.Diet[0] != "vegan" {
		t.Error("merge must not share the explicit diet slice")
	}
	if prefs.FavoriteIngredients[0] != "egg" {
		t.Error("merge must not share the preference ingredient slice")
	}
	if explicit.Sort != "" {
		t.Error("merge must not mutate the input params")
	}
}

type fakeRecipeClient struct {
	lastSearch model.SearchParams
	searchResp *model.SearchResponse
	searchErr  error
	detailResp *model.RecipeDetail
	detailErr  error
}

func (f *fakeRecipeClient) Search(ctx context.Context, params model.SearchParams) (*model.SearchResponse, error) {
	f.lastSearch = params
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResp, nil
}

func (f *fakeRecipeClient) GetRecipe(ctx context.Context, recipeID int64) (*model.RecipeDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detailResp, nil
}

func TestSearchService_AnonymousSkipsPersonalization(t *testing.T) {
	client := &fakeRecipeClient{searchResp: &model.SearchResponse{}}
	svc := NewSearchService(client, nil)

	_, err := svc.Search(context.Background(), model.SearchParams{Query: "pasta"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastSearch.Sort != model.SortPopularity {
		t.Errorf("anonymous search should sort by popularity, got %q", client.lastSearch.Sort)
	}
	if len(client.lastSearch.Diet) != 0 {
		t.Errorf("anonymous search should carry no diet filter, got %v", client.lastSearch.Diet)
	}
}

func TestSearchService_AppliesStoredPreferences(t *testing.T) {
	store := newFakeUserStore()
	user := &model.User{
		Name:                "Ada",
		Email:               "ada@example.com",
		DietPreferences:     []string{"vegan"},
		FavoriteCuisines:    []string{"italian", "thai"},
		FavoriteIngredients: []string{"egg", "milk", "soy", "rice"},
	}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	client := &fakeRecipeClient{searchResp: &model.SearchResponse{}}
	svc := NewSearchService(client, store)

	_, err := svc.Search(context.Background(), model.SearchParams{}, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := client.lastSearch
	if !reflect.DeepEqual(got.Diet, []string{"vegan"}) || got.Cuisine != "italian" ||
		!reflect.DeepEqual(got.IncludeIngredients, []string{"egg", "milk", "soy"}) ||
		got.Sort != model.SortRelevance {
		t.Errorf("unexpected effective request: %+v", got)
	}
}

func TestSearchService_UnknownUserDegradesToAnonymous(t *testing.T) {
	client := &fakeRecipeClient{searchResp: &model.SearchResponse{}}
	svc := NewSearchService(client, newFakeUserStore())

	_, err := svc.Search(context.Background(), model.SearchParams{}, 999)
	if err != nil {
		t.Fatalf("expected degraded search to succeed, got %v", err)
	}
	if client.lastSearch.Sort != model.SortPopularity {
		t.Errorf("expected unpersonalized search, got %+v", client.lastSearch)
	}
}

func TestRecommendService_UsesPreferencesOnly(t *testing.T) {
	store := newFakeUserStore()
	user := &model.User{
		Name:             "Ada",
		Email:            "ada@example.com",
		FavoriteCuisines: []string{"thai"},
	}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	client := &fakeRecipeClient{searchResp: &model.SearchResponse{}}
	svc := NewRecommendService(NewSearchService(client, store))

	_, err := svc.Recommend(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastSearch.Number != recommendationPageSize {
		t.Errorf("expected page size %d, got %d", recommendationPageSize, client.lastSearch.Number)
	}
	if client.lastSearch.Cuisine != "thai" || client.lastSearch.Sort != model.SortRelevance {
		t.Errorf("expected preference-driven request, got %+v", client.lastSearch)
	}
}
