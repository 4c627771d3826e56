package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-key", 2*time.Second), srv
}

func TestSearch_QueryParameters(t *testing.T) {
	var got url.Values
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[],"offset":0,"number":10,"totalResults":0}`))
	})
	defer srv.Close()

	_, err := client.Search(context.Background(), model.SearchParams{
		Query:              "pasta",
		Diet:               []string{"vegan", "glutenFree"},
		Cuisine:            "italian",
		MaxReadyTime:       30,
		IncludeIngredients: []string{"egg", "milk", "soy"},
		Sort:               model.SortPopularity,
		Offset:             20,
		Number:             5,
	})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	checks := map[string]string{
		"apiKey":             "test-key",
		"addRecipeNutrition": "true",
		"query":              "pasta",
		"diet":               "vegan,glutenFree",
		"cuisine":            "italian",
		"maxReadyTime":       "30",
		"includeIngredients": "egg,milk,soy",
		"sort":               "popularity",
		"offset":             "20",
		"number":             "5",
	}
	for key, want := range checks {
		if got.Get(key) != want {
			t.Errorf("query param %s = %q, want %q", key, got.Get(key), want)
		}
	}
}

func TestSearch_RelevanceSortOmitted(t *testing.T) {
	var got url.Values
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"results":[]}`))
	})
	defer srv.Close()

	_, err := client.Search(context.Background(), model.SearchParams{
		Cuisine: "thai",
		Sort:    model.SortRelevance,
	})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	if got.Has("sort") {
		t.Errorf("sort parameter must be omitted for relevance, got %q", got.Get("sort"))
	}
}

func TestSearch_DefaultPageSize(t *testing.T) {
	var got url.Values
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"results":[]}`))
	})
	defer srv.Close()

	if _, err := client.Search(context.Background(), model.SearchParams{}); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if got.Get("number") != "10" {
		t.Errorf("expected default page size 10, got %q", got.Get("number"))
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.Search(context.Background(), model.SearchParams{})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestSearch_NormalizesNilResults(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"offset":0,"number":10,"totalResults":0}`))
	})
	defer srv.Close()

	resp, err := client.Search(context.Background(), model.SearchParams{})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if resp.Results == nil {
		t.Error("expected non-nil empty results slice")
	}
}

func TestGetRecipe(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes/716429/information" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("includeNutrition") != "true" {
			t.Error("expected includeNutrition=true")
		}
		w.Write([]byte(`{"id":716429,"title":"Pasta","readyInMinutes":45,"servings":2}`))
	})
	defer srv.Close()

	detail, err := client.GetRecipe(context.Background(), 716429)
	if err != nil {
		t.Fatalf("GetRecipe() unexpected error: %v", err)
	}
	if detail.ID != 716429 || detail.Title != "Pasta" {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetRecipe(context.Background(), 999999)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "test-key", time.Second)
	_, err := client.Search(context.Background(), model.SearchParams{})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream for transport failure, got %v", err)
	}
}
