// Package spoonacular is a minimal client for the Spoonacular recipe API,
// covering the complex search and recipe information endpoints this
// application uses. Requests are single attempts with a client timeout; no
// retries.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUpstream       = errors.New("upstream recipe API request failed")
)

// Client calls the upstream recipe API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client for the given base URL and API key. The timeout
// bounds every upstream call.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Search performs a complex recipe search with the given parameters.
// Multi-valued filters are comma-joined; the sort parameter is omitted when
// its value is "relevance" because the upstream treats that as no explicit
// sort.
func (c *Client) Search(ctx context.Context, params model.SearchParams) (*model.SearchResponse, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("addRecipeNutrition", "true")
	q.Set("query", params.Query)
	if len(params.Diet) > 0 {
		q.Set("diet", strings.Join(params.Diet, ","))
	}
	if params.Cuisine != "" {
		q.Set("cuisine", params.Cuisine)
	}
	if params.MaxReadyTime > 0 {
		q.Set("maxReadyTime", strconv.Itoa(params.MaxReadyTime))
	}
	if len(params.IncludeIngredients) > 0 {
		q.Set("includeIngredients", strings.Join(params.IncludeIngredients, ","))
	}
	if params.Sort != "" && params.Sort != model.SortRelevance {
		q.Set("sort", string(params.Sort))
	}
	q.Set("offset", strconv.Itoa(params.Offset))
	number := params.Number
	if number <= 0 {
		number = 10
	}
	q.Set("number", strconv.Itoa(number))

	var resp model.SearchResponse
	if err := c.get(ctx, "/recipes/complexSearch", q, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []model.RecipeSummary{}
	}
	return &resp, nil
}

// GetRecipe fetches the full detail of a single recipe. A 404-class upstream
// response maps to ErrRecipeNotFound.
func (c *Client) GetRecipe(ctx context.Context, recipeID int64) (*model.RecipeDetail, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("includeNutrition", "true")

	var detail model.RecipeDetail
	path := fmt.Sprintf("/recipes/%d/information", recipeID)
	if err := c.get(ctx, path, q, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrRecipeNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}
