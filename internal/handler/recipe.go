package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/recipefinder/recipefinder-go/internal/middleware"
	"github.com/recipefinder/recipefinder-go/internal/model"
	"github.com/recipefinder/recipefinder-go/internal/service"
	"github.com/recipefinder/recipefinder-go/internal/spoonacular"
)

// RecipeHandler handles HTTP requests for recipe search, detail, and
// recommendations. These routes accept anonymous requests; a valid Bearer
// token makes results preference-aware.
type RecipeHandler struct {
	search    *service.SearchService
	recommend *service.RecommendService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(search *service.SearchService, recommend *service.RecommendService) *RecipeHandler {
	return &RecipeHandler{search: search, recommend: recommend}
}

// HandleSearch handles GET /api/recipes/search requests. Multi-valued query
// parameters (diet, includeIngredients) are comma-separated.
func (h *RecipeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	resp, err := h.search.Search(r.Context(), params, userID)
	if err != nil {
		h.writeUpstreamError(w, err, "recipe search failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetRecipe handles GET /api/recipes/{recipeID} requests.
func (h *RecipeHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil || recipeID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid recipe ID"))
		return
	}

	detail, err := h.search.GetRecipe(r.Context(), recipeID)
	if err != nil {
		if errors.Is(err, spoonacular.ErrRecipeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Recipe not found"))
			return
		}
		h.writeUpstreamError(w, err, "recipe detail fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// HandleRecommendations handles GET /api/recipes/recommendations requests.
func (h *RecipeHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	resp, err := h.recommend.Recommend(r.Context(), userID)
	if err != nil {
		h.writeUpstreamError(w, err, "recommendations fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *RecipeHandler) writeUpstreamError(w http.ResponseWriter, err error, logMsg string) {
	slog.Error(logMsg, "error", err)
	if errors.Is(err, spoonacular.ErrUpstream) {
		writeJSON(w, http.StatusBadGateway, errorResponse("Recipe service is unavailable"))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func parseSearchParams(r *http.Request) (model.SearchParams, error) {
	q := r.URL.Query()
	params := model.SearchParams{
		Query:              q.Get("query"),
		Diet:               splitList(q.Get("diet")),
		Cuisine:            q.Get("cuisine"),
		IncludeIngredients: splitList(q.Get("includeIngredients")),
		Sort:               model.SortOption(q.Get("sort")),
	}

	var err error
	if params.MaxReadyTime, err = parseIntParam(q.Get("maxReadyTime"), "maxReadyTime"); err != nil {
		return model.SearchParams{}, err
	}
	if params.Offset, err = parseIntParam(q.Get("offset"), "offset"); err != nil {
		return model.SearchParams{}, err
	}
	if params.Number, err = parseIntParam(q.Get("number"), "number"); err != nil {
		return model.SearchParams{}, err
	}

	return params, nil
}

// splitList parses a comma-separated query parameter, dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

func parseIntParam(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return n, nil
}
