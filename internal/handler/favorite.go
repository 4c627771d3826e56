package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/recipefinder/recipefinder-go/internal/middleware"
	"github.com/recipefinder/recipefinder-go/internal/model"
	"github.com/recipefinder/recipefinder-go/internal/service"
)

// FavoriteHandler handles HTTP requests for favorite recipes. All routes are
// scoped to the authenticated user from the request context.
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: svc}
}

// HandleList handles GET /api/favorites requests. The response is the list
// of saved recipe ids in insertion order.
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized: No token provided"))
		return
	}

	recipeIDs, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("favorites fetch failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to fetch favorites"))
		return
	}

	if recipeIDs == nil {
		recipeIDs = []int64{}
	}
	writeJSON(w, http.StatusOK, recipeIDs)
}

// HandleAdd handles POST /api/favorites requests.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized: No token provided"))
		return
	}

	var req model.AddFavoriteRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	favorite, err := h.service.Add(r.Context(), userID, req.RecipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID):
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid recipe ID"))
		case errors.Is(err, service.ErrAlreadyFavorite):
			writeJSON(w, http.StatusBadRequest, errorResponse("Recipe is already in favorites"))
		default:
			slog.Error("favorite add failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to add favorite"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, favorite)
}

// HandleRemove handles DELETE /api/favorites/{recipeID} requests.
func (h *FavoriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized: No token provided"))
		return
	}

	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid recipe ID"))
		return
	}

	err = h.service.Remove(r.Context(), userID, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID):
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid recipe ID"))
		case errors.Is(err, service.ErrFavoriteNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Favorite not found"))
		default:
			slog.Error("favorite remove failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to remove favorite"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
