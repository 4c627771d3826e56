package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/recipefinder/recipefinder-go/internal/config"
	"github.com/recipefinder/recipefinder-go/internal/handler"
	"github.com/recipefinder/recipefinder-go/internal/middleware"
	"github.com/recipefinder/recipefinder-go/internal/repository"
	"github.com/recipefinder/recipefinder-go/internal/service"
	"github.com/recipefinder/recipefinder-go/internal/spoonacular"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	recipeClient := spoonacular.NewClient(cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey, cfg.UpstreamTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Initialize DB and account routes if the database is available. Search
	// still works without it, just unpersonalized.
	connector := repository.NewConnector(cfg.DatabaseDSN)
	defer connector.Close()

	var userRepo *repository.UserRepository

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := connector.Get(ctx)
	cancel()
	if err != nil {
		slog.Warn("database connection failed — account routes disabled", "error", err)
	} else {
		userRepo = repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		favoriteRepo := repository.NewFavoriteRepository(db)
		favoriteService := service.NewFavoriteService(favoriteRepo)
		favoriteHandler := handler.NewFavoriteHandler(favoriteService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/auth/register", authHandler.HandleRegister)
			r.Post("/api/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/user/profile", authHandler.HandleProfile)
			r.Patch("/api/user/preferences", authHandler.HandleUpdatePreferences)

			r.Get("/api/favorites", favoriteHandler.HandleList)
			r.Post("/api/favorites", favoriteHandler.HandleAdd)
			r.Delete("/api/favorites/{recipeID}", favoriteHandler.HandleRemove)
		})
	}

	// userRepo is nil without a database; searches then skip personalization.
	var userStore service.UserStore
	if userRepo != nil {
		userStore = userRepo
	}
	searchService := service.NewSearchService(recipeClient, userStore)
	recommendService := service.NewRecommendService(searchService)
	recipeHandler := handler.NewRecipeHandler(searchService, recommendService)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Get("/api/recipes/search", recipeHandler.HandleSearch)
		r.Get("/api/recipes/recommendations", recipeHandler.HandleRecommendations)
	})
	r.Get("/api/recipes/{recipeID}", recipeHandler.HandleGetRecipe)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
