package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/recipefinder/recipefinder-go/internal/crypto"
	"github.com/recipefinder/recipefinder-go/internal/model"
	"github.com/recipefinder/recipefinder-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// emailPattern accepts anything of the shape local@domain.tld. Real
// validation happens when mail is actually sent; this only rejects obvious
// garbage.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the persistence contract the auth service depends on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePreferences(ctx context.Context, userID int64, prefs model.Preferences) error
}

// AuthService handles registration, login, and profile business logic.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with empty preference fields and
// returns its id. Emails are lowercased so uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	if err := validateRegistration(req); err != nil {
		return 0, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Name:                req.Name,
		Email:               strings.ToLower(req.Email),
		PasswordHash:        hash,
		DietPreferences:     []string{},
		FavoriteIngredients: []string{},
		FavoriteCuisines:    []string{},
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	return user.ID, nil
}

// Login authenticates credentials and returns a session token response.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if err := validateLogin(req); err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.store.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Name, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    model.NewUserResponse(user),
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// UpdatePreferences merges the provided fields into the user's stored
// preferences. Nil fields are left untouched; provided lists are trimmed and
// de-duplicated case-insensitively, preserving first-occurrence order.
func (s *AuthService) UpdatePreferences(ctx context.Context, userID int64, req model.UpdatePreferencesRequest) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	prefs := user.Preferences()
	if req.DietPreferences != nil {
		prefs.DietPreferences = normalizeList(*req.DietPreferences)
	}
	if req.FavoriteIngredients != nil {
		prefs.FavoriteIngredients = normalizeList(*req.FavoriteIngredients)
	}
	if req.FavoriteCuisines != nil {
		prefs.FavoriteCuisines = normalizeList(*req.FavoriteCuisines)
	}

	if err := s.store.UpdatePreferences(ctx, userID, prefs); err != nil {
		return model.UserResponse{}, err
	}

	user.DietPreferences = prefs.DietPreferences
	user.FavoriteIngredients = prefs.FavoriteIngredients
	user.FavoriteCuisines = prefs.FavoriteCuisines

	return model.NewUserResponse(user), nil
}

func validateRegistration(req model.RegisterRequest) error {
	verr := &model.ValidationError{}
	if len(req.Name) < 3 {
		verr.Add("name", "Name must be at least 3 characters long")
	}
	if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Invalid email address")
	}
	if len(req.Password) < 6 {
		verr.Add("password", "Password must be at least 6 characters long")
	}
	return verr.OrNil()
}

func validateLogin(req model.LoginRequest) error {
	verr := &model.ValidationError{}
	if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Invalid email address")
	}
	if req.Password == "" {
		verr.Add("password", "Password is required")
	}
	return verr.OrNil()
}

// normalizeList trims entries, drops empties, and de-duplicates
// case-insensitively while preserving first-occurrence order.
func normalizeList(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, entry := range list {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key := strings.ToLower(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}
