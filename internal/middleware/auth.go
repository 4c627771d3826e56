package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/recipefinder/recipefinder-go/internal/crypto"
)

type contextKey string

const claimsKey contextKey = "claims"

// JWTAuth returns middleware that requires a valid Bearer token on the
// Authorization header. Verification is stateless; the user table is never
// consulted here.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, errMsg := claimsFromRequest(r, secret)
			if claims == nil {
				writeJSONError(w, http.StatusUnauthorized, errMsg)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuth returns middleware that attaches verified claims when a
// valid Bearer token is present and otherwise passes the request through
// anonymously. Used on search routes so logged-in users get personalized
// results without making login a requirement.
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, _ := claimsFromRequest(r, secret); claims != nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromRequest(r *http.Request, secret string) (*crypto.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Unauthorized: No token provided"
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return nil, "Unauthorized: No token provided"
	}

	claims, err := crypto.ValidateToken(token, secret)
	if err != nil {
		return nil, "Unauthorized: Invalid token"
	}

	return claims, ""
}

// ClaimsFromContext extracts the authenticated claims from the request context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

// UserIDFromContext extracts the authenticated user ID from the request
// context, returning 0 for anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.UserID
	}
	return 0
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
