package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/clubvision/clubvision/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey ContextKey = "user_id"

	tokenPrefix = "user-"
)

// RequireUser validates the Authorization header and puts the user ID on the
// request context. Tokens are opaque "user-{id}" bearer strings issued by OTP
// verification.
// TODO: replace with signed tokens once the mobile app supports refresh.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		userID := parseToken(parts[1])
		if userID == 0 {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseToken extracts the user ID from a "user-{id}" token.
// Returns 0 for anything malformed.
func parseToken(token string) int64 {
	if !strings.HasPrefix(token, tokenPrefix) {
		return 0
	}

	userID, err := strconv.ParseInt(strings.TrimPrefix(token, tokenPrefix), 10, 64)
	if err != nil || userID <= 0 {
		return 0
	}
	return userID
}

// GetUserID extracts the user ID from the request context
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
