package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/service"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userKey contextKey = "user"

// Auth requires a valid bearer token and stores the re-resolved user in
// the request context. Handlers behind it never run unauthenticated.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header")
				return
			}

			user, err := authService.Authenticate(r.Context(), parts[1])
			if err != nil {
				logrus.WithError(err).Debug("bearer authentication failed")
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stored by Auth.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
