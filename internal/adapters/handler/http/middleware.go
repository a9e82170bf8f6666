package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type contextKey string

const UserKey contextKey = "user"

// bearerToken returns the credential of an "Authorization: Bearer <token>" header,
// or "" when the header is missing or uses another scheme.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth resolves the bearer token to a user and rejects the request otherwise.
func RequireAuth(auth ports.AuthService, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				writeError(r.Context(), w, logger, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}
