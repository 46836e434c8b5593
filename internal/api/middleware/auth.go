package middleware

import (
	"context"
	"net/http"

	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session"

// LoadUser resolves the session cookie into the request context. Requests
// without a valid session pass through unauthenticated; RequireUser is the
// gate for protected routes.
func LoadUser(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.ResolveSession(r.Context(), cookie.Value)
			if err != nil || user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
