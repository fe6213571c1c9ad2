package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fundslock/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	LoginKey  ContextKey = "login"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Middleware rejects requests without a valid bearer token and puts the
// caller identity into the request context.
func Middleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, LoginKey, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Caller returns the login put into ctx by Middleware.
func Caller(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginKey).(string)
	return login, ok && login != ""
}
