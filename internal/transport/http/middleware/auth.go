package middleware

import (
	"context"
	"net/http"
	"strings"

	"rms/internal/auth"
	"rms/internal/transport/http/api"
)

type UserContext struct {
	UserID string
	Role   string
}

// Auth attaches the authenticated user to the context when a valid bearer
// token is present. Requests without one pass through anonymously; handlers
// decide what requires a user.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, UserContext{
				UserID: claims.UserID,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}

// RequireApprover gates the approve/reject endpoints to managers and admins.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !auth.CanApprove(user.Role) {
			api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
