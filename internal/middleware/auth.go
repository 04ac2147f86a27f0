package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

type contextKey string

const contextKeySession contextKey = "session"

// Authenticate validates the bearer token and stores the explicit
// session identity in the request context. Services receive that
// session rather than reading any process-wide state.
func Authenticate(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Unauthorized(w, "Invalid token format, use: Bearer <token>")
				return
			}

			claims, err := utils.ValidateToken(parts[1], jwtSecret)
			if err != nil {
				response.Unauthorized(w, "Token invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeySession, claims.Session())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows the request through only for the listed roles.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "No session in request")
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You do not have access to this resource")
		})
	}
}

func SessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(contextKeySession).(model.Session)
	return session, ok
}
