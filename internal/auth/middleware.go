package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
	"tcpworld-api/internal/utils"
)

type contextKey string

const userKey contextKey = "current_user"

// ExtractTokenFromRequest pulls the raw token out of an
// "Authorization: Bearer <token>" header.
func ExtractTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header format must be 'Bearer {token}'")
	}

	return parts[1], nil
}

// Middleware resolves the bearer token to a full user record and stores it
// in the request context. 401 on a missing/invalid/expired token or when
// the referenced user no longer exists.
func (s *Service) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, err := ExtractTokenFromRequest(r)
			if err != nil {
				utils.Error(w, apperr.New(apperr.Unauthorized, err.Error()))
				return
			}

			user, err := s.ResolveToken(r.Context(), rawToken)
			if err != nil {
				utils.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user placed by Middleware, or nil
// on routes that were not wrapped.
func CurrentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

// RequireAdmin gates admin-only routes. The switch is exhaustive over the
// role enum; unknown persisted values are refused rather than let through.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		if user == nil {
			utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
			return
		}
		switch user.Role {
		case models.RoleAdmin:
			next.ServeHTTP(w, r)
		case models.RoleAttendee, models.RoleSpeaker, models.RolePublic:
			utils.Error(w, apperr.New(apperr.Forbidden, "Admin access required"))
		default:
			utils.Error(w, apperr.New(apperr.Forbidden, "Admin access required"))
		}
	})
}
