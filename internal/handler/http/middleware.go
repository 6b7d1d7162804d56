package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/classboard/classboard/internal/auth"
	"github.com/classboard/classboard/internal/repository"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/logger"
)

type ctxKey int

const (
	claimsKey ctxKey = iota
	roleKey
)

// ClaimsFromContext returns the verified token claims, or nil when the
// request did not pass Authenticate.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// RoleFromContext returns the role name resolved by RequireRoles, or ""
// when no role check ran on this request.
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// Authenticate verifies the Authorization bearer token and stores the
// claims in the request context. An absent or malformed header is a 401;
// a token that fails verification is a 403.
func Authenticate(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeAppError(w, r, apperrors.TokenMissing())
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				writeAppError(w, r, apperrors.TokenMissing())
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				writeAppError(w, r, apperrors.TokenInvalid(err))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = logger.WithUserID(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles authorizes the request against an allow-list of role
// names. The role is re-resolved from the store on every request using
// the (role id, user id) pair from the token, so a stale or forged role
// claim never grants access. A store failure fails closed with a 500.
func RequireRoles(users repository.UserRepository, allowed ...string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || claims.RoleID == nil || claims.UserID == "" {
				writeAppError(w, r, apperrors.NoPermission())
				return
			}

			roleName, err := users.FindRoleForUser(r.Context(), *claims.RoleID, claims.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					writeAppError(w, r, apperrors.NoPermission())
					return
				}
				l := logger.FromContext(r.Context())
				l.ErrorContext(r.Context(), "role resolution failed",
					slog.String("user_id", claims.UserID),
					slog.String("error", err.Error()),
				)
				writeAppError(w, r, apperrors.PermissionCheck(err))
				return
			}

			if _, ok := allowedSet[roleName]; !ok {
				writeAppError(w, r, apperrors.NoPermission())
				return
			}

			ctx := context.WithValue(r.Context(), roleKey, roleName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if !strings.HasPrefix(ct, "application/json") {
				writeAppError(w, r, apperrors.InvalidInput("Content-Type must be application/json"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
