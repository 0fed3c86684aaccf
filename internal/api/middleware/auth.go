package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jneves25/barber-service/internal/access"
	"github.com/jneves25/barber-service/internal/api/handlers"
	"github.com/jneves25/barber-service/internal/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type contextKey string

const (
	userIDKey      contextKey = "userID"
	permissionsKey contextKey = "permissions"
)

// Auth проверяет X-User-ID и кладет в контекст пользователя и права его роли (X-User-Role)
func Auth(policy *access.Policy) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondUnauthorized(w, "отсутствует или некорректен заголовок X-User-ID")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, permissionsKey, policy.ForRole(r.Header.Get(HeaderUserRole)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetPermissions достает права пользователя из контекста.
// Без Auth возвращает проверку, которая отказывает во всем
func GetPermissions(ctx context.Context) domain.PermissionChecker {
	if checker, ok := ctx.Value(permissionsKey).(*access.Checker); ok {
		return checker
	}
	return domain.PermissionFunc(func(string) bool { return false })
}
