package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/adityarizkyr/health-tracker/application/user"
	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (/register, /login, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomErrorWithMessage(constant.ErrAuthentication, "Authentication required"))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomErrorWithMessage(constant.ErrAuthentication, "Authentication required"))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}

	return false
}
