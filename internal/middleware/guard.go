package middleware

import (
	"net/http"

	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"

	"go.uber.org/zap"
)

const loginPath = "/login"

// RequireAuth lets any logged-in role through and sends everyone else to the
// login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole redirects anonymous requests to the login page and answers 403
// when the session role is not one of roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			if !s.Authenticated() {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			if !s.HasRole(roles...) {
				logger.FromCtx(r.Context()).Warn("role denied",
					zap.String("path", r.URL.Path),
					zap.String("role", s.Role.String()),
				)
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
