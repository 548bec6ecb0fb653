package middleware

import (
	"net/http"

	"classhub/internal/session"
)

// RequireAuth guards a route behind a resolved identity. Requests
// without one are redirected to the login page and the wrapped handler
// never runs. There is only one access tier, so the check is presence,
// not role.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Resolve(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
