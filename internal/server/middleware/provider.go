package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequireProvider rejects requests whose context carries no provider identity.
// Belt and suspenders behind Auth; also guards routes mounted without it.
func RequireProvider() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pid, ok := ProviderIDFromContext(r.Context())
			if !ok || pid == uuid.Nil {
				http.Error(w, `{"title":"Forbidden","status":403,"detail":"valid provider required"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
