package router

import (
	"net/http"

	"github.com/jbeshir/star-reviews/internal/domain"
)

// requireAuthMiddleware rejects requests that no auth validator accepted.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "unauthenticated request to moderation endpoint",
				"method", r.Method, "path", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
