package middleware

import (
	"net/http"
	"strings"

	"shopswift-be/internal/session"
)

// CORS allows the storefront front end at origin to call the API with
// credentials.
func CORS(origin string) func(http.Handler) http.Handler {
	allowHeaders := strings.Join([]string{
		"Content-Type", "Authorization", "X-Request-ID",
	}, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Expose-Headers", session.HeaderToken+", X-Request-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
