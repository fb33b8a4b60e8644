package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a 500
// Internal Server Error response. It logs the panic with a stack trace but
// does not expose internal details to clients.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(r.Context())

				slog.ErrorContext(r.Context(), "panic recovered in handler",
					"panic", rec,
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"detail": "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
