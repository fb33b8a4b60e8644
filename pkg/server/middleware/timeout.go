package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// TimeoutMiddleware enforces a per-request timeout using context.WithTimeout.
// If the timeout is exceeded, the request context is cancelled and a 504
// Gateway Timeout response is returned. A zero timeout disables the deadline.
//
// The timeout applies to the entire request pipeline including upstream
// provider calls. Handlers should check context.Done() to detect cancellation.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(w, r.WithContext(ctx))
			}()

			select {
			case <-done:
				return

			case <-ctx.Done():
				if ctx.Err() != context.DeadlineExceeded {
					return
				}

				slog.Warn("request timed out",
					"request_id", GetRequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"timeout", timeout.String(),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusGatewayTimeout)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"detail": "request timed out",
				})
			}
		})
	}
}
