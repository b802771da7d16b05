package api

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const timeoutBody = `{"success": false, "message": "request timeout"}`

// TimeoutMiddleware bounds how long a request may run. Websocket upgrades are
// passed through untouched because the timeout writer cannot be hijacked.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		bounded := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			bounded.ServeHTTP(w, r)
			if time.Since(start) >= timeout {
				zap.S().Warnw("Request timeout",
					"path", r.URL.Path,
					"method", r.Method,
					"timeout", timeout)
			}
		})
	}
}
