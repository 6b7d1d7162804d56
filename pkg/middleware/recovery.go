package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/classboard/classboard/pkg/httputil"
)

// Recovery recovers from handler panics and returns a 500 instead of
// crashing the process.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					httputil.Fail(w, http.StatusInternalServerError, "SERVER_ERROR_INTERNAL")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
