package middleware

import (
	"net/http"
	"strings"

	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500. API routes get the JSON
// envelope, pages get plain text.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("PANIC recovered",
					zap.Any("error", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
					zap.Stack("stack"),
				)

				if strings.HasPrefix(r.URL.Path, "/api/") {
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
