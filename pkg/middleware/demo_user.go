package middleware

import (
	"net/http"

	"letterboxd/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DemoUser stands in for a session: every request acts as userName.
// It also tags the request with an id that is echoed in X-Request-ID.
func DemoUser(userName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := utils.SetUserContext(r.Context(), userName)
			ctx = utils.SetRequestIDContext(ctx, requestID)

			logger.Debug("Demo user attached",
				zap.String("user", userName),
				zap.String("request_id", requestID),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
