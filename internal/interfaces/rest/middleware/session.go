package middleware

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
)

const (
	SessionHeader     = "X-Session-Id"
	SessionQueryParam = "x-session-id"
)

// Session resolves the caller's session from the X-Session-Id header, falling
// back to the x-session-id query parameter, and binds it to the request context.
func Session(store application.SessionStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = r.URL.Query().Get(SessionQueryParam)
			}
			if sessionID == "" {
				rest.WriteError(w, application.NewUnauthorizedError("session id is required"), logger)
				return
			}

			session, err := store.GetSession(r.Context(), sessionID)
			if err != nil {
				if _, ok := application.IsServiceError(err); !ok {
					err = application.NewInternalError(err)
				}
				rest.WriteError(w, err, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(application.WithSession(r.Context(), session)))
		})
	}
}
