package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/finboard/finboard/internal/application"
	"github.com/finboard/finboard/internal/application/auth"
	"github.com/finboard/finboard/internal/interfaces/rest"
)

type contextKey string

const identityKey contextKey = "session_identity"

// RequireSession rejects requests without a valid session cookie and puts the
// verified identity on the request context.
func RequireSession(cookieName string, tokens *auth.TokenIssuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				rest.WriteError(w, application.NewUnauthorizedError(), logger)
				return
			}

			identity, err := tokens.ParseSession(cookie.Value)
			if err != nil {
				logger.Debug("session rejected", "path", r.URL.Path, "error", err)
				rest.WriteError(w, application.NewUnauthorizedError(), logger)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity RequireSession attached, if any.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
