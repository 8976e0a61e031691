package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/pkg/logging"
)

// RequireSession sends visitors without a session to loginPath. Nothing of
// the protected page is rendered for them.
func RequireSession(sess session.Handle, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sess.IsLoggedIn() {
				logging.FromContext(r.Context()).Debug().Msg("No session, redirecting to login")
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TokenValidator reports whether a bearer token is currently valid.
type TokenValidator func(token string) bool

// BearerConfig holds bearer authentication configuration.
type BearerConfig struct {
	Validate    TokenValidator
	PublicPaths []string
}

// Bearer rejects requests outside PublicPaths whose Authorization header does
// not carry a valid token. Failures answer 401 with a JSON message body.
func Bearer(config BearerConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(config.PublicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearer(r)
			if token == "" || config.Validate == nil || !config.Validate(token) {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("token_provided", token != "").
					Msg("Authentication failed")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Jeton invalide ou absent"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearer accepts "Bearer <token>" as well as a raw token.
func extractBearer(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return auth
}
