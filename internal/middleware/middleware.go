package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ytfetch/internal/auth"
	"ytfetch/internal/utils/logger"
	"ytfetch/internal/utils/responses"
)

type contextKey string

const usernameKey contextKey = "username"

// WithUsername returns a context carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the authenticated username set by Auth.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func PanicMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", err),
				)
				responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type UserChecker interface {
	UserExists(ctx context.Context, username string) (bool, error)
}

// Auth validates the access token cookie and injects the username into the
// request context. Requests without a valid token get 401.
func Auth(tokens *auth.TokenManager, users UserChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.AccessTokenCookie)
			if err != nil {
				responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			username, err := tokens.ParseAccessToken(cookie.Value)
			if err != nil {
				responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			exists, err := users.UserExists(r.Context(), username)
			if err != nil {
				responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !exists {
				responses.DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}
