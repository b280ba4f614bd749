package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/duongle/go-shop-backend/pkg/metrics"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenVerifier validates a bearer credential and yields the user id it
// belongs to.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Authenticate requires a valid bearer token and puts the user id on the
// request context. Missing token → 401, failed verification → 403.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				respondError(w, http.StatusForbidden, "failed to authenticate token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userFromContext returns the authenticated user id. The second return is
// false only if the handler was mounted without Authenticate.
func userFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// RequestID tags every request with a unique id, echoed back in the
// X-Request-ID header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// Metrics records request counts and latency per route pattern.
func Metrics(m *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			m.Observe(route, ww.Status(), float64(time.Since(start).Milliseconds()))
		})
	}
}
