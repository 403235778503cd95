package middleware

import (
	"net/http"
	"time"

	"buslink/infras/otel"
	"buslink/shared/constant"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("user_agent", r.Header.Get(constant.RequestHeaderUserAgent)).
			Msg("request handled")
	})
}

// Tracing opens a span around the request so handler, service and repository
// scopes nest under it.
func Tracing(ot otel.Otel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, scope := ot.NewScope(r.Context(), "http", r.Method+" "+r.URL.Path)
			defer scope.End()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
