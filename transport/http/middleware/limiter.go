package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"buslink/config"
	"buslink/shared/constant"
	"buslink/shared/failure"
	"buslink/transport/http/response"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter implements a fixed-window limit per client IP backed by redis,
// so the count holds across instances.
type RateLimiter struct {
	client *redis.Client
	config *config.Config
}

func NewRateLimiter(client *redis.Client, cfg *config.Config) *RateLimiter {
	return &RateLimiter{client: client, config: cfg}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxRequests := l.config.App.RateLimiter.MaxRequests
		window := time.Duration(l.config.App.RateLimiter.WindowSeconds) * time.Second

		key := "rate_limit:" + clientIP(r)

		count, err := l.client.Incr(r.Context(), key).Result()
		if err != nil {
			log.Error().Err(err).Msg("[RateLimiter] failed to increment counter")

			// fail open when redis is unreachable
			next.ServeHTTP(w, r)

			return
		}

		if count == 1 {
			if err := l.client.Expire(r.Context(), key, window).Err(); err != nil {
				log.Error().Err(err).Msg("[RateLimiter] failed to set window expiry")
			}
		}

		remaining := int64(maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxRequests))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(l.config.App.RateLimiter.WindowSeconds))

		if count > int64(maxRequests) {
			response.WithError(w, &failure.Failure{
				Code:    http.StatusTooManyRequests,
				Message: constant.ResponseErrorRequestLimitExceeded,
			})

			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		return forwarded
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
