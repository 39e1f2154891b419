package middleware

import (
	"drivent/shared/cache"
	"drivent/shared/constant"
	"drivent/transport/http/response"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	headerRetryAfter  = "Retry-After"
)

// RateLimit counts requests per client address in fixed windows. Any cache
// failure lets the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limits := a.config.App.RateLimiter
			if !limits.Enable || limits.MaxRequests <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			key := cache.BuildKey(cacheKeyRateLimit, clientAddress(r, a.config.App.TrustProxyHeaders))

			var count int
			if err := a.cache.Get(r.Context(), key, &count); err != nil && !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Str("key", key).Msg("[RateLimit] limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			count++
			window := strconv.Itoa(limits.WindowSeconds)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, window)

			if count > limits.MaxRequests {
				w.Header().Set(constant.RequestHeaderRateLimitRemaining, "0")
				w.Header().Set(headerRetryAfter, window)
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), key, count, limits.WindowSeconds); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("[RateLimit] failed to store request count")
			}

			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(limits.MaxRequests-count))

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress returns the host part of the peer address. Behind a trusted
// proxy the first X-Forwarded-For hop, then X-Real-IP, take precedence.
func clientAddress(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if address := forwardedAddress(r); address != "" {
			return address
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}

func forwardedAddress(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	return strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP))
}
