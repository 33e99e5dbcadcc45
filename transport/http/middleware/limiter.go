package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"intake/shared/cache"
	"intake/shared/constant"
	"intake/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client in a fixed window. A cache outage lets
// the request through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := cache.BuildCacheKey(a.config.App.Name, cacheKeyRateLimit, a.getClientIP(request), a.getUA(request))

		count, err := a.cache.Increment(request.Context(), cacheKey, windowSecs)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			next.ServeHTTP(writer, request)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, the first one is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
