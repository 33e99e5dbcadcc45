package middleware

import (
	"context"
	"fmt"
	"net/http"

	"intake/config"
	"intake/infras/otel"
	"intake/shared/cache"
	"intake/shared/constant"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
	RequestID(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": a.getUA(request),
			"http.host":       request.Host,
			"http.source":     a.getClientIP(request),
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request.WithContext(ctx))

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}

		scope.SetAttribute("http.status_code", status)

		if status >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", status))
		}
	})
}

func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		writer.Header().Set(constant.RequestHeaderRequestID, requestID)

		ctx := context.WithValue(request.Context(), constant.ContextKeyRequestID, requestID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
