package middleware

import (
	"context"
	"errors"
	"net/http"

	"intake/config"
	"intake/infras/jwt"
	"intake/infras/otel"
	"intake/permissions"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the visitor session of a request.
type Auth interface {
	Session(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Session requires a valid visitor token unless the route is public. Requests
// without one are answered with 401 and the start path to redirect to.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		path := m.routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if m.permission != nil && m.permission.Public(path, request.Method) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			m.reject(writer, scope, failure.Unauthorized("No active session"))

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			message := "Invalid session"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "Session has expired"
			}

			log.Warn().Err(err).Str("path", path).Msg("rejected session token")
			m.reject(writer, scope, failure.Unauthorized(message))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()

	response.WithRedirect(writer, err, m.cfg.App.StartPath)
}

// routePattern resolves the registered pattern for the request, falling back
// to the raw path before routing has happened.
func (m *authImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); path != "" {
		return path
	}

	return request.URL.Path
}

// SessionEmail returns the verified email attached by Session.
func SessionEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(constant.ContextKeySessionEmail).(string)

	return email, ok && email != ""
}
