package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"intake/config"
	"intake/infras/jwt"
	jwtMocks "intake/infras/jwt/mocks"
	kafkaMocks "intake/infras/kafka/mocks"
	otelMocks "intake/infras/otel/mocks"
	authMocks "intake/internal/domains/auth/mocks"
	consultationMocks "intake/internal/domains/consultation/mocks"
	"intake/internal/domains/consultation/model/dto"
	authHandler "intake/internal/handlers/auth"
	intakeHandler "intake/internal/handlers/intake"
	"intake/permissions"
	cacheMocks "intake/shared/cache/mocks"
	"intake/transport/http/middleware"
	"intake/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	jwt          *jwtMocks.MockJWT
	consultation *consultationMocks.MockConsultation
	events       *kafkaMocks.MockClient
	server       *HTTP
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "intake"
	cfg.App.StartPath = "/start"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	ot := otelMocks.NewOtel()

	f := fixture{
		jwt:          jwtMocks.NewMockJWT(ctrl),
		consultation: consultationMocks.NewMockConsultation(ctrl),
		events:       kafkaMocks.NewMockClient(ctrl),
	}

	handlers := router.DomainHandlers{
		Auth:   authHandler.New(authMocks.NewMockAuth(ctrl), ot),
		Intake: intakeHandler.New(f.consultation, ot),
	}
	session := middleware.NewAuthMiddleware(f.jwt, ot, permissions.Get(), cfg)
	app := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))

	f.server = New(cfg, router.New(handlers, session), app, ot, f.events, f.consultation)

	return f
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, state := range []ServerState{ServerStateInGracePeriod, ServerStateInCleanupPeriod} {
		f.server.state.Store(int32(state))

		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}
}

func TestRoutes_RequireSession(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/intake/identity", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No active session","redirect_to":"/start"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRoutes_WithSession(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().Validate("token").Return(&jwt.Claims{Email: "a@x.com"}, nil)
	f.consultation.EXPECT().Identify(gomock.Any(), "a@x.com").Return(dto.IdentityResponse{Email: "a@x.com", VisitorKind: "NEW", NextStep: dto.NextStepOnboard}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/intake/identity", nil)
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/auth/passcode", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCleanup_DrainsEventsBeforeClosing(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.consultation.EXPECT().Shutdown(gomock.Any()).Return(nil),
		f.events.EXPECT().Close().Return(nil),
	)

	f.server.cleanup(context.Background())
}
