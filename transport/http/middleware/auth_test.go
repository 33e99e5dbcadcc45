package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"intake/config"
	"intake/infras/jwt"
	jwtMocks "intake/infras/jwt/mocks"
	otelMocks "intake/infras/otel/mocks"
	"intake/permissions"
	"intake/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(t *testing.T) (*jwtMocks.MockJWT, http.Handler) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.StartPath = "/start"

	auth := middleware.NewAuthMiddleware(mockJWT, otelMocks.NewOtel(), permissions.Get(), cfg)

	echoEmail := func(w http.ResponseWriter, r *http.Request) {
		email, _ := middleware.SessionEmail(r.Context())
		_, _ = w.Write([]byte(email))
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.Session)
		r.Post("/auth/passcode", echoEmail)
		r.Get("/intake/identity", echoEmail)
	})

	return mockJWT, router
}

func TestSession_PublicRoute(t *testing.T) {
	_, router := newSessionRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/passcode", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSession_ValidToken(t *testing.T) {
	mockJWT, router := newSessionRouter(t)

	mockJWT.EXPECT().Validate("good-token").Return(&jwt.Claims{Email: "a@x.com", TokenID: "t-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/intake/identity", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", rec.Body.String())
}

func TestSession_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		setup   func(m *jwtMocks.MockJWT)
		message string
	}{
		{
			name:    "missing header",
			message: "No active session",
		},
		{
			name:    "not bearer",
			header:  "Basic abc",
			message: "No active session",
		},
		{
			name:   "expired",
			header: "Bearer old",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("old").Return(nil, jwt.ErrExpiredToken)
			},
			message: "Session has expired",
		},
		{
			name:   "invalid",
			header: "Bearer forged",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("forged").Return(nil, jwt.ErrInvalidToken)
			},
			message: "Invalid session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT, router := newSessionRouter(t)
			if tt.setup != nil {
				tt.setup(mockJWT)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/intake/identity", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body struct {
				Error      string `json:"error"`
				RedirectTo string `json:"redirect_to"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, "/start", body.RedirectTo)
		})
	}
}
