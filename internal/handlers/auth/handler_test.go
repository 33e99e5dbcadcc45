package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "intake/infras/otel/mocks"
	authMocks "intake/internal/domains/auth/mocks"
	"intake/internal/domains/auth/model/dto"
	"intake/internal/handlers/auth"
	"intake/shared/constant"
	"intake/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*authMocks.MockAuth, http.Handler) {
	ctrl := gomock.NewController(t)
	mockService := authMocks.NewMockAuth(ctrl)

	handler := auth.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestRequestPasscode(t *testing.T) {
	mockService, router := newRouter(t)

	mockService.EXPECT().
		RequestPasscode(gomock.Any(), dto.PasscodeRequest{Email: "a@x.com", RedirectTo: "https://example.com/post-auth"}).
		Return(dto.PasscodeResponse{Email: "a@x.com", ExpiresIn: 600}, nil)

	body := `{"email":"a@x.com","redirect_to":"https://example.com/post-auth"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/passcode", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"data":{"email":"a@x.com","expires_in":600}}`, rec.Body.String())
}

func TestRequestPasscode_MalformedBody(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/passcode", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "verified", code: http.StatusOK},
		{name: "wrong code", err: failure.Unauthorized("The code is invalid or has expired."), code: http.StatusUnauthorized},
		{name: "exhausted", err: failure.TooManyRequests("Too many attempts."), code: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t)

			mockService.EXPECT().
				Verify(gomock.Any(), dto.VerifyRequest{Email: "a@x.com", Code: "482913"}).
				Return(dto.VerifyResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, tt.err)

			body := `{"email":"a@x.com","code":"482913"}`
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(body)))

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestSession(t *testing.T) {
	_, router := newRouter(t)

	t.Run("active", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeySessionEmail, "a@x.com"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"a@x.com"}}`, rec.Body.String())
	})

	t.Run("none", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
