package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"intake/config"
	"intake/infras/jwt"
	jwtMocks "intake/infras/jwt/mocks"
	"intake/infras/mailer"
	mailerMocks "intake/infras/mailer/mocks"
	otelMocks "intake/infras/otel/mocks"
	"intake/internal/domains/auth/model"
	"intake/internal/domains/auth/model/dto"
	"intake/internal/domains/auth/service"
	"intake/shared/cache"
	cacheMocks "intake/shared/cache/mocks"
	"intake/shared/failure"
	"intake/shared/secret"
)

const (
	codeKey     = "intake:passcode:code:a@x.com"
	attemptsKey = "intake:passcode:attempts:a@x.com"
	postAuthURL = "https://example.com/post-auth"
)

type fixture struct {
	cache  *cacheMocks.MockRedisCache
	mailer *mailerMocks.MockMailer
	jwt    *jwtMocks.MockJWT
	svc    service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "intake"
	cfg.Passcode.Length = 6
	cfg.Passcode.TTLSeconds = 600
	cfg.Passcode.MaxAttempts = 5
	cfg.Passcode.AllowedRedirects = []string{postAuthURL}

	f := fixture{
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		mailer: mailerMocks.NewMockMailer(ctrl),
		jwt:    jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.cache, f.mailer, f.jwt, cfg, otelMocks.NewOtel())

	return f
}

func storedPasscode(t *testing.T, code string) func(context.Context, string, any) error {
	hash, err := secret.Hash(code)
	require.NoError(t, err)

	return func(_ context.Context, _ string, value any) error {
		*value.(*model.Passcode) = model.Passcode{Hash: hash, RedirectTo: postAuthURL}

		return nil
	}
}

func TestAuthService_RequestPasscode(t *testing.T) {
	f := newFixture(t)

	var saved model.Passcode
	var sent mailer.Passcode

	f.cache.EXPECT().
		Save(gomock.Any(), codeKey, gomock.Any(), 600).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			saved = value.(model.Passcode)

			return nil
		})
	f.cache.EXPECT().Delete(gomock.Any(), attemptsKey).Return(nil)
	f.mailer.EXPECT().
		SendPasscode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p mailer.Passcode) error {
			sent = p

			return nil
		})

	res, err := f.svc.RequestPasscode(context.Background(), dto.PasscodeRequest{
		Email:      "  A@X.com ",
		RedirectTo: postAuthURL,
	})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", res.Email)
	assert.Equal(t, 600, res.ExpiresIn)

	assert.Equal(t, "a@x.com", sent.To)
	assert.Len(t, sent.Code, 6)
	assert.Equal(t, 10*time.Minute, sent.ExpiresIn)
	assert.Equal(t, postAuthURL+"?email=a%40x.com", sent.Link)

	assert.Equal(t, postAuthURL, saved.RedirectTo)
	assert.NotContains(t, saved.Hash, sent.Code)
	assert.NoError(t, secret.Verify(sent.Code, saved.Hash))
}

func TestAuthService_RequestPasscode_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.PasscodeRequest
		field string
	}{
		{
			name:  "redirect outside allowlist",
			req:   dto.PasscodeRequest{Email: "a@x.com", RedirectTo: "https://evil.example/post-auth"},
			field: "redirect_to",
		},
		{
			name:  "invalid email",
			req:   dto.PasscodeRequest{Email: "not-an-email"},
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.RequestPasscode(context.Background(), tt.req)

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, http.StatusBadRequest, fail.Code)
			assert.Equal(t, tt.field, fail.Field)
		})
	}
}

func TestAuthService_RequestPasscode_DeliveryFailure(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		code    int
	}{
		{name: "smtp not configured", sendErr: failure.NotConfigured, code: http.StatusInternalServerError},
		{name: "smtp error", sendErr: errors.New("dial tcp: refused"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Save(gomock.Any(), codeKey, gomock.Any(), 600).Return(nil)
			f.cache.EXPECT().Delete(gomock.Any(), attemptsKey).Return(nil)
			f.mailer.EXPECT().SendPasscode(gomock.Any(), gomock.Any()).Return(tt.sendErr)

			_, err := f.svc.RequestPasscode(context.Background(), dto.PasscodeRequest{Email: "a@x.com"})

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestAuthService_RequestPasscode_StoreFailure(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Save(gomock.Any(), codeKey, gomock.Any(), 600).Return(errors.New("redis down"))

	_, err := f.svc.RequestPasscode(context.Background(), dto.PasscodeRequest{Email: "a@x.com"})

	assert.Error(t, err)
}

func TestAuthService_Verify(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.cache.EXPECT().Increment(gomock.Any(), attemptsKey, 600).Return(int64(1), nil),
		f.cache.EXPECT().Get(gomock.Any(), codeKey, gomock.Any()).DoAndReturn(storedPasscode(t, "482913")),
		f.cache.EXPECT().Delete(gomock.Any(), codeKey).Return(nil),
		f.cache.EXPECT().Delete(gomock.Any(), attemptsKey).Return(nil),
		f.jwt.EXPECT().Issue("a@x.com").Return(&jwt.Session{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, nil),
	)

	res, err := f.svc.Verify(context.Background(), dto.VerifyRequest{Email: "A@x.com", Code: "482913"})

	require.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
	assert.Equal(t, postAuthURL, res.RedirectTo)
}

func TestAuthService_Verify_WrongCode(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Increment(gomock.Any(), attemptsKey, 600).Return(int64(2), nil)
	f.cache.EXPECT().Get(gomock.Any(), codeKey, gomock.Any()).DoAndReturn(storedPasscode(t, "482913"))

	_, err := f.svc.Verify(context.Background(), dto.VerifyRequest{Email: "a@x.com", Code: "000000"})

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_Verify_Expired(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Increment(gomock.Any(), attemptsKey, 600).Return(int64(1), nil)
	f.cache.EXPECT().Get(gomock.Any(), codeKey, gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

	_, err := f.svc.Verify(context.Background(), dto.VerifyRequest{Email: "a@x.com", Code: "482913"})

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_Verify_TooManyAttempts(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Increment(gomock.Any(), attemptsKey, 600).Return(int64(6), nil)
	f.cache.EXPECT().Delete(gomock.Any(), codeKey).Return(nil)

	_, err := f.svc.Verify(context.Background(), dto.VerifyRequest{Email: "a@x.com", Code: "482913"})

	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
}

func TestAuthService_Verify_InvalidRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Verify(context.Background(), dto.VerifyRequest{Email: "a@x.com", Code: "abc"})

	assert.True(t, failure.IsValidation(err))
}
