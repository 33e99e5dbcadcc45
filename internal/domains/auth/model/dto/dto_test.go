package dto_test

import (
	"testing"

	"intake/infras/jwt"
	"intake/internal/domains/auth/model/dto"
	"intake/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestVerifyResponse_FromSession(t *testing.T) {
	session := &jwt.Session{
		AccessToken: "test-access-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
	}

	var response dto.VerifyResponse
	response.FromSession(session, "https://example.com/post-auth")

	assert.Equal(t, session.AccessToken, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	assert.Equal(t, "https://example.com/post-auth", response.RedirectTo)
}

func TestVerifyRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.VerifyRequest
		wantErr bool
	}{
		{name: "valid", req: dto.VerifyRequest{Email: "a@x.com", Code: "012345"}},
		{name: "missing code", req: dto.VerifyRequest{Email: "a@x.com"}, wantErr: true},
		{name: "letters in code", req: dto.VerifyRequest{Email: "a@x.com", Code: "12ab56"}, wantErr: true},
		{name: "bad email", req: dto.VerifyRequest{Email: "nope", Code: "123456"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasscodeRequest_Validation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.PasscodeRequest{Email: "a@x.com"}))
	assert.NoError(t, validator.ValidateStruct(&dto.PasscodeRequest{Email: "a@x.com", RedirectTo: "https://example.com/post-auth"}))
	assert.Error(t, validator.ValidateStruct(&dto.PasscodeRequest{Email: "a@x.com", RedirectTo: "not a url"}))
	assert.Error(t, validator.ValidateStruct(&dto.PasscodeRequest{}))
}
