package dto

import (
	"intake/infras/jwt"
)

type PasscodeRequest struct {
	Email      string `json:"email"       validate:"required,email,max=254"`
	RedirectTo string `json:"redirect_to" validate:"omitempty,url"`
}

type PasscodeResponse struct {
	Email     string `json:"email"`
	ExpiresIn int    `json:"expires_in"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
	Code  string `json:"code"  validate:"required,numeric"`
}

type VerifyResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	RedirectTo  string `json:"redirect_to,omitempty"`
}

func (v *VerifyResponse) FromSession(session *jwt.Session, redirectTo string) {
	v.AccessToken = session.AccessToken
	v.TokenType = session.TokenType
	v.ExpiresIn = session.ExpiresIn
	v.RedirectTo = redirectTo
}

// SessionResponse describes the visitor behind the current token.
type SessionResponse struct {
	Email string `json:"email"`
}
