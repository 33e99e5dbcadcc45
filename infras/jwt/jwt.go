package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"intake/config"
	"intake/shared/failure"
	"intake/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("authorization header is required")
)

const tokenTypeBearer = "Bearer"

// Claims identify a visitor who proved ownership of an email address.
type Claims struct {
	Email   string `json:"email"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// Session is the token handed to a visitor after passcode verification.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type JWT interface {
	Issue(email string) (*Session, error)
	Validate(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New builds the session token service and stops the process when the access
// secret is missing.
func New(cfg *config.Config) JWT {
	svc, err := NewService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT access secret is not configured")
	}

	return svc
}

// NewService returns failure.NotConfigured when the access secret is missing.
func NewService(cfg *config.Config) (JWT, error) {
	if strings.TrimSpace(cfg.JWT.AccessSecret) == "" {
		return nil, failure.NotConfigured
	}

	return &Service{
		config: cfg,
	}, nil
}

func (s *Service) secret() ([]byte, bool) {
	if strings.TrimSpace(s.config.JWT.AccessSecret) == "" {
		return nil, false
	}

	return []byte(s.config.JWT.AccessSecret), true
}

// Issue signs a session token for email.
func (s *Service) Issue(email string) (*Session, error) {
	secret, ok := s.secret()
	if !ok {
		return nil, failure.NotConfigured
	}

	issuedAt := timezone.Now()
	ttl := time.Duration(s.config.JWT.AccessExpireMin) * time.Minute
	tokenID := uuid.New().String()

	claims := Claims{
		Email:   email,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   email,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Session{
		AccessToken: signed,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// Validate parses a session token and returns its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	secret, ok := s.secret()
	if !ok {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	}, jwt.WithIssuer(s.config.App.Name))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the bearer token of an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	token, ok := strings.CutPrefix(authHeader, tokenTypeBearer+" ")
	if !ok || token == "" {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return token, nil
}
