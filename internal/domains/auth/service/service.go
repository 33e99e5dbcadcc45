package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"intake/config"
	"intake/infras/jwt"
	"intake/infras/mailer"
	"intake/infras/otel"
	"intake/internal/domains/auth/model"
	"intake/internal/domains/auth/model/dto"
	consultationModel "intake/internal/domains/consultation/model"
	"intake/shared/cache"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/secret"
	"intake/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyCode     = "code"
	cacheKeyAttempts = "attempts"

	messageInvalidCode = "The code is invalid or has expired."
)

// Auth proves ownership of an email with a one-time passcode.
type Auth interface {
	RequestPasscode(ctx context.Context, req dto.PasscodeRequest) (dto.PasscodeResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
}

type serviceImpl struct {
	cache      cache.RedisCache
	mailer     mailer.Mailer
	jwtService jwt.JWT
	cfg        *config.Config
	otel       otel.Otel
}

func New(cache cache.RedisCache, mailer mailer.Mailer, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		cache:      cache,
		mailer:     mailer,
		jwtService: jwt,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) RequestPasscode(ctx context.Context, req dto.PasscodeRequest) (res dto.PasscodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestPasscode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Email = consultationModel.NormalizeEmail(req.Email)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !model.RedirectAllowed(req.RedirectTo, s.cfg.Passcode.AllowedRedirects) {
		log.Warn().Str("email", req.Email).Str("redirect_to", req.RedirectTo).Msg("passcode requested with a redirect outside the allowlist")

		return res, failure.Validation("redirect_to", "is not an allowed redirect target")
	}

	code, err := secret.NewNumericCode(s.cfg.Passcode.Length)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate passcode")

		return res, fmt.Errorf("failed to generate passcode: %w", err)
	}

	hash, err := secret.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash passcode")

		return res, fmt.Errorf("failed to hash passcode: %w", err)
	}

	ttl := s.cfg.Passcode.TTLSeconds
	pending := model.Passcode{Hash: hash, RedirectTo: req.RedirectTo}

	if err = s.cache.Save(ctx, s.key(cacheKeyCode, req.Email), pending, ttl); err != nil {
		return res, fmt.Errorf("failed to store passcode: %w", err)
	}

	if err := s.cache.Delete(ctx, s.key(cacheKeyAttempts, req.Email)); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("failed to reset passcode attempts")
	}

	err = s.mailer.SendPasscode(ctx, mailer.Passcode{
		To:        req.Email,
		Code:      code,
		Link:      model.VerificationLink(req.RedirectTo, req.Email),
		ExpiresIn: time.Duration(ttl) * time.Second,
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to deliver passcode")

		if errors.Is(err, failure.NotConfigured) {
			return res, err
		}

		return res, fmt.Errorf("failed to deliver passcode: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("passcode issued")

	res.Email = req.Email
	res.ExpiresIn = ttl

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Email = consultationModel.NormalizeEmail(req.Email)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	codeKey := s.key(cacheKeyCode, req.Email)
	attemptsKey := s.key(cacheKeyAttempts, req.Email)

	attempts, err := s.cache.Increment(ctx, attemptsKey, s.cfg.Passcode.TTLSeconds)
	if err != nil {
		return res, fmt.Errorf("failed to count passcode attempts: %w", err)
	}

	if attempts > int64(s.cfg.Passcode.MaxAttempts) {
		log.Warn().Str("email", req.Email).Int64("attempts", attempts).Msg("passcode attempts exhausted")

		if err := s.cache.Delete(ctx, codeKey); err != nil {
			log.Warn().Err(err).Str("email", req.Email).Msg("failed to discard exhausted passcode")
		}

		return res, failure.TooManyRequests("Too many attempts. Please request a new code.")
	}

	var pending model.Passcode
	if err = s.cache.Get(ctx, codeKey, &pending); err != nil {
		if errors.Is(err, cache.Nil) {
			return res, failure.Unauthorized(messageInvalidCode)
		}

		return res, fmt.Errorf("failed to load passcode: %w", err)
	}

	if err = secret.Verify(req.Code, pending.Hash); err != nil {
		if errors.Is(err, secret.ErrMismatch) {
			log.Warn().Str("email", req.Email).Int64("attempts", attempts).Msg("passcode mismatch")

			return res, failure.Unauthorized(messageInvalidCode)
		}

		return res, fmt.Errorf("failed to verify passcode: %w", err)
	}

	for _, key := range []string{codeKey, attemptsKey} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to consume passcode")
		}
	}

	session, err := s.jwtService.Issue(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")

		return res, fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("passcode verified")

	res.FromSession(session, pending.RedirectTo)

	return res, nil
}

func (s *serviceImpl) key(kind, email string) string {
	return cache.BuildCacheKey(s.cfg.App.Name, "passcode", kind, email)
}
