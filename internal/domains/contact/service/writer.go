package service

import (
	"context"

	"intake/infras/hubspot"
	"intake/infras/otel"
	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/contact/model"
	"intake/internal/domains/contact/repository"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/validator"

	"github.com/rs/zerolog/log"
)

type writerImpl struct {
	repository repository.Contact
	otel       otel.Otel
}

func NewWriter(repository repository.Contact, otel otel.Otel) Writer {
	return &writerImpl{
		repository: repository,
		otel:       otel,
	}
}

func (s *writerImpl) Create(ctx context.Context, email string, profile model.Profile, session cModel.Session) (contactID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(email, "required,email"); err != nil {
		return "", err //nolint:wrapcheck
	}

	profile = profile.Normalized()
	if err = validator.ValidateStruct(&profile); err != nil {
		return "", err //nolint:wrapcheck
	}

	if err = validateSession(session); err != nil {
		return "", err
	}

	contactID, err = s.repository.Insert(ctx, email, profile, session)
	if err != nil {
		log.Error().
			Err(err).
			Str("email", email).
			Int("crm_status", hubspot.StatusOf(err)).
			Str("crm_body", hubspot.BodyOf(err)).
			Msg("Failed to create contact")

		return "", failure.WriteFailed
	}

	log.Info().Str("email", email).Str("contact_id", contactID).Msg("Contact created")

	return contactID, nil
}

func (s *writerImpl) Patch(ctx context.Context, contactID string, session cModel.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PatchContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if contactID == "" {
		return failure.Validation("contact_id", "is required")
	}

	if err = validateSession(session); err != nil {
		return err
	}

	if err = s.repository.UpdateConsultation(ctx, contactID, session); err != nil {
		log.Error().
			Err(err).
			Str("contact_id", contactID).
			Int("crm_status", hubspot.StatusOf(err)).
			Str("crm_body", hubspot.BodyOf(err)).
			Msg("Failed to patch contact")

		return failure.WriteFailed
	}

	log.Info().Str("contact_id", contactID).Str("target_type", session.TargetType.String()).Msg("Contact patched")

	return nil
}

// validateSession rejects sessions that were not built through NewSession.
func validateSession(session cModel.Session) error {
	if !session.TargetType.IsValid() {
		return failure.Validation(cModel.FieldTargetType, "is not an allowed value")
	}

	if !session.SubjectAgeBand.IsValid() {
		return failure.Validation(cModel.FieldSubjectAgeBand, "is not an allowed value")
	}

	return nil
}
