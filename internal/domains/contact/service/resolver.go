package service

import (
	"context"

	"intake/infras/hubspot"
	"intake/infras/otel"
	"intake/internal/domains/contact/model"
	"intake/internal/domains/contact/repository"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/validator"

	"github.com/rs/zerolog/log"
)

type resolverImpl struct {
	repository repository.Contact
	otel       otel.Otel
}

func NewResolver(repository repository.Contact, otel otel.Otel) IdentityResolver {
	return &resolverImpl{
		repository: repository,
		otel:       otel,
	}
}

// Lookup reports NotFound as Found false. Any other CRM failure is
// failure.LookupFailed and must stop the flow before anything is created.
func (s *resolverImpl) Lookup(ctx context.Context, email string) (lookup model.Lookup, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(email, "required,email"); err != nil {
		return model.Lookup{}, err //nolint:wrapcheck
	}

	contact, found, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		log.Error().
			Err(err).
			Str("email", email).
			Int("crm_status", hubspot.StatusOf(err)).
			Str("crm_body", hubspot.BodyOf(err)).
			Msg("Failed to look up contact")

		return model.Lookup{}, failure.LookupFailed
	}

	scope.SetAttribute("contact.found", found)

	return model.Lookup{Found: found, Contact: contact}, nil
}
