package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"intake/infras/hubspot"
	"intake/infras/otel"
	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/ticket/model"
	"intake/internal/domains/ticket/repository"
	"intake/shared/constant"
	"intake/shared/failure"

	"github.com/rs/zerolog/log"
)

// Opener creates the pending ticket for a written contact.
type Opener interface {
	Open(ctx context.Context, contactID string, session cModel.Session) (model.Ticket, error)
}

type openerImpl struct {
	repository repository.Ticket
	otel       otel.Otel
}

func New(repository repository.Ticket, otel otel.Otel) Opener {
	return &openerImpl{
		repository: repository,
		otel:       otel,
	}
}

func (s *openerImpl) Open(ctx context.Context, contactID string, session cModel.Session) (ticket model.Ticket, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if contactID == "" {
		return model.Ticket{}, failure.Validation("contact_id", "is required")
	}

	if !session.TargetType.IsValid() {
		return model.Ticket{}, failure.Validation(cModel.FieldTargetType, "is not an allowed value")
	}

	if !session.SubjectAgeBand.IsValid() {
		return model.Ticket{}, failure.Validation(cModel.FieldSubjectAgeBand, "is not an allowed value")
	}

	ticket, err = s.repository.Insert(ctx, contactID, session)
	if err != nil {
		log.Error().
			Err(err).
			Str("contact_id", contactID).
			Int("crm_status", hubspot.StatusOf(err)).
			Str("crm_body", hubspot.BodyOf(err)).
			Msg("Failed to open ticket")

		return model.Ticket{}, failure.WriteFailed
	}

	scope.SetAttribute("ticket.id", ticket.ID)

	log.Info().
		Str("contact_id", contactID).
		Str("ticket_id", ticket.ID).
		Str("target_type", session.TargetType.String()).
		Str("subject_age_band", session.SubjectAgeBand.String()).
		Msg("Ticket opened")

	return ticket, nil
}
