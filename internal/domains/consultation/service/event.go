package service

import (
	"context"

	"intake/infras/kafka"
	"intake/internal/domains/consultation/model"
	"intake/shared/constant"
	"intake/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// publishTicketOpened sends the event in the background. Failures are logged
// and never reach the visitor.
func (s *consultationImpl) publishTicketOpened(ctx context.Context, flow *model.Flow, contactID, ticketID, humanID string, session model.Session) {
	event := model.TicketOpenedEvent{
		EventID:        uuid.NewString(),
		Type:           model.EventTicketOpened,
		Email:          flow.Email(),
		ContactID:      contactID,
		TicketID:       ticketID,
		HumanTicketID:  humanID,
		VisitorKind:    flow.Visitor(),
		TargetType:     session.TargetType,
		SubjectAgeBand: session.SubjectAgeBand,
		OccurredAt:     timezone.Now(),
	}

	s.inflight.Add(1)

	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+model.EventTicketOpened)
		defer scope.End()

		err := s.events.SendMessages(ctx, s.config.Kafka.Topics.Intake, kafka.Message{
			Key:   event.Email,
			Value: event,
		})
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("ticket_id", ticketID).Msg("Failed to publish ticket opened event")
		}
	}()
}
