package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"intake/config"
	"intake/infras/hubspot"
	"intake/infras/otel"
	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/ticket/model"
	"intake/shared/constant"
)

type Ticket interface {
	Insert(ctx context.Context, contactID string, session cModel.Session) (model.Ticket, error)
}

type ticketImpl struct {
	crm    hubspot.Client
	config *config.Config
	otel   otel.Otel
}

func New(crm hubspot.Client, config *config.Config, otel otel.Otel) Ticket {
	return &ticketImpl{
		crm:    crm,
		config: config,
		otel:   otel,
	}
}

// Insert opens the ticket in the configured pipeline and pending stage with a
// single association to the contact.
func (r *ticketImpl) Insert(ctx context.Context, contactID string, session cModel.Session) (model.Ticket, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	cfg := r.config.CRM.Ticket
	properties := map[string]string{
		model.FieldPipeline:      cfg.PipelineID,
		model.FieldPipelineStage: cfg.PendingStageID,
		model.FieldSubject:       cfg.Subject,
		cfg.TargetTypeProperty:   session.TargetType.String(),
		cfg.AgeBandProperty:      session.SubjectAgeBand.String(),
	}

	associations := []hubspot.Association{
		hubspot.NewAssociation(contactID, cfg.AssociationCategory, cfg.AssociationTypeID),
	}

	object, err := r.crm.CreateTicket(ctx, properties, associations)
	if err != nil {
		scope.TraceError(err)

		return model.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	humanID := object.Properties[model.FieldHumanID]
	if humanID == "" {
		humanID = object.ID
	}

	return model.Ticket{
		ID:             object.ID,
		HumanID:        humanID,
		ContactID:      contactID,
		TargetType:     session.TargetType,
		SubjectAgeBand: session.SubjectAgeBand,
	}, nil
}
