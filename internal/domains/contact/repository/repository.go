package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"intake/config"
	"intake/infras/hubspot"
	"intake/infras/otel"
	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/contact/model"
	"intake/shared/constant"
)

type Contact interface {
	// GetByEmail returns found false when the CRM has no contact for email.
	GetByEmail(ctx context.Context, email string) (contact model.Contact, found bool, err error)
	Insert(ctx context.Context, email string, profile model.Profile, session cModel.Session) (string, error)
	UpdateConsultation(ctx context.Context, contactID string, session cModel.Session) error
}

type contactImpl struct {
	crm    hubspot.Client
	config *config.Config
	otel   otel.Otel
}

func New(crm hubspot.Client, config *config.Config, otel otel.Otel) Contact {
	return &contactImpl{
		crm:    crm,
		config: config,
		otel:   otel,
	}
}

func (r *contactImpl) GetByEmail(ctx context.Context, email string) (contact model.Contact, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByEmail")
	defer scope.End()

	props := r.config.CRM.Contact
	object, err := r.crm.GetContactByEmail(ctx, email, []string{
		model.FieldEmail,
		model.FieldFirstName,
		model.FieldLastName,
		props.AgeBandProperty,
	})
	if errors.Is(err, hubspot.ErrNotFound) {
		return model.Contact{}, false, nil
	}

	if err != nil {
		scope.TraceError(err)

		return model.Contact{}, false, fmt.Errorf("failed to get contact by email: %w", err)
	}

	band, ok := cModel.ParseAgeBand(object.Properties[props.AgeBandProperty])

	return model.Contact{
		ID:         object.ID,
		Email:      email,
		FirstName:  object.Properties[model.FieldFirstName],
		LastName:   object.Properties[model.FieldLastName],
		AgeBand:    band,
		HasAgeBand: ok && band != cModel.AgeBandUndisclosed,
	}, true, nil
}

func (r *contactImpl) Insert(ctx context.Context, email string, profile model.Profile, session cModel.Session) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	props := r.config.CRM.Contact
	properties := r.consultationProperties(session)
	properties[model.FieldEmail] = email
	properties[model.FieldLastName] = profile.LastName
	properties[model.FieldFirstName] = profile.FirstName
	properties[props.LastNameKanaProperty] = profile.LastNameKana
	properties[props.FirstNameKanaProperty] = profile.FirstNameKana
	properties[model.FieldPostalCode] = profile.PostalCode
	properties[props.AgeBandProperty] = profile.AgeBand.String()

	object, err := r.crm.CreateContact(ctx, properties)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to create contact: %w", err)
	}

	return object.ID, nil
}

// UpdateConsultation writes only the consultation fields; name and postal
// properties are never part of the patch.
func (r *contactImpl) UpdateConsultation(ctx context.Context, contactID string, session cModel.Session) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateConsultation")
	defer scope.End()

	_, err := r.crm.UpdateContact(ctx, contactID, r.consultationProperties(session))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update contact consultation: %w", err)
	}

	return nil
}

func (r *contactImpl) consultationProperties(session cModel.Session) map[string]string {
	props := r.config.CRM.Contact
	properties := map[string]string{
		props.TargetTypeProperty:     session.TargetType.String(),
		props.SubjectAgeBandProperty: session.SubjectAgeBand.String(),
	}

	if session.HasOtherRelativeLabel() {
		properties[props.RelationOtherProperty] = session.OtherRelativeLabel
	}

	return properties
}
