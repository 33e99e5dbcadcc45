package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/contact/model"
)

// IdentityResolver finds the CRM contact for an email without writing anything.
type IdentityResolver interface {
	Lookup(ctx context.Context, email string) (model.Lookup, error)
}

// Writer creates and patches contacts. Every precondition is checked before
// the CRM is called, and failed writes are never retried.
type Writer interface {
	Create(ctx context.Context, email string, profile model.Profile, session cModel.Session) (string, error)
	Patch(ctx context.Context, contactID string, session cModel.Session) error
}
