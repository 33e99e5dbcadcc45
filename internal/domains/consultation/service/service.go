package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"intake/config"
	"intake/infras/kafka"
	"intake/infras/otel"
	"intake/internal/domains/consultation/model"
	"intake/internal/domains/consultation/model/dto"
	contactService "intake/internal/domains/contact/service"
	ticketService "intake/internal/domains/ticket/service"
	"intake/shared/cache"
	"intake/shared/constant"
	"intake/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyLock   = "lock"
	cacheKeyTicket = "ticket"

	publishTimeout = 10 * time.Second
)

// Consultation runs one intake attempt from identity resolution to the
// booking widget. Each call re-resolves the email against the CRM.
type Consultation interface {
	Identify(ctx context.Context, email string) (dto.IdentityResponse, error)
	SubmitNew(ctx context.Context, email string, req dto.NewVisitorRequest) (dto.HandoffResponse, error)
	SubmitReturning(ctx context.Context, email string, req dto.ReturningVisitorRequest) (dto.HandoffResponse, error)
	Widget(ctx context.Context, email, ticketID string) (dto.WidgetResponse, error)
	// Shutdown waits for in-flight event publication.
	Shutdown(ctx context.Context) error
}

type consultationImpl struct {
	resolver contactService.IdentityResolver
	writer   contactService.Writer
	opener   ticketService.Opener
	cache    cache.RedisCache
	events   kafka.Client
	config   *config.Config
	otel     otel.Otel

	inflight sync.WaitGroup
}

func New(
	resolver contactService.IdentityResolver,
	writer contactService.Writer,
	opener ticketService.Opener,
	cache cache.RedisCache,
	events kafka.Client,
	config *config.Config,
	otel otel.Otel,
) Consultation {
	return &consultationImpl{
		resolver: resolver,
		writer:   writer,
		opener:   opener,
		cache:    cache,
		events:   events,
		config:   config,
		otel:     otel,
	}
}

func (s *consultationImpl) Identify(ctx context.Context, email string) (resp dto.IdentityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Identify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = model.NormalizeEmail(email)
	flow := model.NewFlow(email)

	if err = flow.Advance(model.StateEmailSubmitted); err != nil {
		return resp, err
	}

	lookup, err := s.resolver.Lookup(ctx, email)
	if err != nil {
		return resp, s.fail(flow, err)
	}

	if err = flow.Resolve(lookup.Kind()); err != nil {
		return resp, err
	}

	scope.SetAttribute("visitor.kind", string(lookup.Kind()))
	resp.FromLookup(email, lookup)

	return resp, nil
}

// SubmitNew handles the onboarding form. An email that already resolves to a
// contact is patched instead so a resubmitted form never creates a duplicate.
func (s *consultationImpl) SubmitNew(ctx context.Context, email string, req dto.NewVisitorRequest) (resp dto.HandoffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitNew")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = model.NormalizeEmail(email)
	profile := req.ToProfile()
	answers := req.ToAnswers()

	if err = validateProfile(profile); err != nil {
		return resp, err
	}

	session, err := model.NewSession(email, answers, profile.AgeBand)
	if err != nil {
		return resp, err
	}

	release, err := s.lock(ctx, email)
	if err != nil {
		return resp, err
	}
	defer release()

	flow := model.NewFlow(email)
	if err = flow.Advance(model.StateEmailSubmitted); err != nil {
		return resp, err
	}

	lookup, err := s.resolver.Lookup(ctx, email)
	if err != nil {
		return resp, s.fail(flow, err)
	}

	if err = flow.Resolve(lookup.Kind()); err != nil {
		return resp, err
	}

	var contactID string

	if lookup.Found {
		onFile := profile.AgeBand
		if lookup.Contact.HasAgeBand {
			onFile = lookup.Contact.AgeBand
		}

		if session, err = model.NewSession(email, answers, onFile); err != nil {
			return resp, s.fail(flow, err)
		}

		log.Info().Str("email", email).Msg("Onboarding form submitted for an existing contact, patching instead")

		contactID = lookup.Contact.ID
		err = s.writer.Patch(ctx, contactID, session)
	} else {
		contactID, err = s.writer.Create(ctx, email, profile, session)
	}

	if err != nil {
		return resp, s.fail(flow, err)
	}

	return s.handoff(ctx, flow, contactID, session)
}

// SubmitReturning handles the consultation form of a known contact. For SELF
// the band on file wins over anything the client sent.
func (s *consultationImpl) SubmitReturning(ctx context.Context, email string, req dto.ReturningVisitorRequest) (resp dto.HandoffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitReturning")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = model.NormalizeEmail(email)
	answers := req.ToAnswers()

	if err = answers.Validate(); err != nil {
		return resp, err
	}

	release, err := s.lock(ctx, email)
	if err != nil {
		return resp, err
	}
	defer release()

	flow := model.NewFlow(email)
	if err = flow.Advance(model.StateEmailSubmitted); err != nil {
		return resp, err
	}

	lookup, err := s.resolver.Lookup(ctx, email)
	if err != nil {
		return resp, s.fail(flow, err)
	}

	if !lookup.Found {
		return resp, s.fail(flow, failure.NotFound("No registration was found for this email. Please complete the onboarding form."))
	}

	if err = flow.Resolve(model.VisitorReturning); err != nil {
		return resp, err
	}

	var onFile model.AgeBand
	if lookup.Contact.HasAgeBand {
		onFile = lookup.Contact.AgeBand
	}

	session, err := model.NewSession(email, answers, onFile)
	if err != nil {
		return resp, s.fail(flow, err)
	}

	if err = s.writer.Patch(ctx, lookup.Contact.ID, session); err != nil {
		return resp, s.fail(flow, err)
	}

	return s.handoff(ctx, flow, lookup.Contact.ID, session)
}

// Widget builds the booking widget for the last ticket opened for the email.
// An explicit ticket number must match that ticket; without a cached ticket the
// widget is refused.
func (s *consultationImpl) Widget(ctx context.Context, email, ticketID string) (resp dto.WidgetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Widget")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email = model.NormalizeEmail(email)

	var cached string

	err = s.cache.Get(ctx, s.cacheKey(cacheKeyTicket, email), &cached)
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("email", email).Msg("Failed to read cached ticket")
	}

	if cached == "" {
		return resp, failure.Conflict("No pending consultation was found. Please submit the consultation form first.") //nolint:wrapcheck
	}

	if ticketID != "" && ticketID != cached {
		log.Warn().Str("email", email).Str("ticket_id", ticketID).Msg("Widget requested for a ticket not opened in this session")

		return resp, failure.Conflict("The ticket does not match your pending consultation.") //nolint:wrapcheck
	}

	return dto.NewWidgetResponse(s.config, email, cached), nil
}

func (s *consultationImpl) Shutdown(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handoff opens the ticket for a written contact and prepares the widget.
func (s *consultationImpl) handoff(ctx context.Context, flow *model.Flow, contactID string, session model.Session) (resp dto.HandoffResponse, err error) {
	if err = flow.Advance(model.StateContactWritten); err != nil {
		return resp, err
	}

	ticket, err := s.opener.Open(ctx, contactID, session)
	if err != nil {
		return resp, s.fail(flow, err)
	}

	if err = flow.Advance(model.StateTicketOpened); err != nil {
		return resp, err
	}

	err = s.cache.Save(ctx, s.cacheKey(cacheKeyTicket, flow.Email()), ticket.HumanID, s.config.Intake.TicketCacheSeconds)
	if err != nil {
		log.Warn().Err(err).Str("email", flow.Email()).Msg("Failed to cache ticket for the widget")
	}

	s.publishTicketOpened(ctx, flow, contactID, ticket.ID, ticket.HumanID, session)

	if err = flow.Advance(model.StateHandedToWidget); err != nil {
		return resp, err
	}

	resp.FromTicket(flow.Visitor(), ticket, dto.NewWidgetResponse(s.config, flow.Email(), ticket.HumanID))

	log.Info().
		Str("email", flow.Email()).
		Str("visitor_kind", string(flow.Visitor())).
		Str("ticket_id", ticket.HumanID).
		Msg("Visitor handed to booking widget")

	return resp, nil
}

// lock serializes submissions per email. A held lock is a conflict; a cache
// outage lets the submission through unlocked.
func (s *consultationImpl) lock(ctx context.Context, email string) (func(), error) {
	key := s.cacheKey(cacheKeyLock, email)

	token, err := s.cache.Lock(ctx, key, s.config.Intake.LockSeconds)
	if errors.Is(err, cache.ErrLocked) {
		return nil, failure.Conflict("A submission for this email is already in progress.") //nolint:wrapcheck
	}

	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Submission lock unavailable, continuing without it")

		return func() {}, nil
	}

	return func() {
		if err := s.cache.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			log.Warn().Err(err).Str("email", email).Msg("Failed to release submission lock")
		}
	}, nil
}

func (s *consultationImpl) fail(flow *model.Flow, err error) error {
	err = flow.Fail(err)

	log.Warn().
		Err(err).
		Str("email", flow.Email()).
		Str("failed_at", string(flow.FailedAt())).
		Int("status", failure.GetCode(err)).
		Msg("Intake attempt stopped")

	return err
}

func (s *consultationImpl) cacheKey(kind, email string) string {
	return cache.BuildCacheKey(s.config.App.Name, model.EntityName, kind, email)
}
