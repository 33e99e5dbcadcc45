package intake

import (
	"net/http"

	"intake/infras/otel"
	"intake/internal/domains/consultation/model/dto"
	"intake/internal/domains/consultation/service"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/logger"
	"intake/shared/validator"
	"intake/transport/http/middleware"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Consultation
	otel    otel.Otel
}

func New(service service.Consultation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/intake", func(r chi.Router) {
		r.Get("/identity", handler.Identity)
		r.Post("/onboard", handler.Onboard)
		r.Post("/session", handler.Session)
		r.Get("/widget", handler.Widget)
	})
}

// Identity tells the visitor whether they are NEW or RETURNING
// @Summary Resolve the visitor's CRM identity
// @Tags Intake
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/intake/identity [get]
// @Security BearerAuth
func (handler *Handler) Identity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Identity")
	defer scope.End()

	email, ok := middleware.SessionEmail(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No active session"))

		return
	}

	res, err := handler.service.Identify(ctx, email)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("email", email).Msg("failed to resolve identity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Onboard submits the full form for a first-time visitor
// @Summary Submit the onboarding form
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body dto.NewVisitorRequest true "Onboarding Request"
// @Success 201 {object} dto.HandoffResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/intake/onboard [post]
// @Security BearerAuth
func (handler *Handler) Onboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Onboard")
	defer scope.End()

	email, ok := middleware.SessionEmail(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No active session"))

		return
	}

	req := dto.NewVisitorRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitNew(ctx, email, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("email", email).Msg("failed to submit onboarding form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket opened " + res.TicketID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Session submits the consultation answers for a returning visitor
// @Summary Submit the consultation form
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body dto.ReturningVisitorRequest true "Consultation Request"
// @Success 201 {object} dto.HandoffResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/intake/session [post]
// @Security BearerAuth
func (handler *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	email, ok := middleware.SessionEmail(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No active session"))

		return
	}

	req := dto.ReturningVisitorRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitReturning(ctx, email, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("email", email).Msg("failed to submit consultation form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket opened " + res.TicketID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Widget returns the booking widget bootstrap for the visitor's ticket
// @Summary Booking widget configuration
// @Tags Intake
// @Produce json
// @Param ticket_id query string false "Human ticket id"
// @Success 200 {object} dto.WidgetResponse
// @Failure 409 {object} response.Error
// @Router /v1/intake/widget [get]
// @Security BearerAuth
func (handler *Handler) Widget(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Widget")
	defer scope.End()

	email, ok := middleware.SessionEmail(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No active session"))

		return
	}

	res, err := handler.service.Widget(ctx, email, r.URL.Query().Get(constant.RequestParamTicketID))
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Str("email", email).Msg("widget handoff refused")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
