package auth

import (
	"net/http"

	"intake/infras/otel"
	"intake/internal/domains/auth/model/dto"
	"intake/internal/domains/auth/service"
	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/validator"
	"intake/transport/http/middleware"
	"intake/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/passcode", handler.RequestPasscode)
		r.Post("/verify", handler.Verify)
		r.Get("/session", handler.Session)
	})
}

// RequestPasscode emails a one-time code to the visitor
// @Summary Request a passcode
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PasscodeRequest true "Passcode Request"
// @Success 202 {object} dto.PasscodeResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/passcode [post]
func (handler *Handler) RequestPasscode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestPasscode")
	defer scope.End()

	req := dto.PasscodeRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestPasscode(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request passcode")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Passcode requested")

	response.WithJSON(w, http.StatusAccepted, res)
}

// Verify exchanges a passcode for a session token
// @Summary Verify a passcode
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verify Request"
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/auth/verify [post]
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("passcode verification failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Session returns the visitor behind the current token.
func (handler *Handler) Session(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.SessionEmail(r.Context())
	if !ok {
		response.WithError(w, failure.Unauthorized("No active session"))

		return
	}

	response.WithJSON(w, http.StatusOK, dto.SessionResponse{Email: email})
}
