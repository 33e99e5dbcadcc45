package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"intake/shared/constant"
	"intake/shared/failure"
	"intake/shared/logger"

	"github.com/rs/zerolog/log"
)

const messageInternalError = "Something went wrong. Please try again later."

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error      *string `json:"error,omitempty"`
	Field      string  `json:"field,omitempty"`
	RedirectTo string  `json:"redirect_to,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Only Failure messages
// reach the client; anything else becomes a generic 500.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), toError(err))
}

// WithRedirect sends an error response that tells the client where to go next.
func WithRedirect(writer http.ResponseWriter, err error, redirectTo string) {
	payload := toError(err)
	payload.RedirectTo = redirectTo

	response(writer, failure.GetCode(err), payload)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func toError(err error) Error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return Error{Error: &fail.Message, Field: fail.Field}
	}

	log.Error().Err(err).Msg("unhandled error returned to client")

	message := messageInternalError

	return Error{Error: &message}
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
