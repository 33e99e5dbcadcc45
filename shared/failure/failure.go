package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Upstream and configuration failures carry a generic message only. The
// underlying CRM status and body are logged where they occur.
var (
	LookupFailed  = &Failure{Code: http.StatusBadGateway, Message: "We could not check your registration right now. Please try again later."}
	WriteFailed   = &Failure{Code: http.StatusBadGateway, Message: "We could not save your request right now. Please try again later."}
	NotConfigured = &Failure{Code: http.StatusInternalServerError, Message: "The service is not configured correctly."}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request Failure naming the offending field.
func Validation(field, reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("%s %s", field, reason),
		Field:   field,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}

// TooManyRequests returns a new Failure for callers that exceeded an attempt budget.
func TooManyRequests(msg string) error {
	return &Failure{
		Code:    http.StatusTooManyRequests,
		Message: msg,
	}
}
