package validator

import (
	"errors"
	"intake/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "is required",
		"oneof":      "must be one of {param}",
		"max":        "must be less than or equal to {param}",
		"min":        "must be greater than or equal to {param}",
		"email":      "must be a valid email address",
		"katakana":   "must contain full-width katakana only",
		"postalcode": "must be exactly 7 digits without hyphen",
		"enum":       "is not an allowed value",
		"url":        "must be a valid URL",
		"numeric":    "must contain digits only",
	}
)

// toFailure converts the first validation error into a failure naming the
// offending JSON field.
func toFailure(err error) error {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			reason := messages[valErr.Tag()]
			if reason == "" {
				continue
			}

			reason = strings.ReplaceAll(reason, "{param}", valErr.Param())

			field := valErr.Field()
			if field == "" {
				field = "value"
			}

			return failure.Validation(field, reason)
		}

		return failure.BadRequestFromString(valErrors.Error())
	}

	return failure.BadRequest(err)
}
