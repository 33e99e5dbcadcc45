package service

import (
	contactModel "intake/internal/domains/contact/model"
	"intake/shared/validator"
)

// validateProfile runs the contact field rules up front so an invalid form
// never reaches the CRM, not even for the lookup.
func validateProfile(profile contactModel.Profile) error {
	return validator.ValidateStruct(&profile) //nolint:wrapcheck
}
