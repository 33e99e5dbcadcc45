package model

import (
	"strings"

	cModel "intake/internal/domains/consultation/model"
	"intake/shared/kana"
)

const (
	EntityName = "contact"

	FieldEmail         = "email"
	FieldLastName      = "lastname"
	FieldFirstName     = "firstname"
	FieldLastNameKana  = "lastname_kana"
	FieldFirstNameKana = "firstname_kana"
	FieldPostalCode    = "zip"
	FieldAgeBand       = "age_band"
)

// Contact is the CRM record for one email as far as intake needs it.
type Contact struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	AgeBand    cModel.AgeBand
	HasAgeBand bool
}

// Lookup is the outcome of resolving an email. Found false means the CRM has
// no contact for the email; lookup failures are reported as errors instead.
type Lookup struct {
	Found   bool
	Contact Contact
}

// Kind maps the lookup onto the visitor kind exposed by the funnel.
func (l Lookup) Kind() cModel.VisitorKind {
	if l.Found {
		return cModel.VisitorReturning
	}

	return cModel.VisitorNew
}

// Profile holds the personal fields written only when a contact is created.
type Profile struct {
	LastName      string         `json:"lastname"       validate:"required,max=100"`
	FirstName     string         `json:"firstname"      validate:"required,max=100"`
	LastNameKana  string         `json:"lastname_kana"  validate:"required,katakana,max=100"`
	FirstNameKana string         `json:"firstname_kana" validate:"required,katakana,max=100"`
	PostalCode    string         `json:"zip"            validate:"required,postalcode"`
	AgeBand       cModel.AgeBand `json:"age_band"       validate:"required,enum"`
}

// Normalized returns the profile with surrounding spaces removed and both
// readings folded to full-width katakana.
func (p Profile) Normalized() Profile {
	return Profile{
		LastName:      strings.TrimSpace(p.LastName),
		FirstName:     strings.TrimSpace(p.FirstName),
		LastNameKana:  kana.ToKatakana(p.LastNameKana),
		FirstNameKana: kana.ToKatakana(p.FirstNameKana),
		PostalCode:    strings.TrimSpace(p.PostalCode),
		AgeBand:       p.AgeBand,
	}
}
