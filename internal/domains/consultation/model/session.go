package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"intake/shared/failure"
)

const (
	FieldTargetType         = "consult_target_type"
	FieldSubjectAgeBand     = "subject_age_band"
	FieldOtherRelativeLabel = "consult_target_relation_other"
	FieldAgeBand            = "age_band"

	MaxOtherRelativeLabelLength = 100
)

// Answers is what the visitor said about the person the consultation concerns.
// SubjectAgeBand is ignored for TargetSelf.
type Answers struct {
	TargetType         TargetType
	OtherRelativeLabel string
	SubjectAgeBand     AgeBand
}

// Validate checks the answers as a whole before anything is sent to the CRM.
func (a Answers) Validate() error {
	if a.TargetType == "" {
		return failure.Validation(FieldTargetType, "is required")
	}

	if !a.TargetType.IsValid() {
		return failure.Validation(FieldTargetType, "is not an allowed value")
	}

	if utf8.RuneCountInString(a.OtherRelativeLabel) > MaxOtherRelativeLabelLength {
		return failure.Validation(FieldOtherRelativeLabel, fmt.Sprintf("must be at most %d characters", MaxOtherRelativeLabelLength))
	}

	if a.TargetType == TargetSelf {
		return nil
	}

	if a.SubjectAgeBand == "" {
		return failure.Validation(FieldSubjectAgeBand, "is required when the consultation is about someone else")
	}

	if !a.SubjectAgeBand.IsValid() {
		return failure.Validation(FieldSubjectAgeBand, "is not an allowed value")
	}

	return nil
}

// ResolveSubjectAgeBand applies the self-vs-other policy. For SELF the
// requester's band on file wins over anything the client sent, falling back to
// the undisclosed sentinel. Otherwise the visitor's explicit choice is used;
// callers must have run Answers.Validate first.
func ResolveSubjectAgeBand(answers Answers, requesterOnFile AgeBand) AgeBand {
	if answers.TargetType != TargetSelf {
		return answers.SubjectAgeBand
	}

	if requesterOnFile == "" || !requesterOnFile.IsValid() {
		return AgeBandUndisclosed
	}

	return requesterOnFile
}

// Session is the per-visit decision bundle consumed by the ticket step.
type Session struct {
	Email              string
	TargetType         TargetType
	OtherRelativeLabel string
	SubjectAgeBand     AgeBand
}

// NewSession validates the answers and resolves the subject age band against
// the requester's band on file.
func NewSession(email string, answers Answers, requesterOnFile AgeBand) (Session, error) {
	if email == "" {
		return Session{}, failure.Validation("email", "is required")
	}

	if err := answers.Validate(); err != nil {
		return Session{}, err
	}

	session := Session{
		Email:          email,
		TargetType:     answers.TargetType,
		SubjectAgeBand: ResolveSubjectAgeBand(answers, requesterOnFile),
	}

	if answers.TargetType == TargetOtherRelative && strings.TrimSpace(answers.OtherRelativeLabel) != "" {
		session.OtherRelativeLabel = answers.OtherRelativeLabel
	}

	return session, nil
}

// HasOtherRelativeLabel reports whether the label must be written to the CRM.
func (s Session) HasOtherRelativeLabel() bool {
	return s.OtherRelativeLabel != ""
}

// NormalizeEmail is the canonical form of an email used as the contact key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
