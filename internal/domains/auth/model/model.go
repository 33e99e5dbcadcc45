package model

import (
	"net/url"
	"slices"
)

// Passcode is the pending one-time code for an email. Only the hash is kept.
type Passcode struct {
	Hash       string `json:"hash"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// RedirectAllowed reports whether target is empty or listed in allowed.
func RedirectAllowed(target string, allowed []string) bool {
	return target == "" || slices.Contains(allowed, target)
}

// VerificationLink appends the email to target so the verify page can prefill it.
func VerificationLink(target, email string) string {
	if target == "" {
		return ""
	}

	link, err := url.Parse(target)
	if err != nil {
		return ""
	}

	query := link.Query()
	query.Set("email", email)
	link.RawQuery = query.Encode()

	return link.String()
}
