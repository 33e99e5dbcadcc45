package model_test

import (
	"testing"

	"intake/internal/domains/auth/model"

	"github.com/stretchr/testify/assert"
)

func TestRedirectAllowed(t *testing.T) {
	allowed := []string{"https://example.com/post-auth"}

	assert.True(t, model.RedirectAllowed("", allowed))
	assert.True(t, model.RedirectAllowed("https://example.com/post-auth", allowed))
	assert.False(t, model.RedirectAllowed("https://evil.example/post-auth", allowed))
	assert.False(t, model.RedirectAllowed("https://example.com/post-auth", nil))
}

func TestVerificationLink(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "no target", target: "", want: ""},
		{name: "plain", target: "https://example.com/post-auth", want: "https://example.com/post-auth?email=a%40x.com"},
		{name: "keeps query", target: "https://example.com/post-auth?next=onboard", want: "https://example.com/post-auth?email=a%40x.com&next=onboard"},
		{name: "unparsable", target: "://bad", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.VerificationLink(tt.target, "a@x.com"))
		})
	}
}
