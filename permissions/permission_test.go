package permissions_test

import (
	"net/http"
	"testing"

	"intake/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.Public("/v1/auth/passcode", http.MethodPost))
	assert.True(t, data.Public("/v1/auth/verify", http.MethodPost))
	assert.False(t, data.Public("/v1/intake/onboard", http.MethodPost))
	assert.False(t, data.Public("/v1/intake/widget", http.MethodGet))
}

func TestPublic_UnknownRouteRequiresSession(t *testing.T) {
	data := &permissions.PermissionData{}

	assert.False(t, data.Public("/v1/anything", http.MethodGet))
}

func TestPublic_GlobalSkip(t *testing.T) {
	data := &permissions.PermissionData{Skip: true}

	assert.True(t, data.Public("/v1/intake/onboard", http.MethodPost))
}

func TestFindPermissions_MethodMustMatch(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/auth/passcode", http.MethodGet))
}
