package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginKnownUser(t *testing.T) {
	app, st := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "AliceBlockchain",
		"password": "ignored",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.Equal(t, "AliceBlockchain", user["username"])

	current, ok := st.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "user-1", current.ID)
}

func TestLoginUnknownUser(t *testing.T) {
	app, st := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "nonexistent-user",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, ok := st.CurrentUser()
	assert.False(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	app, st := newTestApp(t)
	token := loginToken(t, app, "BobCrypto")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, ok := st.CurrentUser()
	assert.False(t, ok)
}

func TestProfileIncludesDerivedListings(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "AliceBlockchain")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	listings := data["listings"].([]interface{})
	assert.Len(t, listings, 2) // product-1 and product-4

	// Timestamps follow the same camelCase convention as every other
	// entity on the API surface.
	assert.Contains(t, data, "createdAt")
	assert.NotContains(t, data, "created_at")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
