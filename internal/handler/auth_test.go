package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_UnknownEmail(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@x.com",
		"password": "any",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "owner@system.com",
		"password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong password", decodeBody(t, w)["error"])
}

func TestLogin_Success(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "owner@system.com",
		"password": testPassword,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "OWNER", body["role"])
	assert.Equal(t, "System Owner", body["name"])
}

func TestSignup_AlwaysCreatesCustomerRole(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":     "Jane Roe",
		"email":    "jane@example.com",
		"password": "hunter2",
		"phone":    "111-222-3333",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "USER", body["role"])
	// The new user is authenticated straight away.
	token, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	cart := doRequest(t, r, http.MethodGet, "/api/v1/cart", token, nil)
	assert.Equal(t, http.StatusOK, cart.Code)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":     "Impostor",
		"email":    "user@gmail.com",
		"password": "pw",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogout_ClearsCart(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	add := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, "Classic Cheese"),
		"size":         "S",
	})
	require.Equal(t, http.StatusCreated, add.Code)

	out := doRequest(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, out.Code)

	cart := doRequest(t, r, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, cart.Code)
	assert.Empty(t, decodeBody(t, cart)["items"])
}
