package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "user-directory/internal/http/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminSecret = "admin_secret_key"
	userSecret  = "user_secret_key"
)

func makeToken(t *testing.T, secret, role string, method jwt.SigningMethod) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// roleEcho writes the role found in the request context.
func roleEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(mw.RoleKey).(string)
		w.Write([]byte(role))
	})
}

func doRequest(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	w := doRequest(h, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	w := doRequest(h, makeToken(t, "other_secret", mw.RoleUser, jwt.SigningMethodHS256))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_UserToken(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	w := doRequest(h, makeToken(t, userSecret, mw.RoleUser, jwt.SigningMethodHS256))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, mw.RoleUser, w.Body.String())
}

func TestAuth_AdminToken(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	w := doRequest(h, makeToken(t, adminSecret, mw.RoleAdmin, jwt.SigningMethodHS256))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, mw.RoleAdmin, w.Body.String())
}

func TestAuth_RoleMustMatchSecret(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	// signed with the user secret but claims admin
	w := doRequest(h, makeToken(t, userSecret, mw.RoleAdmin, jwt.SigningMethodHS256))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsOtherAlgorithms(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(roleEcho())

	w := doRequest(h, makeToken(t, userSecret, mw.RoleUser, jwt.SigningMethodHS512))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	h := mw.Auth(adminSecret, userSecret)(mw.AdminOnly(roleEcho()))

	w := doRequest(h, makeToken(t, userSecret, mw.RoleUser, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(h, makeToken(t, adminSecret, mw.RoleAdmin, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusOK, w.Code)
}
