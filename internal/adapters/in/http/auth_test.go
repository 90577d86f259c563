package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gatewayhttp "epicerie/internal/adapters/in/http"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/bearer"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func epicierToken(t *testing.T) string {
	return signToken(t, testSecret, jwt.MapClaims{
		"userId": 1, "role": "EPICIER", "epicerieId": 200,
	})
}

func clientToken(t *testing.T) string {
	return signToken(t, testSecret, jwt.MapClaims{
		"userId": 2, "role": "CLIENT",
	})
}

func livreurToken(t *testing.T) string {
	return signToken(t, testSecret, jwt.MapClaims{
		"userId": 5, "role": "LIVREUR",
	})
}

func runMiddleware(t *testing.T, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := gatewayhttp.AuthMiddleware(testSecret)(next)
	require.NoError(t, handler(c))
	return rec
}

func TestAuthMiddleware_ValidEpicierToken(t *testing.T) {
	var principal *gatewayhttp.Principal
	var forwardedToken string

	rec := runMiddleware(t, "Bearer "+epicierToken(t), func(c echo.Context) error {
		principal, _ = gatewayhttp.PrincipalFromContext(c.Request().Context())
		forwardedToken, _ = bearer.TokenFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, kernel.RoleEpicier, principal.Role)
	assert.Equal(t, int64(1), principal.UserID.Value())
	require.NotNil(t, principal.EpicerieID)
	assert.Equal(t, int64(200), principal.EpicerieID.Value())
	assert.Equal(t, epicierToken(t), forwardedToken, "the raw token is re-exported for outbound calls")
}

func TestAuthMiddleware_ClientTokenHasNoEpicerie(t *testing.T) {
	var principal *gatewayhttp.Principal

	rec := runMiddleware(t, "Bearer "+clientToken(t), func(c echo.Context) error {
		principal, _ = gatewayhttp.PrincipalFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, kernel.RoleClient, principal.Role)
	assert.Nil(t, principal.EpicerieID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runMiddleware(t, "", func(c echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec := runMiddleware(t, "Basic dXNlcjpwYXNz", func(c echo.Context) error {
		t.Fatal("handler must not run with a non-bearer header")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	forged := signToken(t, "other-secret", jwt.MapClaims{"userId": 1, "role": "EPICIER"})

	rec := runMiddleware(t, "Bearer "+forged, func(c echo.Context) error {
		t.Fatal("handler must not run with a forged token")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UnknownRole(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"userId": 1, "role": "ADMIN"})

	rec := runMiddleware(t, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("handler must not run with an unknown role")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
