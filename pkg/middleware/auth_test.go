package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrorent-api/pkg/service"
	"agrorent-api/pkg/utils"
)

func authTestSetup(t *testing.T) (*AuthMiddleware, service.JWTService, *echo.Echo) {
	t.Helper()
	jwtSvc := service.NewJWTService("segredo-de-teste", 15*time.Minute)
	return NewAuthMiddleware(jwtSvc, zap.NewNop()), jwtSvc, echo.New()
}

func whoAmI(c echo.Context) error {
	return c.String(http.StatusOK, utils.CurrentUserID(c.Request().Context()))
}

func TestAuthInjectsUserID(t *testing.T) {
	mw, jwtSvc, e := authTestSetup(t)

	token, err := jwtSvc.GenerateToken("user-42", "a@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Auth(whoAmI)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mw, _, e := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Auth(whoAmI)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	mw, _, e := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Auth(whoAmI)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsForgedToken(t *testing.T) {
	mw, _, e := authTestSetup(t)

	forged, err := service.NewJWTService("outro-segredo", 15*time.Minute).GenerateToken("user-42", "a@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Auth(whoAmI)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	mw, _, e := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.OptionalAuth(whoAmI)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestOptionalAuthStillRejectsInvalidToken(t *testing.T) {
	mw, _, e := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.OptionalAuth(whoAmI)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
