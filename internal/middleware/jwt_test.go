package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/utils"
)

const testSecret = "test-secret"

func protectedApp(roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("/v1/admin")
	g.Use(JWTAuth(testSecret))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
	return e
}

func doReq(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := doReq(protectedApp(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestJWTAuthBadToken(t *testing.T) {
	rec := doReq(protectedApp(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, model.RoleAdmin, 10)
	require.NoError(t, err)
	rec := doReq(protectedApp(), tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 1, model.RoleStaff, 10)
	require.NoError(t, err)
	rec := doReq(protectedApp(), tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 2, model.RoleStaff, 10)
	require.NoError(t, err)
	rec := doReq(protectedApp(model.RoleAdmin, model.RoleStaff), tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 2, "CUSTOMER", 10)
	require.NoError(t, err)
	rec := doReq(protectedApp(model.RoleAdmin, model.RoleStaff), tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
