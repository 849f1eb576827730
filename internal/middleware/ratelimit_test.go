package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rootandbloom/garden-center/internal/config"
)

func formCtx() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/registrations", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCurrentUserIDAcceptsClaimTypes(t *testing.T) {
	c := formCtx()
	assert.Equal(t, "anon", currentUserID(c))

	// JWT numeric claims decode as float64 through jwt.MapClaims.
	c.Set("user_id", float64(42))
	assert.Equal(t, "42", currentUserID(c))

	c.Set("user_id", "7")
	assert.Equal(t, "7", currentUserID(c))

	c.Set("user_id", uint64(9))
	assert.Equal(t, "9", currentUserID(c))

	c.Set("user_id", "")
	assert.Equal(t, "anon", currentUserID(c))
}

func TestBuildRateKeyUserStrategy(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}
	c := formCtx()
	c.Set("user_id", float64(42))
	assert.Equal(t, "rl:user:42", buildRateKey(cfg, c))
}
