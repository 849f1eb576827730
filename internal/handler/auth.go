package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/config"
	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
	"github.com/rootandbloom/garden-center/internal/utils"
)

// AuthHandler bundles dependencies for the login and identity endpoints.
// There is no self-registration: staff accounts are provisioned by
// operators, so the surface is just login and me.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authData struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login verifies staff credentials and issues a bearer token. The
// response uses the wrapped envelope {success,data:{token,user}}; older
// dashboard builds also understand a flat {token,user}, which the client
// gateway normalizes.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	if !u.IsActive {
		return fail(c, http.StatusUnauthorized, "account disabled")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "issue token failed")
	}

	return ok(c, http.StatusOK, authData{Token: access.Token, User: u})
}

// Me returns the identity behind the presented bearer token. The
// dashboard calls this on startup to turn a persisted token back into a
// session; a 401 here tells it to discard the token.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusUnauthorized, "unknown user")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	if !u.IsActive {
		return fail(c, http.StatusUnauthorized, "account disabled")
	}
	return ok(c, http.StatusOK, u)
}
