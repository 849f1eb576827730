package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
)

// GetSettings returns the store settings for the dashboard editor.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	s, err := h.SettingsRepo.Get(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, s)
}

// UpdateSettings handles PUT /v1/admin/settings. Settings are a singleton,
// so this is an upsert rather than an update-by-id.
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var s model.Settings
	if err := c.Bind(&s); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := s.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.SettingsRepo.Update(c.Request().Context(), &s); err != nil {
		return fail(c, http.StatusInternalServerError, "update settings failed")
	}
	return ok(c, http.StatusOK, s)
}
