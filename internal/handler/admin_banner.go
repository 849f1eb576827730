package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// ListBanners returns every banner, including inactive and expired ones,
// so staff can manage the full set.
func (h *AdminHandler) ListBanners(c echo.Context) error {
	banners, err := h.BannerRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, banners)
}

// CreateBanner handles POST /v1/admin/banners.
func (h *AdminHandler) CreateBanner(c echo.Context) error {
	var b model.Banner
	if err := c.Bind(&b); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	b.ID = 0
	if err := validateBanner(&b); err != "" {
		return fail(c, http.StatusBadRequest, err)
	}
	if err := h.BannerRepo.Create(c.Request().Context(), &b); err != nil {
		return fail(c, http.StatusInternalServerError, "create banner failed")
	}
	return ok(c, http.StatusCreated, b)
}

// UpdateBanner handles PUT /v1/admin/banners/:id.
func (h *AdminHandler) UpdateBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var b model.Banner
	if err := c.Bind(&b); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	b.ID = id
	if msg := validateBanner(&b); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	if err := h.BannerRepo.Update(c.Request().Context(), &b); err != nil {
		if err == repository.ErrBannerNotFound {
			return fail(c, http.StatusNotFound, "banner not found")
		}
		return fail(c, http.StatusInternalServerError, "update banner failed")
	}
	return ok(c, http.StatusOK, b)
}

// DeleteBanner handles DELETE /v1/admin/banners/:id.
func (h *AdminHandler) DeleteBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.BannerRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrBannerNotFound {
			return fail(c, http.StatusNotFound, "banner not found")
		}
		return fail(c, http.StatusInternalServerError, "delete banner failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

// validateBanner returns a user-facing message, or "" when the banner is
// acceptable.
func validateBanner(b *model.Banner) string {
	b.Title = strings.TrimSpace(b.Title)
	b.Message = strings.TrimSpace(b.Message)
	if b.Title == "" || b.Message == "" {
		return "title and message are required"
	}
	if !model.ValidBannerType(b.Type) {
		return "type must be one of info, warning, success, seasonal"
	}
	return ""
}
