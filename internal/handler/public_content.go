// Package handler exposes HTTP handlers for both public and admin
// endpoints. This file defines the public storefront reads: settings,
// hours, banners, classes and page content. These routes require no
// authentication and return only display-safe data.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated reads.
type PublicHandler struct {
	SettingsRepo *repository.SettingsRepo
	HourRepo     *repository.HourRepo
	BannerRepo   *repository.BannerRepo
	ClassRepo    *repository.ClassRepo
	ContentRepo  *repository.PageContentRepo
}

// GetSettings returns the store settings singleton. A fresh database
// yields empty settings rather than an error so the storefront can
// render with fallbacks.
func (h *PublicHandler) GetSettings(c echo.Context) error {
	s, err := h.SettingsRepo.Get(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, s)
}

// GetHours returns all opening hours, regular rows first, then special
// dates.
func (h *PublicHandler) GetHours(c echo.Context) error {
	hours, err := h.HourRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, hours)
}

// GetBanners returns all banners in sort order. Visibility (active flag
// plus date window) is a derived property the storefront evaluates at
// render time, so no filtering happens here; this also lets cached
// responses stay correct across midnight.
func (h *PublicHandler) GetBanners(c echo.Context) error {
	banners, err := h.BannerRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, banners)
}

// GetClasses returns active classes for the public list.
func (h *PublicHandler) GetClasses(c echo.Context) error {
	classes, err := h.ClassRepo.ListActive(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, classes)
}

// GetClassBySlug returns one class looked up by its public slug.
func (h *PublicHandler) GetClassBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return fail(c, http.StatusBadRequest, "invalid slug")
	}
	class, err := h.ClassRepo.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if err == repository.ErrClassNotFound {
			return fail(c, http.StatusNotFound, "class not found")
		}
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, class)
}

// GetPageContent returns the content blocks for a single page. Unknown
// pages yield an empty list; the storefront falls back to static copy.
func (h *PublicHandler) GetPageContent(c echo.Context) error {
	page := c.Param("page")
	if page == "" {
		return fail(c, http.StatusBadRequest, "invalid page")
	}
	blocks, err := h.ContentRepo.ListByPage(c.Request().Context(), page)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, blocks)
}
