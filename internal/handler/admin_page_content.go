package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// ListPageContent returns every content block across all pages.
func (h *AdminHandler) ListPageContent(c echo.Context) error {
	blocks, err := h.ContentRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, blocks)
}

// CreatePageContent handles POST /v1/admin/page-content.
func (h *AdminHandler) CreatePageContent(c echo.Context) error {
	var pc model.PageContent
	if err := c.Bind(&pc); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	pc.ID = 0
	if msg := validatePageContent(&pc); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	if err := h.ContentRepo.Create(c.Request().Context(), &pc); err != nil {
		return fail(c, http.StatusInternalServerError, "create page content failed")
	}
	return ok(c, http.StatusCreated, pc)
}

// UpdatePageContent handles PUT /v1/admin/page-content/:id.
func (h *AdminHandler) UpdatePageContent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var pc model.PageContent
	if err := c.Bind(&pc); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	pc.ID = id
	if msg := validatePageContent(&pc); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	if err := h.ContentRepo.Update(c.Request().Context(), &pc); err != nil {
		if err == repository.ErrPageContentNotFound {
			return fail(c, http.StatusNotFound, "page content not found")
		}
		return fail(c, http.StatusInternalServerError, "update page content failed")
	}
	return ok(c, http.StatusOK, pc)
}

// DeletePageContent handles DELETE /v1/admin/page-content/:id.
func (h *AdminHandler) DeletePageContent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.ContentRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrPageContentNotFound {
			return fail(c, http.StatusNotFound, "page content not found")
		}
		return fail(c, http.StatusInternalServerError, "delete page content failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

func validatePageContent(pc *model.PageContent) string {
	pc.Page = strings.TrimSpace(pc.Page)
	pc.Section = strings.TrimSpace(pc.Section)
	if pc.Page == "" || pc.Section == "" {
		return "page and section are required"
	}
	if !model.ValidContentType(pc.ContentType) {
		return "contentType must be text, heading, image or hero"
	}
	return ""
}
