package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// ListClasses returns every class, active or not, for the dashboard.
func (h *AdminHandler) ListClasses(c echo.Context) error {
	classes, err := h.ClassRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, classes)
}

// CreateClass handles POST /v1/admin/classes. AvailableSeats defaults to
// MaxSeats when the payload leaves it untouched.
func (h *AdminHandler) CreateClass(c echo.Context) error {
	var cl model.Class
	if err := c.Bind(&cl); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	cl.ID = 0
	if msg := validateClass(&cl); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	if cl.AvailableSeats == 0 {
		cl.AvailableSeats = cl.MaxSeats
	}
	if err := h.ClassRepo.Create(c.Request().Context(), &cl); err != nil {
		if err == repository.ErrSlugExists {
			return fail(c, http.StatusConflict, "slug already exists")
		}
		return fail(c, http.StatusInternalServerError, "create class failed")
	}
	return ok(c, http.StatusCreated, cl)
}

// UpdateClass handles PUT /v1/admin/classes/:id.
func (h *AdminHandler) UpdateClass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var cl model.Class
	if err := c.Bind(&cl); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	cl.ID = id
	if msg := validateClass(&cl); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	if err := h.ClassRepo.Update(c.Request().Context(), &cl); err != nil {
		switch err {
		case repository.ErrClassNotFound:
			return fail(c, http.StatusNotFound, "class not found")
		case repository.ErrSlugExists:
			return fail(c, http.StatusConflict, "slug already exists")
		}
		return fail(c, http.StatusInternalServerError, "update class failed")
	}
	return ok(c, http.StatusOK, cl)
}

// DeleteClass handles DELETE /v1/admin/classes/:id. Classes with
// registrations cannot be deleted; staff cancel the registrations first.
func (h *AdminHandler) DeleteClass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.ClassRepo.Delete(c.Request().Context(), id); err != nil {
		switch err {
		case repository.ErrClassNotFound:
			return fail(c, http.StatusNotFound, "class not found")
		case repository.ErrConflict:
			return fail(c, http.StatusConflict, "class has registrations")
		}
		return fail(c, http.StatusInternalServerError, "delete class failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}

// validateClass returns a user-facing message, or "" when acceptable.
func validateClass(cl *model.Class) string {
	cl.Slug = strings.TrimSpace(cl.Slug)
	cl.Title = strings.TrimSpace(cl.Title)
	if cl.Slug == "" || strings.ContainsAny(cl.Slug, " /") {
		return "slug is required and must not contain spaces or slashes"
	}
	if cl.Title == "" || cl.Description == "" || cl.Instructor == "" {
		return "title, description and instructor are required"
	}
	if cl.Date == "" || cl.Time == "" || cl.Duration == "" {
		return "date, time and duration are required"
	}
	if cl.Price < 0 {
		return "price must not be negative"
	}
	if cl.MaxSeats < 1 {
		return "maxSeats must be at least 1"
	}
	if cl.AvailableSeats < 0 || cl.AvailableSeats > cl.MaxSeats {
		return "availableSeats must be between 0 and maxSeats"
	}
	return ""
}
