package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// ListHours returns all hour rows, regular and special.
func (h *AdminHandler) ListHours(c echo.Context) error {
	hours, err := h.HourRepo.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, hours)
}

// CreateHour handles POST /v1/admin/hours.
func (h *AdminHandler) CreateHour(c echo.Context) error {
	var hr model.Hour
	if err := c.Bind(&hr); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	hr.ID = 0
	if err := hr.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.HourRepo.Create(c.Request().Context(), &hr); err != nil {
		return fail(c, http.StatusInternalServerError, "create hour failed")
	}
	return ok(c, http.StatusCreated, hr)
}

// UpdateHour handles PUT /v1/admin/hours/:id.
func (h *AdminHandler) UpdateHour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var hr model.Hour
	if err := c.Bind(&hr); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	hr.ID = id
	if err := hr.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.HourRepo.Update(c.Request().Context(), &hr); err != nil {
		if err == repository.ErrHourNotFound {
			return fail(c, http.StatusNotFound, "hour not found")
		}
		return fail(c, http.StatusInternalServerError, "update hour failed")
	}
	return ok(c, http.StatusOK, hr)
}

// DeleteHour handles DELETE /v1/admin/hours/:id.
func (h *AdminHandler) DeleteHour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.HourRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrHourNotFound {
			return fail(c, http.StatusNotFound, "hour not found")
		}
		return fail(c, http.StatusInternalServerError, "delete hour failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}
