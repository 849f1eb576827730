package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/queue"
	"github.com/rootandbloom/garden-center/internal/repository"
	queue_publisher "github.com/rootandbloom/garden-center/internal/service"
)

// ListRegistrations returns every registration, newest first.
func (h *AdminHandler) ListRegistrations(c echo.Context) error {
	regs, err := h.Registrations.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "database error")
	}
	return ok(c, http.StatusOK, regs)
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateRegistrationStatus handles PATCH /v1/admin/registrations/:id/status.
// Transitions into and out of cancelled adjust the class's seat count, so a
// revival can be refused with 409 when the class has since filled up.
func (h *AdminHandler) UpdateRegistrationStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if !model.ValidRegistrationStatus(req.Status) {
		return fail(c, http.StatusBadRequest, "status must be pending, confirmed or cancelled")
	}
	reg, err := h.Registrations.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		switch err {
		case repository.ErrRegistrationNotFound:
			return fail(c, http.StatusNotFound, "registration not found")
		case repository.ErrNoSeats:
			return fail(c, http.StatusConflict, "not enough seats available to restore this registration")
		}
		return fail(c, http.StatusInternalServerError, "update status failed")
	}

	// Fire-and-forget, same as registration creation: a broker outage must
	// not fail the status change.
	go func(reg model.Registration) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishRegistrationReceived(ctx, queue.RegistrationReceivedEvent{
			RegistrationID: reg.ID,
			ClassID:        reg.ClassID,
			ClassName:      reg.ClassName,
			ClassDate:      reg.ClassDate,
			CustomerName:   reg.Name,
			CustomerEmail:  reg.Email,
			CustomerPhone:  reg.Phone,
			Seats:          reg.Seats,
			Status:         reg.Status,
			OccurredAt:     time.Now().UTC().Format(time.RFC3339),
		})
	}(*reg)

	return ok(c, http.StatusOK, reg)
}

// DeleteRegistration handles DELETE /v1/admin/registrations/:id.
func (h *AdminHandler) DeleteRegistration(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Registrations.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrRegistrationNotFound {
			return fail(c, http.StatusNotFound, "registration not found")
		}
		return fail(c, http.StatusInternalServerError, "delete registration failed")
	}
	return ok(c, http.StatusOK, echo.Map{"deleted": true})
}
