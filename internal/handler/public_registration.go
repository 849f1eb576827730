package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/queue"
	"github.com/rootandbloom/garden-center/internal/repository"
	queue_publisher "github.com/rootandbloom/garden-center/internal/service"
)

// RegistrationHandler serves the public class registration flow. Seat
// accounting happens inside the repository transaction; this layer
// validates input, shapes errors and publishes the notification event.
type RegistrationHandler struct {
	Registrations *repository.RegistrationRepo
}

func NewRegistrationHandler(r *repository.RegistrationRepo) *RegistrationHandler {
	if r == nil {
		panic("nil repository passed to NewRegistrationHandler")
	}
	return &RegistrationHandler{Registrations: r}
}

type registrationReq struct {
	ClassID string `json:"classId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Seats   int    `json:"seats"`
	Notes   string `json:"notes"`
}

// Create handles POST /v1/registrations. A successful request
// reserves seats immediately with status "pending"; staff confirm or
// cancel from the dashboard. The notification event is published after
// commit and never blocks or fails the request.
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req registrationReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	classID, err := strconv.ParseUint(strings.TrimSpace(req.ClassID), 10, 64)
	if err != nil || classID == 0 {
		return fail(c, http.StatusBadRequest, "invalid class id")
	}
	if req.Seats < model.MinSeatsPerRegistration || req.Seats > model.MaxSeatsPerRegistration {
		return fail(c, http.StatusBadRequest, model.ErrBadSeatCount.Error())
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return fail(c, http.StatusBadRequest, "name and email are required")
	}

	reg := model.Registration{
		ClassID: classID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Seats:   req.Seats,
		Notes:   strings.TrimSpace(req.Notes),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Registrations.Create(ctx, &reg); err != nil {
		switch err {
		case repository.ErrClassNotFound:
			return fail(c, http.StatusNotFound, "class not found")
		case repository.ErrClassInactive:
			return fail(c, http.StatusConflict, "class is not open for registration")
		case repository.ErrNoSeats:
			return fail(c, http.StatusConflict, "not enough seats available")
		}
		return fail(c, http.StatusInternalServerError, "registration failed")
	}

	// Fire-and-forget: the broker being down must not fail the booking.
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
	}(reg)

	return ok(c, http.StatusCreated, reg)
}
