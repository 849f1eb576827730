package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// ContactHandler stores public contact-form submissions.
type ContactHandler struct {
	Messages *repository.ContactRepo
}

func NewContactHandler(m *repository.ContactRepo) *ContactHandler {
	if m == nil {
		panic("nil repository passed to NewContactHandler")
	}
	return &ContactHandler{Messages: m}
}

// Create handles POST /v1/contact. Submissions with a filled
// honeypot field are acknowledged as if stored so bots learn nothing,
// but nothing is written.
func (h *ContactHandler) Create(c echo.Context) error {
	var msg model.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if msg.Honeypot != "" {
		return ok(c, http.StatusCreated, echo.Map{"received": true})
	}
	if err := msg.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Messages.Create(ctx, &msg); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to store message")
	}
	return ok(c, http.StatusCreated, echo.Map{"received": true})
}
