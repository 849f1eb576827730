package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Every endpoint answers with the same envelope so the storefront client
// can branch on a single shape: {"success":true,"data":...} or
// {"success":false,"error":"..."}.

// ok writes a success envelope with the given status and payload.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// fail writes an error envelope. The message is user-facing; internal
// detail stays in the server log.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWT numeric claims decode as float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route parameter. Zero is never a valid row ID.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
