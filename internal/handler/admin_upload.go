package handler

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/utils"
)

// maxUploadBytes caps a single image upload at 5 MiB.
const maxUploadBytes = 5 << 20

// UploadImage handles POST /v1/admin/uploads. It accepts a multipart form
// with an "image" part, stores it under a random name and returns the
// public URL the dashboard can paste into image fields.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusBadRequest, "image file is required")
	}
	if fh.Size > maxUploadBytes {
		return fail(c, http.StatusRequestEntityTooLarge, "image must be 5MB or smaller")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return fail(c, http.StatusBadRequest, "image must be jpg, png, gif or webp")
	}

	name, err := utils.RandomHex(16)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "upload failed")
	}
	name += ext

	src, err := fh.Open()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "upload failed")
	}
	defer src.Close()

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return fail(c, http.StatusInternalServerError, "upload failed")
	}
	dst, err := os.Create(filepath.Join(h.Cfg.UploadDir, name))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "upload failed")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fail(c, http.StatusInternalServerError, "upload failed")
	}

	return ok(c, http.StatusCreated, echo.Map{"url": path.Join(h.Cfg.UploadBase, name)})
}
