package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// UploadHandler relays files from the upload dialog to the upload host.
type UploadHandler struct {
	uploader ports.Uploader
}

func NewUploadHandler(uploader ports.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /files/upload: multipart form field "file" in, the
// upload host's plain-text response out.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return &domain.ValidationError{Message: "please select a file first"}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return &domain.ValidationError{Message: "could not read the selected file"}
	}
	defer src.Close()

	result, err := h.uploader.Upload(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, result)
}
