package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/application/preview"
	"github.com/crealab/invoice-studio/internal/domain"
)

// PreviewHandler serves the social-preview utility.
type PreviewHandler struct {
	uc *preview.UseCase
}

// NewPreviewHandler builds the handler.
func NewPreviewHandler(uc *preview.UseCase) *PreviewHandler {
	return &PreviewHandler{uc: uc}
}

// Get fetches share-card metadata for a public URL. Proxy exhaustion answers
// 502 with a dedicated code: the client shows a dismissable notice and keeps
// its manually editable fields, the user's task is never blocked.
// GET /api/tools/social-preview?url=...
func (h *PreviewHandler) Get(c *fiber.Ctx) error {
	target := c.Query("url")
	resp, err := h.uc.Fetch(c.Context(), target)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "url must be a valid http(s) URL"})
		}
		if errors.Is(err, domain.ErrPreviewUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PREVIEW_UNAVAILABLE", Message: "no preview source could be reached; fill the fields manually"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
